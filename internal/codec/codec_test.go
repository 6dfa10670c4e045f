package codec

import (
	"strings"
	"testing"
)

type sampleSettings struct {
	Name    string   `toml:"name" yaml:"name" json:"name"`
	Port    uint16   `toml:"port" yaml:"port" json:"port"`
	Debug   bool     `toml:"debug" yaml:"debug" json:"debug"`
	Ratio   float64  `toml:"ratio" yaml:"ratio" json:"ratio"`
	Tags    []string `toml:"tags" yaml:"tags" json:"tags"`
	Comment *string  `toml:"comment,omitempty" yaml:"comment,omitempty" json:"comment,omitempty"`
}

func newSample() sampleSettings {
	note := "hand tuned"
	return sampleSettings{
		Name:    "demo",
		Port:    8080,
		Debug:   true,
		Ratio:   0.75,
		Tags:    []string{"a", "b"},
		Comment: &note,
	}
}

func TestRoundTripAllFormats(t *testing.T) {
	for _, c := range []Codec{TOML{}, YAML{}, JSON{}, CBOR{}} {
		in := newSample()
		data, err := c.Marshal(&in)
		if err != nil {
			t.Fatalf("%s: Marshal returned error: %v", c.Name(), err)
		}
		var out sampleSettings
		if err := c.Unmarshal(data, &out); err != nil {
			t.Fatalf("%s: Unmarshal returned error: %v", c.Name(), err)
		}
		if out.Name != in.Name || out.Port != in.Port || out.Debug != in.Debug || out.Ratio != in.Ratio {
			t.Fatalf("%s: expected %+v, got %+v", c.Name(), in, out)
		}
		if len(out.Tags) != 2 || out.Tags[0] != "a" || out.Tags[1] != "b" {
			t.Fatalf("%s: expected tags [a b], got %v", c.Name(), out.Tags)
		}
		if out.Comment == nil || *out.Comment != "hand tuned" {
			t.Fatalf("%s: expected comment preserved, got %v", c.Name(), out.Comment)
		}

		// decode-then-encode of own output is stable
		again, err := c.Marshal(&out)
		if err != nil {
			t.Fatalf("%s: re-Marshal returned error: %v", c.Name(), err)
		}
		if string(again) != string(data) {
			t.Fatalf("%s: expected stable re-encoding", c.Name())
		}
	}
}

func TestYAMLRejectsUnknownKeys(t *testing.T) {
	var out sampleSettings
	err := YAML{}.Unmarshal([]byte("name: demo\nbogus: 1\n"), &out)
	if err == nil {
		t.Fatal("expected error for unknown key, got nil")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Fatalf("expected error to name the bad key, got %v", err)
	}
}

func TestYAMLEmptyDocument(t *testing.T) {
	var out sampleSettings
	if err := (YAML{}).Unmarshal(nil, &out); err != nil {
		t.Fatalf("expected empty document to decode to zero value, got %v", err)
	}
	if out.Name != "" || out.Port != 0 {
		t.Fatalf("expected zero value, got %+v", out)
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"settings.toml", "toml"},
		{"a/b/settings.YAML", "yaml"},
		{"settings.yml", "yaml"},
		{"settings.json", "json"},
		{"settings.cbor", "cbor"},
	}
	for _, tt := range tests {
		c, err := ForPath(tt.path)
		if err != nil {
			t.Fatalf("ForPath(%s) returned error: %v", tt.path, err)
		}
		if c.Name() != tt.want {
			t.Fatalf("expected %s codec for %s, got %s", tt.want, tt.path, c.Name())
		}
	}
	if _, err := ForPath("settings.ini"); err == nil {
		t.Fatal("expected error for unsupported extension, got nil")
	}
}

func TestDecodeMalformedInput(t *testing.T) {
	var out sampleSettings
	if err := (TOML{}).Unmarshal([]byte("port = \"not a number"), &out); err == nil {
		t.Fatal("expected TOML decode error, got nil")
	}
	if err := (JSON{}).Unmarshal([]byte("{"), &out); err == nil {
		t.Fatal("expected JSON decode error, got nil")
	}
	if err := (CBOR{}).Unmarshal([]byte{0xff, 0x00}, &out); err == nil {
		t.Fatal("expected CBOR decode error, got nil")
	}
}
