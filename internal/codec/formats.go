package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// TOML is the default settings format.
type TOML struct{}

func (TOML) Name() string { return "toml" }

func (TOML) Marshal(v any) ([]byte, error) { return toml.Marshal(v) }

func (TOML) Unmarshal(data []byte, v any) error { return toml.Unmarshal(data, v) }

// YAML decodes strictly: unknown keys are an error, so typos in hand-edited
// files surface instead of silently dropping settings.
type YAML struct{}

func (YAML) Name() string { return "yaml" }

func (YAML) Marshal(v any) ([]byte, error) { return yaml.Marshal(v) }

func (YAML) Unmarshal(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			// empty document decodes to the zero value
			return nil
		}
		return err
	}
	return nil
}

// JSON writes indented output so settings files stay hand-editable.
type JSON struct{}

func (JSON) Name() string { return "json" }

func (JSON) Marshal(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }

func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// cborEnc is the CBOR encoder configured with Core Deterministic Encoding:
// the same settings always produce identical bytes.
var cborEnc cbor.EncMode

// cborDec is the CBOR decoder; unknown fields are ignored for forward
// compatibility.
var cborDec cbor.DecMode

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}
	cborDec, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// CBOR is the compact binary format, for settings shipped inside bundles
// rather than edited by hand.
type CBOR struct{}

func (CBOR) Name() string { return "cbor" }

func (CBOR) Marshal(v any) ([]byte, error) { return cborEnc.Marshal(v) }

func (CBOR) Unmarshal(data []byte, v any) error { return cborDec.Unmarshal(data, v) }
