package settings

import (
	"testing"

	"github.com/robbiew/menucfg/internal/menu"
)

func TestDefaultBindsCleanly(t *testing.T) {
	view, err := menu.Bind(Default())
	if err != nil {
		t.Fatalf("failed to bind defaults: %v", err)
	}

	got := map[string]string{}
	err = menu.Walk(view, func(path string, d menu.FieldDescriptor) error {
		got[path] = d.Value
		return nil
	})
	if err != nil {
		t.Fatalf("failed to walk defaults: %v", err)
	}

	checks := map[string]string{
		"general.volume":        "80",
		"general.language":      "en",
		"audio.master_db":       "-6",
		"audio.balance":         "0.5, 0.5",
		"audio.sample_rate":     "48000",
		"network.port":          "8080",
		"network.proxy_url":     menu.Placeholder,
		"profiles[0].name":      "default",
		"profiles[0].preferred": "true",
		"tags[0]":               "stable",
		"theme":                 menu.Placeholder,
	}
	for path, want := range checks {
		if got[path] != want {
			t.Fatalf("expected %s = %q, got %q", path, want, got[path])
		}
	}
}

func TestDefaultOptionalSectionsAbsent(t *testing.T) {
	s := Default()
	if s.Theme != nil {
		t.Fatal("expected theme absent by default")
	}
	if s.Network.ProxyURL != nil {
		t.Fatal("expected proxy_url absent by default")
	}
}
