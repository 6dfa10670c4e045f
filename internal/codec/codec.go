// Package codec provides the serialize/deserialize contract the settings
// controller persists through, plus the concrete formats the tool ships
// with. The controller is format-agnostic: it only requires that a codec's
// Unmarshal-then-Marshal is stable for data the codec itself produced.
package codec

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Codec encodes and decodes a whole settings record.
type Codec interface {
	// Name is the short format name, matching the file extension.
	Name() string
	// Marshal encodes v.
	Marshal(v any) ([]byte, error)
	// Unmarshal decodes data into v, which must be a pointer.
	Unmarshal(data []byte, v any) error
}

// ForPath picks a codec from a file name's extension.
func ForPath(path string) (Codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML{}, nil
	case ".yaml", ".yml":
		return YAML{}, nil
	case ".json":
		return JSON{}, nil
	case ".cbor":
		return CBOR{}, nil
	}
	return nil, fmt.Errorf("codec: no codec for file %q (want .toml, .yaml, .json or .cbor)", path)
}
