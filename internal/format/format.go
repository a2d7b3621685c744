package format

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dshills/confstore/internal/section"
)

// ErrMalformed is returned by decoders for input they cannot read at all.
var ErrMalformed = errors.New("malformed configuration data")

// Codec reads and writes a layer in one text format.
type Codec interface {
	// Name is the short format name used on the command line.
	Name() string
	// Decode parses data into a new layer. A decoder may return a partial
	// layer together with an error.
	Decode(data []byte) (section.Layer, error)
	// Encode serializes the layer.
	Encode(layer section.Layer) ([]byte, error)
}

// BOM is the UTF-8 byte order mark.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// StripBOM removes a leading UTF-8 byte order mark.
func StripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, BOM)
}

// Detect returns the JSON codec when data starts with '{' and the INI codec
// otherwise. The caller is expected to have removed any BOM.
func Detect(data []byte) Codec {
	if len(data) > 0 && data[0] == '{' {
		return JSON{}
	}
	return INI{}
}

// ByName returns the codec for a format name.
func ByName(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "ini":
		return INI{}, nil
	case "json":
		return JSON{}, nil
	case "toml":
		return TOML{}, nil
	case "yaml", "yml":
		return YAML{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", name)
	}
}

// ForPath picks a codec from a file extension. Unknown extensions return
// nil so the caller can fall back to [Detect].
func ForPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON{}
	case ".ini", ".cfg", ".conf":
		return INI{}
	case ".toml":
		return TOML{}
	case ".yaml", ".yml":
		return YAML{}
	default:
		return nil
	}
}
