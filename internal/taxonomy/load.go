package taxonomy

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed skills.json
var defaultData []byte

// DefaultSource names the embedded taxonomy.
const DefaultSource = "embedded:skills.json"

// Format identifies a taxonomy file encoding.
type Format string

// Supported taxonomy file formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// document is the on-disk shape of a taxonomy file.
type document struct {
	Skills []Entry `json:"skills" yaml:"skills"`
}

// Loader produces a fresh taxonomy snapshot.
type Loader func(ctx context.Context) (*Taxonomy, error)

// Default returns the taxonomy bundled with the binary.
func Default() (*Taxonomy, error) {
	return Parse(DefaultSource, defaultData, FormatJSON)
}

// DefaultLoader loads the bundled taxonomy.
func DefaultLoader() Loader {
	return func(context.Context) (*Taxonomy, error) {
		return Default()
	}
}

// FileLoader loads a taxonomy from a JSON or YAML file each time it is called.
func FileLoader(path string) Loader {
	return func(context.Context) (*Taxonomy, error) {
		return LoadFile(path)
	}
}

// LoadFile reads a taxonomy file. The format is chosen by extension: .yaml and .yml are YAML,
// everything else is JSON.
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Message: "failed to read file", Cause: err}
	}
	return Parse(path, data, FormatFromPath(path))
}

// FormatFromPath infers the taxonomy format from a file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Parse decodes taxonomy data and builds the lookup structure.
func Parse(source string, data []byte, format Format) (*Taxonomy, error) {
	var doc document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, &LoadError{Source: source, Message: "failed to parse YAML", Cause: err}
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, &LoadError{Source: source, Message: "failed to parse JSON", Cause: err}
		}
	}

	if len(doc.Skills) == 0 {
		return nil, &LoadError{Source: source, Message: "no skills defined"}
	}

	return New(source, doc.Skills)
}
