package ruleset

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format is a declaration file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format by file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

type document struct {
	Forms map[string]formDocument `yaml:"forms" json:"forms"`
}

type formDocument struct {
	DefaultError string  `yaml:"default_error" json:"default_error"`
	Rules        [][]any `yaml:"rules" json:"rules"`
	Filters      [][]any `yaml:"filters" json:"filters"`
}

// Parse decodes a declaration document.
func Parse(data []byte, format Format) (*Catalog, error) {
	defs, err := parse(data, format, "")
	if err != nil {
		return nil, err
	}
	return NewCatalog(defs...)
}

// LoadFile reads a declaration file. The format follows the extension.
func LoadFile(path string) (*Catalog, error) {
	defs, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	return NewCatalog(defs...)
}

// LoadDir reads every .yaml, .yml and .json file directly inside dir, in
// name order. A form declared in two files is an error.
func LoadDir(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("ruleset: read dir %s: %w", dir, err)
	}

	var defs []*Definition
	for _, e := range entries {
		if e.IsDir() || !isDeclarationFile(e.Name()) {
			continue
		}
		fileDefs, err := loadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		defs = append(defs, fileDefs...)
	}
	return NewCatalog(defs...)
}

func isDeclarationFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	_, err := FormatFromPath(name)
	return err == nil
}

func loadFile(path string) ([]*Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ruleset: read %s: %w", path, err)
	}
	return parse(data, format, path)
}

func parse(data []byte, format Format, source string) ([]*Definition, error) {
	var doc document
	if err := decode(data, format, &doc); err != nil {
		return nil, withSource(source, err)
	}

	names := make([]string, 0, len(doc.Forms))
	for name := range doc.Forms {
		names = append(names, name)
	}
	slices.Sort(names)

	defs := make([]*Definition, 0, len(names))
	for _, name := range names {
		def, err := buildDefinition(name, doc.Forms[name])
		if err != nil {
			return nil, withSource(source, err)
		}
		def.source = source
		defs = append(defs, def)
	}
	return defs, nil
}

func decode(data []byte, format Format, doc *document) error {
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, doc); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
	case FormatJSON:
		if len(bytes.TrimSpace(data)) == 0 {
			return nil
		}
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(doc); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return nil
}

func buildDefinition(name string, fd formDocument) (*Definition, error) {
	def := &Definition{name: name, defaultError: fd.DefaultError}
	for i, tuple := range fd.Rules {
		r, err := parseRule(tuple)
		if err != nil {
			return nil, fmt.Errorf("form %q rule #%d: %w", name, i+1, err)
		}
		def.rules = append(def.rules, r)
	}
	for i, tuple := range fd.Filters {
		f, err := parseFilter(tuple)
		if err != nil {
			return nil, fmt.Errorf("form %q filter #%d: %w", name, i+1, err)
		}
		def.filters = append(def.filters, f)
	}
	return def, nil
}

func withSource(source string, err error) error {
	if source == "" {
		return err
	}
	return fmt.Errorf("%s: %w", source, err)
}
