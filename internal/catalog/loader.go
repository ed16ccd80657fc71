package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed content/catalog.yaml
var defaultCatalogYAML []byte

// LoadSchema reads and parses a YAML catalog file.
func LoadSchema(path string) (*CatalogSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSchema(data)
}

// ParseSchema parses YAML catalog data.
func ParseSchema(data []byte) (*CatalogSchema, error) {
	var schema CatalogSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return &schema, nil
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	schema, err := ParseSchema(defaultCatalogYAML)
	if err != nil {
		return nil, err
	}
	return New(schema)
}

// Load returns the catalog at path, or the built-in catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	schema, err := LoadSchema(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	return New(schema)
}
