package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML mapping file and builds a Registry from it.
func LoadFile(path string, types *TypeSet) (*Registry, error) {
	mf, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	return mf.Build(types)
}

// Parse parses YAML data and builds a Registry from it.
func Parse(data []byte, types *TypeSet) (*Registry, error) {
	mf, err := Decode(data)
	if err != nil {
		return nil, err
	}

	return mf.Build(types)
}

// ReadFile loads and decodes a YAML mapping file from the given path.
func ReadFile(path string) (*MappingFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	return Decode(data)
}

// Decode parses YAML data into a MappingFile.
func Decode(data []byte) (*MappingFile, error) {
	var mf MappingFile

	err := yaml.Unmarshal(data, &mf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	applyDefaults(&mf)

	return &mf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(mf *MappingFile) {
	if mf.Version == "" {
		mf.Version = "1"
	}
}

// Marshal serializes a MappingFile to YAML.
func Marshal(mf *MappingFile) ([]byte, error) {
	return yaml.Marshal(mf)
}

// WriteFile writes a MappingFile to the given path.
func WriteFile(mf *MappingFile, path string) error {
	data, err := Marshal(mf)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write mapping file %s: %w", path, err)
	}

	return nil
}
