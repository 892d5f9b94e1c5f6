package lzss

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileParams mirrors Params but with YAML field names, for config file
// overrides. Grounded on jam-duna-jamduna/tools/validate_spec.go's
// yaml.Unmarshal-into-a-small-struct pattern.
type fileParams struct {
	IndexBits  int `yaml:"index_bits"`
	LengthBits int `yaml:"length_bits"`
}

// LoadParams reads a YAML file with index_bits/length_bits keys and returns
// a validated Params. Missing keys fall back to DefaultParams()'s values.
func LoadParams(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lzss: reading config %s: %w", path, err)
	}

	defaults := DefaultParams()
	fp := fileParams{IndexBits: defaults.IndexBits, LengthBits: defaults.LengthBits}
	if err := yaml.Unmarshal(data, &fp); err != nil {
		return nil, fmt.Errorf("lzss: parsing config %s: %w", path, err)
	}

	params := &Params{IndexBits: fp.IndexBits, LengthBits: fp.LengthBits}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("lzss: config %s: %w", path, err)
	}
	return params, nil
}
