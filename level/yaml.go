package level

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// presetFile is the on-disk layout of a presets file:
//
//	presets:
//	  small:
//	    rows: 6
//	    cols: 6
//	    coins:
//	      count: 4
type presetFile struct {
	Presets map[string]yaml.Node `yaml:"presets"`
}

// LoadPresets reads named level configurations. Fields a preset leaves out keep the
// DefaultConfig value, so a nested batch can override only its count.
func LoadPresets(r io.Reader) (map[string]Config, error) {
	var file presetFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding presets: %w", err)
	}

	presets := make(map[string]Config, len(file.Presets))
	for name, node := range file.Presets {
		cfg := DefaultConfig()
		if err := node.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("decoding preset %q: %w", name, err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		presets[name] = cfg
	}
	return presets, nil
}

// WriteYAML writes a level snapshot as YAML.
func WriteYAML(w io.Writer, s Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding level %s: %w", s.ID, err)
	}
	return enc.Close()
}

// ReadYAML reads a level snapshot written by WriteYAML.
func ReadYAML(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("decoding level: %w", err)
	}
	return s, nil
}
