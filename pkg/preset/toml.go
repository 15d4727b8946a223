package preset

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFromTOML parses a preset from TOML data and checks it with a nil theme
// lookup; the theme reference is resolved when the preset is installed.
//
//	schemaVersion = "v1"
//	displayName = "Night's Black Agents"
//	defaultTheme = "niceTheme"
//	shortNotes = ["Drive", "Background"]
func LoadFromTOML(data []byte) (Preset, error) {
	var p Preset
	md, err := toml.Decode(string(data), &p)
	if err != nil {
		return Preset{}, fmt.Errorf("preset: parse TOML: %w", err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return Preset{}, fmt.Errorf("preset: unknown key %q", keys[0].String())
	}
	if err := Validate(p, nil); err != nil {
		return Preset{}, fmt.Errorf("preset: %w", err)
	}
	return p, nil
}

// SaveToTOML serializes a preset to TOML format.
func SaveToTOML(p Preset) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(p); err != nil {
		return nil, fmt.Errorf("preset: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadFromYAML is LoadFromTOML for YAML input with the same keys.
func LoadFromYAML(data []byte) (Preset, error) {
	var p Preset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Preset{}, fmt.Errorf("preset: parse YAML: %w", err)
	}
	if err := Validate(p, nil); err != nil {
		return Preset{}, fmt.Errorf("preset: %w", err)
	}
	return p, nil
}

// SaveToYAML serializes a preset to YAML.
func SaveToYAML(p Preset) ([]byte, error) {
	out, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("preset: encode YAML: %w", err)
	}
	return out, nil
}
