package theme

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFromTOML parses and validates a theme seed from TOML. Keys use the
// schema's field names:
//
//	schemaVersion = "v1"
//	displayName = "Noir"
//	[largeSheetRootStyle]
//	[logo.frontTextElementStyle]
//	...
//	[colors]
//	accent = "#ff0000"
func LoadFromTOML(data []byte) (Seed, error) {
	var s Seed
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return Seed{}, fmt.Errorf("theme: parse TOML: %w", err)
	}
	for _, k := range md.Undecoded() {
		if !InStyleTable(k) {
			return Seed{}, fmt.Errorf("theme: unknown key %q", k.String())
		}
	}
	if err := Validate(s); err != nil {
		return Seed{}, fmt.Errorf("theme: %w", err)
	}
	return s, nil
}

// InStyleTable reports whether the seed key k lies inside a free-form style
// table, where any property name is allowed.
func InStyleTable(k toml.Key) bool {
	switch {
	case len(k) > 1 && (k[0] == "largeSheetRootStyle" || k[0] == "smallSheetRootStyle" || k[0] == "appWindowStyle"):
		return true
	case len(k) > 2 && k[0] == "logo":
		switch k[1] {
		case "frontTextElementStyle", "rearTextElementStyle", "textElementsStyle", "backdropStyle":
			return true
		}
	}
	return false
}

// SaveToTOML serializes a seed to TOML bytes.
func SaveToTOML(s Seed) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadFromYAML parses and validates a theme seed from YAML, using the same
// keys as LoadFromTOML.
func LoadFromYAML(data []byte) (Seed, error) {
	var s Seed
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Seed{}, fmt.Errorf("theme: parse YAML: %w", err)
	}
	if err := Validate(s); err != nil {
		return Seed{}, fmt.Errorf("theme: %w", err)
	}
	return s, nil
}

// SaveToYAML serializes a seed to YAML bytes.
func SaveToYAML(s Seed) ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("theme: encode YAML: %w", err)
	}
	return out, nil
}
