// Package preset defines game-system presets: the ability categories, note
// fields, compendium packs and feature flags a character sheet is built
// from. Presets are loaded from TOML or YAML, validated, and installed into
// a registry alongside the themes they refer to.
package preset

import (
	"strings"

	"gitlab.com/tinyland/lab/investigator-themes/pkg/validation"
)

// SchemaV1 is the only schema version understood by this package.
const SchemaV1 = "v1"

// Preset describes one game system.
type Preset struct {
	SchemaVersion string `toml:"schemaVersion" yaml:"schemaVersion" json:"schemaVersion"`
	// DisplayName is shown in the system picker.
	DisplayName string `toml:"displayName" yaml:"displayName" json:"displayName"`
	// DefaultTheme is the id of the theme sheets use unless overridden.
	DefaultTheme string `toml:"defaultTheme" yaml:"defaultTheme" json:"defaultTheme"`

	InvestigativeAbilityCategories []string `toml:"investigativeAbilityCategories" yaml:"investigativeAbilityCategories" json:"investigativeAbilityCategories"`
	GeneralAbilityCategories       []string `toml:"generalAbilityCategories" yaml:"generalAbilityCategories" json:"generalAbilityCategories"`
	// CombatAbilities names the abilities usable in combat.
	CombatAbilities []string `toml:"combatAbilities" yaml:"combatAbilities" json:"combatAbilities"`

	// OccupationLabel is what the system calls a PC's main descriptor.
	OccupationLabel string   `toml:"occupationLabel" yaml:"occupationLabel" json:"occupationLabel"`
	ShortNotes      []string `toml:"shortNotes" yaml:"shortNotes" json:"shortNotes"`
	LongNotes       []string `toml:"longNotes" yaml:"longNotes" json:"longNotes"`

	// NewPCPacks and NewNPCPacks are compendium packs added to new actors.
	NewPCPacks  []string `toml:"newPCPacks" yaml:"newPCPacks" json:"newPCPacks"`
	NewNPCPacks []string `toml:"newNPCPacks" yaml:"newNPCPacks" json:"newNPCPacks"`

	UseBoost bool `toml:"useBoost" yaml:"useBoost" json:"useBoost"`

	// The Mw fields only matter for systems built on the Moribund World
	// rules.
	UseMwStyleAbilities       bool     `toml:"useMwStyleAbilities" yaml:"useMwStyleAbilities" json:"useMwStyleAbilities"`
	MwHiddenShortNotes        []string `toml:"mwHiddenShortNotes,omitempty" yaml:"mwHiddenShortNotes,omitempty" json:"mwHiddenShortNotes,omitempty"`
	MwUseAlternativeItemTypes bool     `toml:"mwUseAlternativeItemTypes" yaml:"mwUseAlternativeItemTypes" json:"mwUseAlternativeItemTypes"`
}

// ThemeLookup reports whether a theme id is known.
type ThemeLookup func(id string) bool

// Validate checks p and returns every problem found as *validation.Error
// values. themes resolves DefaultTheme; a nil lookup skips that check.
func Validate(p Preset, themes ThemeLookup) error {
	var c validation.Collector

	switch p.SchemaVersion {
	case SchemaV1:
	case "":
		c.Add("schemaVersion", "is required")
	default:
		c.Add("schemaVersion", "must be %q, got %q", SchemaV1, p.SchemaVersion)
	}
	prRequire(&c, "displayName", p.DisplayName)
	prRequire(&c, "occupationLabel", p.OccupationLabel)

	switch {
	case strings.TrimSpace(p.DefaultTheme) == "":
		c.Add("defaultTheme", "is required")
	case themes != nil && !themes(p.DefaultTheme):
		c.Add("defaultTheme", "theme %q is not registered", p.DefaultTheme)
	}

	for _, l := range prLists(p) {
		prUnique(&c, l.name, l.values)
	}

	if len(p.MwHiddenShortNotes) > 0 {
		prUnique(&c, "mwHiddenShortNotes", p.MwHiddenShortNotes)
		short := make(map[string]bool, len(p.ShortNotes))
		for _, n := range p.ShortNotes {
			short[n] = true
		}
		for i, n := range p.MwHiddenShortNotes {
			if strings.TrimSpace(n) != "" && !short[n] {
				c.Add(validation.Index("mwHiddenShortNotes", i), "%q is not one of shortNotes", n)
			}
		}
	}

	return c.Err()
}

// Normalize validates p and returns a copy that shares no slices with p and
// has every list non-nil. MwHiddenShortNotes stays nil when unset.
func Normalize(p Preset, themes ThemeLookup) (Preset, error) {
	if err := Validate(p, themes); err != nil {
		return Preset{}, err
	}
	out := p.Clone()
	for _, l := range []*[]string{
		&out.InvestigativeAbilityCategories,
		&out.GeneralAbilityCategories,
		&out.CombatAbilities,
		&out.ShortNotes,
		&out.LongNotes,
		&out.NewPCPacks,
		&out.NewNPCPacks,
	} {
		if *l == nil {
			*l = []string{}
		}
	}
	return out, nil
}

// Clone returns a deep copy of p.
func (p Preset) Clone() Preset {
	out := p
	out.InvestigativeAbilityCategories = prCopy(p.InvestigativeAbilityCategories)
	out.GeneralAbilityCategories = prCopy(p.GeneralAbilityCategories)
	out.CombatAbilities = prCopy(p.CombatAbilities)
	out.ShortNotes = prCopy(p.ShortNotes)
	out.LongNotes = prCopy(p.LongNotes)
	out.NewPCPacks = prCopy(p.NewPCPacks)
	out.NewNPCPacks = prCopy(p.NewNPCPacks)
	out.MwHiddenShortNotes = prCopy(p.MwHiddenShortNotes)
	return out
}

type prList struct {
	name   string
	values []string
}

// prLists returns the name lists whose entries are used as lookup keys.
func prLists(p Preset) []prList {
	return []prList{
		{"investigativeAbilityCategories", p.InvestigativeAbilityCategories},
		{"generalAbilityCategories", p.GeneralAbilityCategories},
		{"combatAbilities", p.CombatAbilities},
		{"shortNotes", p.ShortNotes},
		{"longNotes", p.LongNotes},
		{"newPCPacks", p.NewPCPacks},
		{"newNPCPacks", p.NewNPCPacks},
	}
}

func prRequire(c *validation.Collector, path, v string) {
	if strings.TrimSpace(v) == "" {
		c.Add(path, "is required")
	}
}

// prUnique reports blank entries and repeats of an earlier entry.
func prUnique(c *validation.Collector, path string, values []string) {
	first := make(map[string]int, len(values))
	for i, v := range values {
		p := validation.Index(path, i)
		if strings.TrimSpace(v) == "" {
			c.Add(p, "must not be blank")
			continue
		}
		if j, dup := first[v]; dup {
			c.Add(p, "duplicate of %s %q", validation.Index(path, j), v)
			continue
		}
		first[v] = i
	}
}

func prCopy(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string{}, s...)
}
