package preset

import (
	"sort"

	"gitlab.com/tinyland/lab/investigator-themes/pkg/theme"
)

// Built-in preset ids.
const (
	BuiltinNiceBlackAgents = "niceBlackAgents"
	BuiltinTrailOfCthulhu  = "trailOfCthulhu"
	BuiltinPathOfCthulhu   = "pathOfCthulhu"
	BuiltinEsoterrorists   = "esoterrorists"
	BuiltinFearItself      = "fearItself"
	BuiltinAshenStars      = "ashenStars"
	BuiltinMoribundWorld   = "moribundWorld"
)

var prBuiltins = map[string]func() Preset{
	BuiltinNiceBlackAgents: prNiceBlackAgents,
	BuiltinTrailOfCthulhu:  prTrailOfCthulhu,
	BuiltinPathOfCthulhu:   prPathOfCthulhu,
	BuiltinEsoterrorists:   prEsoterrorists,
	BuiltinFearItself:      prFearItself,
	BuiltinAshenStars:      prAshenStars,
	BuiltinMoribundWorld:   prMoribundWorld,
}

// BuiltinIDs returns the built-in preset ids, sorted.
func BuiltinIDs() []string {
	ids := make([]string, 0, len(prBuiltins))
	for id := range prBuiltins {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Builtins returns a fresh copy of every built-in preset, keyed by id.
// Each one names a built-in theme as its defaultTheme.
func Builtins() map[string]Preset {
	out := make(map[string]Preset, len(prBuiltins))
	for id, f := range prBuiltins {
		out[id] = f()
	}
	return out
}

func prNiceBlackAgents() Preset {
	return Preset{
		SchemaVersion:                  SchemaV1,
		DisplayName:                    "Night's Black Agents",
		DefaultTheme:                   theme.BuiltinNice,
		InvestigativeAbilityCategories: []string{"Academic", "Interpersonal", "Technical"},
		GeneralAbilityCategories:       []string{"General"},
		CombatAbilities:                []string{"Hand-to-Hand", "Weapons", "Shooting"},
		OccupationLabel:                "Background",
		ShortNotes:                     []string{"Drive", "Previous patron", "Cover"},
		LongNotes:                      []string{"Trust", "Heat", "Contacts", "Safe houses", "Notes"},
		NewPCPacks:                     []string{"gumshoe.nbaInvestigativeAbilities", "gumshoe.nbaGeneralAbilities"},
		NewNPCPacks:                    []string{"gumshoe.nbaGeneralAbilities"},
		UseBoost:                       false,
	}
}

func prTrailOfCthulhu() Preset {
	return Preset{
		SchemaVersion:                  SchemaV1,
		DisplayName:                    "Trail of Cthulhu",
		DefaultTheme:                   theme.BuiltinTeal,
		InvestigativeAbilityCategories: []string{"Academic", "Interpersonal", "Technical"},
		GeneralAbilityCategories:       []string{"General"},
		CombatAbilities:                []string{"Scuffling", "Weapons", "Firearms"},
		OccupationLabel:                "Occupation",
		ShortNotes:                     []string{"Drive", "Pillars of Sanity", "Sources of Stability"},
		LongNotes:                      []string{"Notes, Contacts etc.", "Occupational Benefits"},
		NewPCPacks:                     []string{"gumshoe.totInvestigativeAbilities", "gumshoe.totGeneralAbilities"},
		NewNPCPacks:                    []string{"gumshoe.totGeneralAbilities"},
	}
}

func prPathOfCthulhu() Preset {
	return Preset{
		SchemaVersion:                  SchemaV1,
		DisplayName:                    "Path of Cthulhu",
		DefaultTheme:                   theme.BuiltinTeal,
		InvestigativeAbilityCategories: []string{"Academic", "Interpersonal", "Technical"},
		GeneralAbilityCategories:       []string{"General"},
		CombatAbilities:                []string{"Fighting", "Firearms", "Athletics"},
		OccupationLabel:                "Occupation",
		ShortNotes:                     []string{"Drive", "Sources of Stability"},
		LongNotes:                      []string{"Notes, Contacts etc."},
		NewPCPacks:                     []string{"gumshoe.pocAbilities"},
		NewNPCPacks:                    []string{"gumshoe.pocAbilities"},
	}
}

func prEsoterrorists() Preset {
	return Preset{
		SchemaVersion:                  SchemaV1,
		DisplayName:                    "Esoterrorists 2e",
		DefaultTheme:                   theme.BuiltinHighContrast,
		InvestigativeAbilityCategories: []string{"Academic", "Interpersonal", "Technical"},
		GeneralAbilityCategories:       []string{"General"},
		CombatAbilities:                []string{"Scuffling", "Shooting", "Weapons"},
		OccupationLabel:                "Background",
		ShortNotes:                     []string{"Defining Quality"},
		LongNotes:                      []string{"Notes, Contacts etc."},
		NewPCPacks:                     []string{"gumshoe.esoInvestigativeAbilities", "gumshoe.esoGeneralAbilities"},
		NewNPCPacks:                    []string{"gumshoe.esoGeneralAbilities"},
	}
}

func prFearItself() Preset {
	return Preset{
		SchemaVersion:                  SchemaV1,
		DisplayName:                    "Fear Itself 2e",
		DefaultTheme:                   theme.BuiltinHighContrast,
		InvestigativeAbilityCategories: []string{"Academic", "Interpersonal", "Technical"},
		GeneralAbilityCategories:       []string{"General"},
		CombatAbilities:                []string{"Scuffling", "Shooting", "Weapons"},
		OccupationLabel:                "Occupation",
		ShortNotes:                     []string{"Risk Factor", "Sources of Stability", "Worst Fear"},
		LongNotes:                      []string{"Notes", "Background"},
		NewPCPacks:                     []string{"gumshoe.fiAbilities"},
		NewNPCPacks:                    []string{"gumshoe.fiAbilities"},
	}
}

func prAshenStars() Preset {
	return Preset{
		SchemaVersion:                  SchemaV1,
		DisplayName:                    "Ashen Stars",
		DefaultTheme:                   theme.BuiltinPulp,
		InvestigativeAbilityCategories: []string{"Academic", "Interpersonal", "Technical"},
		GeneralAbilityCategories:       []string{"General"},
		CombatAbilities:                []string{"Scuffling", "Shooting"},
		OccupationLabel:                "Role",
		ShortNotes:                     []string{"Drive", "Species", "Personal Arc"},
		LongNotes:                      []string{"Notes", "Warrants"},
		NewPCPacks:                     []string{"gumshoe.asAbilities"},
		NewNPCPacks:                    []string{"gumshoe.asAbilities"},
		UseBoost:                       true,
	}
}

func prMoribundWorld() Preset {
	return Preset{
		SchemaVersion:                  SchemaV1,
		DisplayName:                    "Moribund World",
		DefaultTheme:                   theme.BuiltinPulp,
		InvestigativeAbilityCategories: []string{},
		GeneralAbilityCategories:       []string{"General"},
		CombatAbilities:                []string{"Fighting", "Shooting"},
		OccupationLabel:                "Profession",
		ShortNotes:                     []string{"Ancestry", "Drive", "Wounds", "Afflictions"},
		LongNotes:                      []string{"Notes", "Relationships"},
		NewPCPacks:                     []string{"gumshoe.mwAbilities"},
		NewNPCPacks:                    []string{"gumshoe.mwNPCAbilities"},
		UseMwStyleAbilities:            true,
		MwHiddenShortNotes:             []string{"Wounds", "Afflictions"},
		MwUseAlternativeItemTypes:      true,
	}
}
