package theme

// Builtin ids, in the order they are installed.
const (
	BuiltinTeal         = "tealTheme"
	BuiltinNice         = "niceTheme"
	BuiltinHighContrast = "highContrastTheme"
	BuiltinPulp         = "pulpTheme"
)

// BuiltinIDs returns the ids of the shipped themes.
func BuiltinIDs() []string {
	return []string{BuiltinTeal, BuiltinNice, BuiltinHighContrast, BuiltinPulp}
}

// Builtins returns fresh copies of the shipped theme seeds keyed by id.
func Builtins() map[string]Seed {
	return map[string]Seed{
		BuiltinTeal:         thTealSeed(),
		BuiltinNice:         thNiceSeed(),
		BuiltinHighContrast: thHighContrastSeed(),
		BuiltinPulp:         thPulpSeed(),
	}
}

func thFloat(f float64) *float64 { return &f }

// thTealSeed is the default: muted teal paper with a serif display face.
func thTealSeed() Seed {
	return Seed{
		SchemaVersion: SchemaV1,
		DisplayName:   "Teal of Cthulhu",
		Global:        "@import url('https://fonts.googleapis.com/css2?family=Federo&display=swap');",
		LargeSheetRootStyle: Style{
			"backgroundImage": "linear-gradient(135deg, #0f3b3a 0%, #1c5b58 100%)",
		},
		SmallSheetRootStyle: Style{
			"backgroundColor": "#d9ecea",
		},
		BodyFont:    "16px 'Roboto Slab', serif",
		DisplayFont: "normal normal 400 1.2em 'Federo', serif",
		Logo: LogoSeed{
			FrontTextElementStyle: Style{
				"background":           "linear-gradient(0deg, #0a2a29 0%, #2a8c86 100%)",
				"backgroundClip":       "text",
				"WebkitBackgroundClip": "text",
				"color":                "transparent",
			},
			RearTextElementStyle: Style{
				"textShadow": "2px 2px 4px #000",
			},
			TextElementsStyle: Style{
				"font": "900 1em 'Federo', serif",
			},
			BackdropStyle: Style{
				"background": "radial-gradient(closest-side, #ffffffaa, #ffffff00)",
			},
		},
		Colors: Colors{
			Accent:              "#016e6a",
			AccentContrast:      "#ffffff",
			Glow:                "#5effff",
			Wallpaper:           "#ddd",
			Text:                "#033",
			BackgroundButton:    "rgba(0,0,0,0.1)",
			BackgroundPrimary:   "#ffffffbb",
			BackgroundSecondary: "#ffffff77",
		},
	}
}

// thNiceSeed is a warm parchment theme.
func thNiceSeed() Seed {
	return Seed{
		SchemaVersion: SchemaV1,
		DisplayName:   "Nice and Clean",
		LargeSheetRootStyle: Style{
			"backgroundColor": "#f4efe6",
		},
		BodyFont:    "16px 'Source Serif Pro', serif",
		DisplayFont: "small-caps normal 600 1.1em 'Source Serif Pro', serif",
		Logo: LogoSeed{
			FontScaleFactor: thFloat(12),
			FrontTextElementStyle: Style{
				"color": "#5b3a1a",
			},
			RearTextElementStyle: Style{
				"color": "#d8c4a0",
			},
			TextElementsStyle: Style{
				"font": "700 1em 'Source Serif Pro', serif",
			},
			BackdropStyle: Style{},
		},
		Colors: Colors{
			Accent:              "#8a4b16",
			AccentContrast:      "white",
			Glow:                "#ffcf8a",
			Wallpaper:           "#efe6d6",
			Text:                "#2b1d0e",
			BackgroundButton:    "rgba(138, 75, 22, 0.15)",
			BackgroundPrimary:   "#fffaf2",
			BackgroundSecondary: "#f6ecdc",
			ControlBorder:       "#8a4b16",
		},
	}
}

// thHighContrastSeed favours legibility over atmosphere.
func thHighContrastSeed() Seed {
	return Seed{
		SchemaVersion: SchemaV1,
		DisplayName:   "High Contrast",
		LargeSheetRootStyle: Style{
			"backgroundColor": "black",
		},
		BodyFont:    "16px sans-serif",
		DisplayFont: "bold 1.1em sans-serif",
		Logo: LogoSeed{
			FrontTextElementStyle: Style{"color": "white"},
			RearTextElementStyle:  Style{"display": "none"},
			TextElementsStyle:     Style{"font": "900 1em sans-serif"},
			BackdropStyle:         Style{},
		},
		Colors: Colors{
			Accent:              "#ffff00",
			AccentContrast:      "#000000",
			Glow:                "#00ffff",
			Wallpaper:           "#000000",
			Text:                "#ffffff",
			BackgroundButton:    "#333333",
			BackgroundPrimary:   "#000000",
			BackgroundSecondary: "#1a1a1a",
			Danger:              "#ff4040",
		},
	}
}

// thPulpSeed is a lurid two-tone pulp magazine cover.
func thPulpSeed() Seed {
	return Seed{
		SchemaVersion: SchemaV1,
		DisplayName:   "Pulp Fiction",
		Global:        "@import url('https://fonts.googleapis.com/css2?family=Bangers&display=swap');",
		LargeSheetRootStyle: Style{
			"backgroundColor": "#f2d36b",
			"backgroundImage": "repeating-linear-gradient(45deg, transparent, transparent 10px, rgba(0,0,0,0.03) 10px, rgba(0,0,0,0.03) 20px)",
		},
		AppWindowStyle: Style{
			"border": "2px solid #b3261e",
		},
		BodyFont:    "15px 'Courier Prime', monospace",
		DisplayFont: "normal 1.3em 'Bangers', cursive",
		Logo: LogoSeed{
			FontScaleFactor: thFloat(16),
			FrontTextElementStyle: Style{
				"color": "#b3261e",
			},
			RearTextElementStyle: Style{
				"color":      "#1d1d1d",
				"transform":  "translate(0.05em, 0.05em)",
				"textShadow": "none",
			},
			TextElementsStyle: Style{
				"font":          "normal 1em 'Bangers', cursive",
				"letterSpacing": "0.05em",
			},
			BackdropStyle: Style{
				"backgroundColor": "hsl(48, 83%, 68%)",
			},
		},
		Colors: Colors{
			Accent:              "#b3261e",
			AccentContrast:      "#fff6d5",
			Glow:                "hsl(5, 90%, 60%)",
			Wallpaper:           "#f2d36b",
			Text:                "#1d1d1d",
			BackgroundButton:    "rgb(179 38 30 / 20%)",
			BackgroundPrimary:   "rgba(255, 250, 230, 0.8)",
			BackgroundSecondary: "rgba(255, 250, 230, 0.5)",
		},
	}
}
