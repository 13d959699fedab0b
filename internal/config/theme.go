package config

// Theme defines the configurable colors of the terminal UI.
// Category colors come from the backend and are not themed.
type Theme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset" toml:"preset"`

	Accent   string `yaml:"accent" toml:"accent"`
	Title    string `yaml:"title" toml:"title"`
	Subtle   string `yaml:"subtle" toml:"subtle"` // muted/placeholder text
	Normal   string `yaml:"normal" toml:"normal"`
	Selected string `yaml:"selected" toml:"selected"`
	Done     string `yaml:"done" toml:"done"`

	// Notification colors (foreground/background pairs)
	ErrorFg string `yaml:"error_fg" toml:"error_fg"`
	ErrorBg string `yaml:"error_bg" toml:"error_bg"`
}

// DefaultTheme returns the default theme (purple accent)
func DefaultTheme() Theme {
	return Theme{
		Preset:   "default",
		Accent:   "#874BFD",
		Title:    "#D75FD7",
		Subtle:   "#585858",
		Normal:   "#D0D0D0",
		Selected: "#3A3A3A",
		Done:     "#5FD75F",
		ErrorFg:  "#FF0000",
		ErrorBg:  "#5F0000",
	}
}

// MonochromeTheme returns a grayscale theme
func MonochromeTheme() Theme {
	return Theme{
		Preset:   "monochrome",
		Accent:   "#FFFFFF",
		Title:    "#FFFFFF",
		Subtle:   "#6C6C6C",
		Normal:   "#D0D0D0",
		Selected: "#444444",
		Done:     "#BCBCBC",
		ErrorFg:  "#FFFFFF",
		ErrorBg:  "#444444",
	}
}

// PresetTheme returns a preset theme by name, falling back to the default
func PresetTheme(name string) Theme {
	switch name {
	case "monochrome":
		return MonochromeTheme()
	default:
		return DefaultTheme()
	}
}

// ApplyDefaults fills in missing colors from the named preset
func (t *Theme) ApplyDefaults() {
	preset := PresetTheme(t.Preset)

	if t.Preset == "" {
		t.Preset = preset.Preset
	}
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&t.Accent, preset.Accent)
	fill(&t.Title, preset.Title)
	fill(&t.Subtle, preset.Subtle)
	fill(&t.Normal, preset.Normal)
	fill(&t.Selected, preset.Selected)
	fill(&t.Done, preset.Done)
	fill(&t.ErrorFg, preset.ErrorFg)
	fill(&t.ErrorBg, preset.ErrorBg)
}
