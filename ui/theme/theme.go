package theme

// Palette constants and InitStyles, which activates a base theme and
// configures the semantic widget styles of the resizer window.

import (
	tk "modernc.org/tk9.0"
)

// Palette is a resolved set of semantic colors.
type Palette struct {
	AppBg     string
	Surface   string
	Primary   string
	Danger    string
	Accent    string
	Text      string
	TextMuted string
}

var (
	light = Palette{
		AppBg:     "#f7f9fb",
		Surface:   "#ffffff",
		Primary:   "#2563eb",
		Danger:    "#dc2626", // the red Reset button
		Accent:    "#10b981",
		Text:      "#1e293b",
		TextMuted: "#64748b",
	}
	dark = Palette{
		AppBg:     "#0f172a",
		Surface:   "#1e293b",
		Primary:   "#3b82f6",
		Danger:    "#ef4444",
		Accent:    "#10b981",
		Text:      "#f1f5f9",
		TextMuted: "#94a3b8",
	}
)

// style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleStateLabel    = "state.TLabel"
)

var darkMode bool

// Current returns the palette of the active mode.
func Current() Palette {
	if darkMode {
		return dark
	}
	return light
}

// InitStyles applies the light or dark styles.
func InitStyles(useDark bool) {
	darkMode = useDark
	p := Current()
	if darkMode {
		_ = tk.ActivateTheme("azure dark")
	} else {
		_ = tk.ActivateTheme("azure light")
	}
	tk.App.Configure(tk.Background(p.AppBg))

	button := func(name, bg string) {
		tk.StyleConfigure(name,
			tk.Background(bg),
			tk.Foreground("white"),
			tk.Padding("4p 3p"),
			tk.Borderwidth(1),
			tk.Relief("ridge"),
		)
	}
	button(StylePrimaryButton, p.Primary)
	button(StyleDangerButton, p.Danger)

	tk.StyleConfigure(StyleStateLabel,
		tk.Foreground(p.Text),
		tk.Background(p.Surface),
		tk.Padding("4p 2p"),
		tk.Borderwidth(1),
		tk.Relief("groove"),
	)
}
