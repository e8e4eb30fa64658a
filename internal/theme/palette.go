package theme

import "fmt"

// Mode is the light/dark display preference.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ModeFor returns Dark when dark is set, Light otherwise.
func ModeFor(dark bool) Mode {
	if dark {
		return Dark
	}
	return Light
}

// Palette defines the colour scheme for a theme tag in a display mode.
type Palette struct {
	// Background is the page background behind the card
	Background string
	// Card is the card surface
	Card string
	// CardBorder is the card outline
	CardBorder string
	// Text is the primary text colour
	Text string
	// TextMuted is used for labels and secondary values
	TextMuted string
	// Accent highlights the temperature and buttons
	Accent string
	// Error is the colour of the alert line
	Error string
}

// DefaultPalette is used for unknown keys; it matches mist/light.
var DefaultPalette = Palette{
	Background: "#e6e9ee",
	Card:       "#f7f8fa",
	CardBorder: "#d0d5dd",
	Text:       "#1f2933",
	TextMuted:  "#616e7c",
	Accent:     "#52606d",
	Error:      "#c53030",
}

var palettes = map[string]Palette{
	"sunny_light": {
		Background: "#fff4d6", // warm cream
		Card:       "#ffffff",
		CardBorder: "#f5d08a",
		Text:       "#3b2a10",
		TextMuted:  "#8a6d3b",
		Accent:     "#f08c00",
		Error:      "#c53030",
	},
	"sunny_dark": {
		Background: "#1e1a12",
		Card:       "#2b241a",
		CardBorder: "#5a4526",
		Text:       "#fff3dc",
		TextMuted:  "#b39a6e",
		Accent:     "#ffb347",
		Error:      "#ff8a8a",
	},
	"cloudy_light": {
		Background: "#dfe6ee",
		Card:       "#f4f7fa",
		CardBorder: "#c3ccd7",
		Text:       "#1f2d3d",
		TextMuted:  "#5f6f82",
		Accent:     "#5b7da3",
		Error:      "#c53030",
	},
	"cloudy_dark": {
		Background: "#161b22",
		Card:       "#202833",
		CardBorder: "#33404f",
		Text:       "#e3e9f0",
		TextMuted:  "#8796a8",
		Accent:     "#8fb3d9",
		Error:      "#ff8a8a",
	},
	"rain_light": {
		Background: "#d3e0ea",
		Card:       "#eef4f8",
		CardBorder: "#a9bfd0",
		Text:       "#14283a",
		TextMuted:  "#4d6479",
		Accent:     "#2f6f9f",
		Error:      "#c53030",
	},
	"rain_dark": {
		Background: "#0d1620",
		Card:       "#15222f",
		CardBorder: "#263a4e",
		Text:       "#dbe7f2",
		TextMuted:  "#7890a6",
		Accent:     "#5fa8e0",
		Error:      "#ff8a8a",
	},
	"snow_light": {
		Background: "#eef3f8",
		Card:       "#ffffff",
		CardBorder: "#d5e0ea",
		Text:       "#22303d",
		TextMuted:  "#6b7b8a",
		Accent:     "#4a90c2",
		Error:      "#c53030",
	},
	"snow_dark": {
		Background: "#141a22",
		Card:       "#1d2530",
		CardBorder: "#34414f",
		Text:       "#f0f5fa",
		TextMuted:  "#93a3b3",
		Accent:     "#a8d0f0",
		Error:      "#ff8a8a",
	},
	"thunder_light": {
		Background: "#cfd0dc",
		Card:       "#ecedf3",
		CardBorder: "#a7a9bf",
		Text:       "#1c1b2e",
		TextMuted:  "#55546e",
		Accent:     "#6a4fb3",
		Error:      "#c53030",
	},
	"thunder_dark": {
		Background: "#0c0b16",
		Card:       "#171628",
		CardBorder: "#2d2a4a",
		Text:       "#e6e4f5",
		TextMuted:  "#7d7a9c",
		Accent:     "#f5d547", // lightning
		Error:      "#ff8a8a",
	},
	"mist_light": DefaultPalette,
	"mist_dark": {
		Background: "#15181c",
		Card:       "#1f2328",
		CardBorder: "#363c44",
		Text:       "#e4e7eb",
		TextMuted:  "#8a939e",
		Accent:     "#b0bac5",
		Error:      "#ff8a8a",
	},
}

// PaletteFor returns the palette for a tag in the given mode.
func PaletteFor(tag Tag, mode Mode) Palette {
	if p, ok := palettes[fmt.Sprintf("%s_%s", tag, mode)]; ok {
		return p
	}
	return DefaultPalette
}

// Particle is one animated element drawn over the card background.
type Particle struct {
	Kind    string // "drop", "flake", "cloud", "flash" or "sun"
	LeftPct int
	DelayMs int
}

// Animation returns the background elements for a theme. Mist has none.
func Animation(tag Tag) []Particle {
	var ps []Particle
	switch tag {
	case Rain:
		for i := 0; i < 12; i++ {
			ps = append(ps, Particle{Kind: "drop", LeftPct: i * 8, DelayMs: i * 120})
		}
	case Snow:
		for i := 0; i < 10; i++ {
			ps = append(ps, Particle{Kind: "flake", LeftPct: (i * 10) % 100, DelayMs: i * 200})
		}
	case Cloudy:
		ps = []Particle{{Kind: "cloud", LeftPct: 10}, {Kind: "cloud", LeftPct: 55, DelayMs: 1500}}
	case Thunder:
		ps = []Particle{{Kind: "cloud", LeftPct: 10}, {Kind: "flash"}}
	case Sunny:
		ps = []Particle{{Kind: "sun", LeftPct: 75}}
	}
	return ps
}
