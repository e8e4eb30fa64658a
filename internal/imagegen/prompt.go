package imagegen

import (
	"fmt"

	"github.com/lox/weathercard/internal/theme"
)

// baseStylePrompt defines the consistent visual style for all banners.
const baseStylePrompt = `Minimal flat illustration of a generic city skyline seen from a park.
Style: soft gradients, simple geometric shapes, calm and uncluttered.
Wide panoramic composition suitable for the background of a weather card.
No text, no people, no logos, no recognisable landmarks.`

var themePrompts = map[theme.Tag]string{
	theme.Sunny:   "Bright clear sky, a warm sun high above, crisp shadows, saturated colours.",
	theme.Cloudy:  "Soft layered clouds drifting across the sky, diffused light, gentle greys.",
	theme.Rain:    "Steady rain falling, wet reflective streets, cool blue-grey sky.",
	theme.Snow:    "Snow falling gently, rooftops and trees dusted white, pale winter light.",
	theme.Thunder: "Dark storm clouds, a distant lightning bolt, dramatic contrast.",
	theme.Mist:    "Mist hanging over the skyline, muted tones, soft edges, quiet atmosphere.",
}

var modePrompts = map[theme.Mode]string{
	theme.Light: "Daytime lighting.",
	theme.Dark:  "Night-time scene, deep blue-black sky, city lights glowing softly.",
}

// BuildPrompt creates the image prompt for a theme in a display mode.
func BuildPrompt(tag theme.Tag, mode theme.Mode) string {
	desc, ok := themePrompts[tag]
	if !ok {
		desc = themePrompts[theme.Mist]
	}
	return fmt.Sprintf("%s\n\n%s\n\nWeather: %s", modePrompts[mode], baseStylePrompt, desc)
}
