package theme

import (
	"fmt"
	"strings"
)

// Tag is the visual theme applied to the card for a weather condition.
type Tag string

const (
	Sunny   Tag = "sunny"
	Cloudy  Tag = "cloudy"
	Rain    Tag = "rain"
	Snow    Tag = "snow"
	Thunder Tag = "thunder"
	Mist    Tag = "mist"
)

// Tags returns every theme tag in classification order, with the default last.
func Tags() []Tag {
	return []Tag{Sunny, Cloudy, Rain, Snow, Thunder, Mist}
}

// Valid reports whether t is one of the known tags.
func (t Tag) Valid() bool {
	switch t {
	case Sunny, Cloudy, Rain, Snow, Thunder, Mist:
		return true
	}
	return false
}

// ParseTag converts a tag name back into a Tag.
func ParseTag(s string) (Tag, error) {
	t := Tag(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown theme %q", s)
	}
	return t, nil
}

// Classify maps a provider condition label (e.g. "Rain", "few clouds") to a
// theme tag. The first matching keyword wins, so "cloudy with rain" is Cloudy.
// Empty and unrecognised labels fall back to Mist.
func Classify(label string) Tag {
	if label == "" {
		return Mist
	}
	lower := strings.ToLower(label)

	if strings.Contains(lower, "clear") {
		return Sunny
	}
	if strings.Contains(lower, "cloud") {
		return Cloudy
	}
	if strings.Contains(lower, "rain") || strings.Contains(lower, "drizzle") {
		return Rain
	}
	if strings.Contains(lower, "snow") {
		return Snow
	}
	if strings.Contains(lower, "thunder") || strings.Contains(lower, "storm") {
		return Thunder
	}
	return Mist
}
