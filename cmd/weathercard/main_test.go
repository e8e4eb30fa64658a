package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lox/weathercard/internal/card"
	"github.com/lox/weathercard/internal/theme"
	"github.com/lox/weathercard/internal/weather"
)

func TestPrintCard(t *testing.T) {
	vm := weather.Normalize([]byte(`{
		"weather": [{"main": "Snow", "description": "light snow", "icon": "13d"}],
		"main": {"temp": -2.5, "feels_like": -7.2, "humidity": 93},
		"sys": {"country": "NO"},
		"name": "Oslo"
	}`))
	snap := card.Snapshot{Status: card.StatusSuccess, City: "Oslo", Weather: &vm, Theme: theme.Snow, Dark: true}

	var buf bytes.Buffer
	if err := printCard(&buf, snap); err != nil {
		t.Fatalf("printCard: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Oslo, NO",
		"-2°C (feels like -7°C)",
		"light snow",
		"Wind " + weather.Missing,
		"Theme snow (dark)",
		"https://openweathermap.org/img/wn/13d@4x.png",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintCard_Error(t *testing.T) {
	err := printCard(&bytes.Buffer{}, card.Snapshot{Status: card.StatusError, Error: "City not found."})
	if err == nil || err.Error() != "City not found." {
		t.Errorf("err = %v", err)
	}
}
