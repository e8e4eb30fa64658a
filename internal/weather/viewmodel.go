// Package weather flattens OpenWeatherMap current-conditions payloads into a
// display-ready view model.
package weather

import (
	"fmt"
	"math"

	"github.com/tidwall/gjson"
)

// IconBaseURL is the provider's icon CDN.
const IconBaseURL = "https://openweathermap.org/img/wn/"

// ViewModel is one search result as shown on the card. Every field is
// optional: nil means the provider did not send it.
type ViewModel struct {
	LocationName  *string  `json:"location_name,omitempty"`
	CountryCode   *string  `json:"country_code,omitempty"`
	TemperatureC  *float64 `json:"temperature_c,omitempty"`
	FeelsLikeC    *float64 `json:"feels_like_c,omitempty"`
	HumidityPct   *float64 `json:"humidity_pct,omitempty"`
	WindSpeedMs   *float64 `json:"wind_speed_ms,omitempty"`
	Description   *string  `json:"description,omitempty"`
	ConditionMain *string  `json:"condition_main,omitempty"`
	IconID        *string  `json:"icon_id,omitempty"`
}

// Normalize extracts the card fields from a raw provider payload. It never
// fails: malformed JSON or missing blocks simply leave fields nil. Only the
// first entry of the "weather" array is used.
func Normalize(raw []byte) ViewModel {
	if !gjson.ValidBytes(raw) {
		return ViewModel{}
	}
	doc := gjson.ParseBytes(raw)

	return ViewModel{
		LocationName:  str(doc.Get("name")),
		CountryCode:   str(doc.Get("sys.country")),
		TemperatureC:  num(doc.Get("main.temp")),
		FeelsLikeC:    num(doc.Get("main.feels_like")),
		HumidityPct:   num(doc.Get("main.humidity")),
		WindSpeedMs:   num(doc.Get("wind.speed")),
		Description:   str(doc.Get("weather.0.description")),
		ConditionMain: str(doc.Get("weather.0.main")),
		IconID:        str(doc.Get("weather.0.icon")),
	}
}

func str(r gjson.Result) *string {
	if r.Type != gjson.String {
		return nil
	}
	s := r.String()
	return &s
}

func num(r gjson.Result) *float64 {
	if r.Type != gjson.Number {
		return nil
	}
	f := r.Float()
	return &f
}

// Empty reports whether the payload carried nothing worth showing.
func (v ViewModel) Empty() bool {
	return v == ViewModel{}
}

// ThemeLabel is the text fed to the theme classifier: the condition group,
// falling back to the free-text description.
func (v ViewModel) ThemeLabel() string {
	if v.ConditionMain != nil && *v.ConditionMain != "" {
		return *v.ConditionMain
	}
	if v.Description != nil {
		return *v.Description
	}
	return ""
}

// IconURL returns the 4x icon URL for the condition, or "" without an icon.
func (v ViewModel) IconURL() string {
	if v.IconID == nil || *v.IconID == "" {
		return ""
	}
	return IconURL(*v.IconID)
}

// IconURL builds the CDN URL for an icon identifier such as "10d".
func IconURL(id string) string {
	return IconBaseURL + id + "@4x.png"
}

// Missing is rendered in place of absent values.
const Missing = "—"

// Round rounds half up, so -2.5 becomes -2 and 2.5 becomes 3.
func Round(f float64) float64 {
	return math.Floor(f + 0.5)
}

func rounded(f *float64) string {
	if f == nil {
		return Missing
	}
	r := Round(*f)
	if r == 0 {
		r = 0 // avoid "-0"
	}
	return fmt.Sprintf("%.0f", r)
}

// Location is "Name, CC" with whichever parts are present.
func (v ViewModel) Location() string {
	switch {
	case v.LocationName != nil && v.CountryCode != nil:
		return *v.LocationName + ", " + *v.CountryCode
	case v.LocationName != nil:
		return *v.LocationName
	case v.CountryCode != nil:
		return *v.CountryCode
	}
	return Missing
}

// Temp is the rounded temperature without a unit.
func (v ViewModel) Temp() string { return rounded(v.TemperatureC) }

// FeelsLike is the rounded apparent temperature without a unit.
func (v ViewModel) FeelsLike() string { return rounded(v.FeelsLikeC) }

// Humidity is the relative humidity with its percent sign.
func (v ViewModel) Humidity() string {
	if v.HumidityPct == nil {
		return Missing
	}
	return fmt.Sprintf("%g%%", *v.HumidityPct)
}

// Wind is the wind speed in m/s.
func (v ViewModel) Wind() string {
	if v.WindSpeedMs == nil {
		return Missing
	}
	return fmt.Sprintf("%g m/s", *v.WindSpeedMs)
}

// Condition is the provider's condition group, e.g. "Rain".
func (v ViewModel) Condition() string {
	if v.ConditionMain == nil {
		return Missing
	}
	return *v.ConditionMain
}

// Desc is the provider's description, e.g. "light rain".
func (v ViewModel) Desc() string {
	if v.Description == nil {
		return Missing
	}
	return *v.Description
}
