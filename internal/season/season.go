// Package season defines the four generation seasons: which calendar months
// each covers, the default sampling ranges for the weather-like parameters,
// and the coefficient set used by the energy formula.
package season

import (
	"fmt"
	"math"
	"time"
)

// Season identifies one of the four fixed seasons.
type Season string

const (
	Winter Season = "winter"
	Spring Season = "spring"
	Summer Season = "summer"
	Autumn Season = "autumn"
)

// All returns the seasons in display order.
func All() []Season {
	return []Season{Winter, Spring, Summer, Autumn}
}

// Parse validates a season name. The set is closed; anything else is an error.
func Parse(s string) (Season, error) {
	switch Season(s) {
	case Winter, Spring, Summer, Autumn:
		return Season(s), nil
	}
	return "", fmt.Errorf("unknown season %q", s)
}

// Range is a half-open sampling interval [Min, Max) for one parameter.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Ranges holds the sampling bounds for the five generated parameters.
type Ranges struct {
	Irradiance         Range `json:"irradiance"`
	Humidity           Range `json:"humidity"`
	WindSpeed          Range `json:"wind_speed"`
	AmbientTemperature Range `json:"ambient_temperature"`
	TiltAngle          Range `json:"tilt_angle"`
}

// Bounds are the outer limits a custom range may be adjusted within,
// matching the slider limits of the dashboard controls.
var Bounds = Ranges{
	Irradiance:         Range{Min: 0, Max: 1200},
	Humidity:           Range{Min: 0, Max: 100},
	WindSpeed:          Range{Min: 0, Max: 15},
	AmbientTemperature: Range{Min: -10, Max: 50},
	TiltAngle:          Range{Min: 0, Max: 60},
}

// Validate checks every range for min <= max and containment in Bounds.
func (r Ranges) Validate() error {
	checks := []struct {
		name  string
		r     Range
		bound Range
	}{
		{"irradiance", r.Irradiance, Bounds.Irradiance},
		{"humidity", r.Humidity, Bounds.Humidity},
		{"wind_speed", r.WindSpeed, Bounds.WindSpeed},
		{"ambient_temperature", r.AmbientTemperature, Bounds.AmbientTemperature},
		{"tilt_angle", r.TiltAngle, Bounds.TiltAngle},
	}
	for _, c := range checks {
		if c.r.Min > c.r.Max {
			return fmt.Errorf("%s: min %.2f greater than max %.2f", c.name, c.r.Min, c.r.Max)
		}
		if c.r.Min < c.bound.Min || c.r.Max > c.bound.Max {
			return fmt.Errorf("%s: range [%.2f, %.2f] outside allowed [%.2f, %.2f]",
				c.name, c.r.Min, c.r.Max, c.bound.Min, c.bound.Max)
		}
	}
	return nil
}

// Coefficients are the per-season linear weights of the energy formula.
type Coefficients struct {
	Irradiance  float64 `json:"irradiance"`
	Humidity    float64 `json:"humidity"`
	Wind        float64 `json:"wind"`
	Temperature float64 `json:"temperature"`
	Tilt        float64 `json:"tilt"`
}

// Config is the immutable template for one season. Callers that want custom
// sampling bounds pass their own Ranges to the generator; the table itself is
// never mutated.
type Config struct {
	Months       []time.Month `json:"months"`
	Ranges       Ranges       `json:"ranges"`
	Coefficients Coefficients `json:"coefficients"`
	OptimalTilt  float64      `json:"optimal_tilt"`
	Color        string       `json:"color"`
	Icon         string       `json:"icon"`
}

// The four seasons partition the twelve months with no overlap and no gaps.
// Winter runs November through February, in that order.
var configs = map[Season]Config{
	Winter: {
		Months: []time.Month{time.November, time.December, time.January, time.February},
		Ranges: Ranges{
			Irradiance:         Range{300, 700},
			Humidity:           Range{30, 70},
			WindSpeed:          Range{1, 6},
			AmbientTemperature: Range{5, 20},
			TiltAngle:          Range{10, 40},
		},
		Coefficients: Coefficients{Irradiance: 0.18, Humidity: -0.03, Wind: 0.015, Temperature: 0.08, Tilt: -0.02},
		OptimalTilt:  30,
		Color:        "#3498db",
		Icon:         "❄️",
	},
	Spring: {
		Months: []time.Month{time.March, time.April, time.May},
		Ranges: Ranges{
			Irradiance:         Range{400, 800},
			Humidity:           Range{40, 80},
			WindSpeed:          Range{2, 8},
			AmbientTemperature: Range{15, 25},
			TiltAngle:          Range{15, 35},
		},
		Coefficients: Coefficients{Irradiance: 0.20, Humidity: -0.025, Wind: 0.02, Temperature: 0.06, Tilt: -0.015},
		OptimalTilt:  30,
		Color:        "#2ecc71",
		Icon:         "🌸",
	},
	Summer: {
		Months: []time.Month{time.June, time.July, time.August},
		Ranges: Ranges{
			Irradiance:         Range{600, 1000},
			Humidity:           Range{50, 90},
			WindSpeed:          Range{3, 10},
			AmbientTemperature: Range{25, 40},
			TiltAngle:          Range{0, 30},
		},
		Coefficients: Coefficients{Irradiance: 0.22, Humidity: -0.035, Wind: 0.025, Temperature: 0.04, Tilt: -0.01},
		OptimalTilt:  20,
		Color:        "#f39c12",
		Icon:         "☀️",
	},
	Autumn: {
		Months: []time.Month{time.September, time.October},
		Ranges: Ranges{
			Irradiance:         Range{350, 750},
			Humidity:           Range{35, 75},
			WindSpeed:          Range{2, 7},
			AmbientTemperature: Range{10, 25},
			TiltAngle:          Range{20, 45},
		},
		Coefficients: Coefficients{Irradiance: 0.19, Humidity: -0.028, Wind: 0.018, Temperature: 0.07, Tilt: -0.018},
		OptimalTilt:  20,
		Color:        "#e67e22",
		Icon:         "🍂",
	},
}

// Lookup returns the configuration for a season.
func Lookup(s Season) (Config, bool) {
	cfg, ok := configs[s]
	return cfg, ok
}

// Energy computes the daily production estimate in kWh. Pure and
// deterministic given its inputs.
func (c Config) Energy(irradiance, humidity, windSpeed, ambientTemp, tiltAngle float64) float64 {
	return c.Coefficients.Irradiance*irradiance +
		c.Coefficients.Humidity*humidity +
		c.Coefficients.Wind*windSpeed +
		c.Coefficients.Temperature*ambientTemp +
		c.Coefficients.Tilt*math.Abs(tiltAngle-c.OptimalTilt)
}
