// Package dataset generates and summarizes synthetic daily solar production
// records for one season of one year.
package dataset

import (
	"math"
	"time"

	"github.com/divyakansara2385/solarcalc/internal/season"
)

// Record is one synthetic day. Parameters and the derived kWh value are
// rounded to 2 decimals at creation and never modified afterwards.
type Record struct {
	Date               time.Time     `json:"date"`
	Irradiance         float64       `json:"irradiance"`
	Humidity           float64       `json:"humidity"`
	WindSpeed          float64       `json:"wind_speed"`
	AmbientTemperature float64       `json:"ambient_temperature"`
	TiltAngle          float64       `json:"tilt_angle"`
	KWH                float64       `json:"kwh"`
	Season             season.Season `json:"season"`
	Month              string        `json:"month"`
	Day                int           `json:"day"`
}

// Dataset is the product of one generation call: the records for every
// calendar day in the season, in season month order, plus the bounds that
// were sampled from.
type Dataset struct {
	Season      season.Season `json:"season"`
	Year        int           `json:"year"`
	Ranges      season.Ranges `json:"ranges"`
	Records     []Record      `json:"records"`
	GeneratedAt time.Time     `json:"generated_at"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
