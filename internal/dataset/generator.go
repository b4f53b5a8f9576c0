package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/divyakansara2385/solarcalc/internal/season"
)

// Year limits matching the dashboard's year control.
const (
	MinYear = 2020
	MaxYear = 2030
)

// Generator samples daily records. The zero value is not usable; construct
// with New or NewSeeded. Safe for use from concurrent HTTP handlers: the
// underlying rand source is guarded by a mutex.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a generator with a time-seeded source. Successive runs produce
// different datasets on purpose.
func New() *Generator {
	return &Generator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeeded returns a generator with a fixed seed, for reproducible datasets.
func NewSeeded(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate produces one record per calendar day of the season's months in the
// given year, sampling each parameter uniformly within ranges. The record
// count always equals the sum of days-in-month over the season's months,
// including February 29 in leap years.
func (g *Generator) Generate(s season.Season, ranges season.Ranges, year int) (*Dataset, error) {
	cfg, ok := season.Lookup(s)
	if !ok {
		return nil, fmt.Errorf("unknown season %q", s)
	}
	if year < MinYear || year > MaxYear {
		return nil, fmt.Errorf("year %d outside supported range %d-%d", year, MinYear, MaxYear)
	}
	if err := ranges.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ranges: %w", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ds := &Dataset{
		Season:      s,
		Year:        year,
		Ranges:      ranges,
		GeneratedAt: time.Now(),
	}

	for _, month := range cfg.Months {
		for day := 1; day <= daysInMonth(year, month); day++ {
			irr := g.sample(ranges.Irradiance)
			hum := g.sample(ranges.Humidity)
			wind := g.sample(ranges.WindSpeed)
			temp := g.sample(ranges.AmbientTemperature)
			tilt := g.sample(ranges.TiltAngle)

			ds.Records = append(ds.Records, Record{
				Date:               time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
				Irradiance:         irr,
				Humidity:           hum,
				WindSpeed:          wind,
				AmbientTemperature: temp,
				TiltAngle:          tilt,
				KWH:                round2(cfg.Energy(irr, hum, wind, temp, tilt)),
				Season:             s,
				Month:              month.String(),
				Day:                day,
			})
		}
	}
	return ds, nil
}

// sample draws uniformly from [r.Min, r.Max) and rounds to 2 decimals.
// Rounding can cross either bound, so the result is clamped back to the
// nearest 2-decimal value inside the interval. A range narrower than 0.01 may
// contain no such value; it collapses to the rounded lower bound.
func (g *Generator) sample(r season.Range) float64 {
	if r.Max <= r.Min {
		return round2(r.Min)
	}
	v := round2(r.Min + g.rng.Float64()*(r.Max-r.Min))
	if v >= r.Max {
		v = round2(r.Max - 0.01)
	}
	if v < r.Min {
		v = math.Ceil(r.Min*100) / 100
		if v >= r.Max {
			v = round2(r.Min)
		}
	}
	return v
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the following month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
