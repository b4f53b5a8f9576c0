package api

import (
	"strings"
	"time"

	"github.com/divyakansara2385/solarcalc/internal/dataset"
	"github.com/divyakansara2385/solarcalc/internal/season"
)

// SeasonOption feeds the season selector in the sidebar form.
type SeasonOption struct {
	Value    season.Season
	Icon     string
	Months   string
	Selected bool
}

// ChartData is the series payload embedded into the chart templates.
type ChartData struct {
	Labels []string  `json:"labels"`
	KWH    []float64 `json:"kwh"`
	Color  string    `json:"color"`
}

// ScatterPoint is one x/y pair in a Chart.js scatter dataset.
type ScatterPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ScatterSeries plots daily energy against one sampled parameter.
type ScatterSeries struct {
	ID     string         `json:"id"`
	Label  string         `json:"label"`
	Points []ScatterPoint `json:"points"`
}

// DashboardData drives the index page and both partials.
type DashboardData struct {
	Seasons []SeasonOption
	Years   []int
	Season  season.Season
	Year    int
	Config  season.Config

	HasData     bool
	Summary     dataset.Summary
	Monthly     []dataset.MonthlySummary
	Chart       *ChartData
	Histogram   []dataset.HistogramBin
	Correlation dataset.Correlation
	Scatter     []ScatterSeries
	Ranges      season.Ranges
	CSVName     string
}

func seasonOptions(selected season.Season) []SeasonOption {
	var opts []SeasonOption
	for _, s := range season.All() {
		cfg, _ := season.Lookup(s)
		names := make([]string, len(cfg.Months))
		for i, m := range cfg.Months {
			names[i] = m.String()
		}
		opts = append(opts, SeasonOption{
			Value:    s,
			Icon:     cfg.Icon,
			Months:   strings.Join(names, ", "),
			Selected: s == selected,
		})
	}
	return opts
}

func yearOptions() []int {
	years := make([]int, 0, dataset.MaxYear-dataset.MinYear+1)
	for y := dataset.MinYear; y <= dataset.MaxYear; y++ {
		years = append(years, y)
	}
	return years
}

// buildDashboard assembles the page view model. A nil dataset renders the
// generate-first prompt with the default season selected.
func buildDashboard(ds *dataset.Dataset) DashboardData {
	selected := season.Winter
	year := time.Now().Year()
	if year < dataset.MinYear || year > dataset.MaxYear {
		year = dataset.MinYear
	}

	if ds != nil {
		selected = ds.Season
		year = ds.Year
	}

	cfg, _ := season.Lookup(selected)
	data := DashboardData{
		Seasons: seasonOptions(selected),
		Years:   yearOptions(),
		Season:  selected,
		Year:    year,
		Config:  cfg,
		Ranges:  cfg.Ranges,
	}

	if ds == nil {
		return data
	}

	data.HasData = true
	data.Ranges = ds.Ranges
	data.Summary = dataset.Summarize(ds.Records)
	data.Monthly = dataset.SummarizeMonthly(ds.Records)
	data.Histogram = dataset.Histogram(ds.Records, 30)
	data.Correlation = dataset.Correlate(ds.Records)
	data.Scatter = scatterSeries(ds.Records)
	data.CSVName = dataset.Filename(ds.Season, ds.Year)

	chart := &ChartData{Color: cfg.Color}
	for _, r := range ds.Records {
		chart.Labels = append(chart.Labels, r.Date.Format("2006-01-02"))
		chart.KWH = append(chart.KWH, r.KWH)
	}
	data.Chart = chart
	return data
}

func scatterSeries(records []dataset.Record) []ScatterSeries {
	params := []struct {
		id    string
		label string
		value func(dataset.Record) float64
	}{
		{"irradiance", "Irradiance (W/m²)", func(r dataset.Record) float64 { return r.Irradiance }},
		{"humidity", "Humidity (%)", func(r dataset.Record) float64 { return r.Humidity }},
		{"wind_speed", "Wind Speed (m/s)", func(r dataset.Record) float64 { return r.WindSpeed }},
		{"ambient_temperature", "Ambient Temperature (°C)", func(r dataset.Record) float64 { return r.AmbientTemperature }},
		{"tilt_angle", "Tilt Angle (°)", func(r dataset.Record) float64 { return r.TiltAngle }},
	}

	out := make([]ScatterSeries, 0, len(params))
	for _, p := range params {
		s := ScatterSeries{ID: p.id, Label: p.label, Points: make([]ScatterPoint, 0, len(records))}
		for _, r := range records {
			s.Points = append(s.Points, ScatterPoint{X: p.value(r), Y: r.KWH})
		}
		out = append(out, s)
	}
	return out
}
