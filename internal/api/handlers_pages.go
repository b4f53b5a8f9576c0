package api

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/divyakansara2385/solarcalc/internal/dataset"
	"github.com/divyakansara2385/solarcalc/internal/metrics"
	"github.com/divyakansara2385/solarcalc/internal/season"
	"github.com/divyakansara2385/solarcalc/internal/session"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	data := buildDashboard(s.currentDataset(w, r))
	if err := s.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Printf("template error: %v", err)
	}
}

// handleGenerate runs one generation for the submitted season/year and stores
// the result on the session, replacing the previous dataset.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	sn, err := season.Parse(r.PostFormValue("season"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	year, err := strconv.Atoi(r.PostFormValue("year"))
	if err != nil {
		http.Error(w, "year must be an integer", http.StatusBadRequest)
		return
	}
	if year < dataset.MinYear || year > dataset.MaxYear {
		http.Error(w, fmt.Sprintf("year must be between %d and %d", dataset.MinYear, dataset.MaxYear), http.StatusBadRequest)
		return
	}

	cfg, _ := season.Lookup(sn)
	ranges := cfg.Ranges
	var override *season.Ranges
	if r.PostFormValue("custom") == "1" {
		custom, err := parseCustomRanges(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := custom.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		ranges = custom
		override = &custom
	}

	ds, err := s.gen.Generate(sn, ranges, year)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	id := s.sessionID(w, r)
	if id == "" {
		http.Error(w, "could not establish session", http.StatusInternalServerError)
		return
	}
	s.sessions.Put(id, session.State{Dataset: ds, Ranges: override})

	metrics.GenerationsTotal.WithLabelValues(string(sn)).Inc()
	metrics.RecordsGenerated.Add(float64(len(ds.Records)))
	log.Printf("generated %d records for %s %d", len(ds.Records), sn, year)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// parseCustomRanges reads the five min/max pairs of the advanced settings
// form. All ten fields are required once custom mode is on.
func parseCustomRanges(r *http.Request) (season.Ranges, error) {
	var ranges season.Ranges
	fields := []struct {
		name string
		dst  *season.Range
	}{
		{"irradiance", &ranges.Irradiance},
		{"humidity", &ranges.Humidity},
		{"wind_speed", &ranges.WindSpeed},
		{"ambient_temperature", &ranges.AmbientTemperature},
		{"tilt_angle", &ranges.TiltAngle},
	}
	for _, f := range fields {
		min, err := strconv.ParseFloat(r.PostFormValue(f.name+"_min"), 64)
		if err != nil {
			return ranges, fmt.Errorf("%s_min: not a number", f.name)
		}
		max, err := strconv.ParseFloat(r.PostFormValue(f.name+"_max"), 64)
		if err != nil {
			return ranges, fmt.Errorf("%s_max: not a number", f.name)
		}
		*f.dst = season.Range{Min: min, Max: max}
	}
	return ranges, nil
}

func (s *Server) handleMetricsPartial(w http.ResponseWriter, r *http.Request) {
	data := buildDashboard(s.currentDataset(w, r))
	tmpl := "metrics.html"
	if !data.HasData {
		tmpl = "prompt.html"
	}
	if err := s.tmpl.ExecuteTemplate(w, tmpl, data); err != nil {
		log.Printf("template error: %v", err)
	}
}

func (s *Server) handleChartPartial(w http.ResponseWriter, r *http.Request) {
	data := buildDashboard(s.currentDataset(w, r))
	tmpl := "chart.html"
	if !data.HasData {
		tmpl = "prompt.html"
	}
	if err := s.tmpl.ExecuteTemplate(w, tmpl, data); err != nil {
		log.Printf("template error: %v", err)
	}
}
