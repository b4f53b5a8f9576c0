package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/divyakansara2385/solarcalc/internal/chartimg"
	"github.com/divyakansara2385/solarcalc/internal/dataset"
	"github.com/divyakansara2385/solarcalc/internal/metrics"
	"github.com/divyakansara2385/solarcalc/internal/season"
)

func (s *Server) handleAPIDataset(w http.ResponseWriter, r *http.Request) {
	ds := s.currentDataset(w, r)
	if ds == nil {
		noDataError(w)
		return
	}
	writeJSON(w, ds)
}

// StatsResponse bundles every derived view of the dataset.
type StatsResponse struct {
	Season      season.Season            `json:"season"`
	Year        int                      `json:"year"`
	Summary     dataset.Summary          `json:"summary"`
	Monthly     []dataset.MonthlySummary `json:"monthly"`
	Correlation dataset.Correlation      `json:"correlation"`
	Histogram   []dataset.HistogramBin   `json:"histogram"`
}

func (s *Server) handleAPIStats(w http.ResponseWriter, r *http.Request) {
	ds := s.currentDataset(w, r)
	if ds == nil {
		noDataError(w)
		return
	}
	writeJSON(w, StatsResponse{
		Season:      ds.Season,
		Year:        ds.Year,
		Summary:     dataset.Summarize(ds.Records),
		Monthly:     dataset.SummarizeMonthly(ds.Records),
		Correlation: dataset.Correlate(ds.Records),
		Histogram:   dataset.Histogram(ds.Records, 30),
	})
}

func (s *Server) handleAPISeasons(w http.ResponseWriter, r *http.Request) {
	out := make(map[season.Season]season.Config, 4)
	for _, sn := range season.All() {
		cfg, _ := season.Lookup(sn)
		out[sn] = cfg
	}
	writeJSON(w, out)
}

func (s *Server) handleCSVDownload(w http.ResponseWriter, r *http.Request) {
	ds := s.currentDataset(w, r)
	if ds == nil {
		noDataError(w)
		return
	}

	name := dataset.Filename(ds.Season, ds.Year)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	if err := dataset.WriteCSV(w, ds); err != nil {
		log.Printf("csv export: %v", err)
		return
	}
	metrics.CSVDownloadsTotal.WithLabelValues(string(ds.Season)).Inc()
}

func (s *Server) handleChartPNG(w http.ResponseWriter, r *http.Request) {
	ds := s.currentDataset(w, r)
	if ds == nil {
		noDataError(w)
		return
	}

	data, err := chartimg.Render(ds)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	metrics.ChartRendersTotal.Inc()

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(data)
}
