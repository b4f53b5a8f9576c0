package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/divyakansara2385/solarcalc/internal/dataset"
	"github.com/divyakansara2385/solarcalc/internal/session"
)

type Server struct {
	sessions *session.Store
	gen      *dataset.Generator
	port     string
	tmpl     *templateSet
	started  time.Time
}

func NewServer(sessions *session.Store, gen *dataset.Generator, port string) *Server {
	return &Server{
		sessions: sessions,
		gen:      gen,
		port:     port,
		tmpl:     newTemplates(),
		started:  time.Now(),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/generate", s.handleGenerate)
	mux.HandleFunc("/partials/metrics", s.handleMetricsPartial)
	mux.HandleFunc("/partials/chart", s.handleChartPartial)
	mux.HandleFunc("/api/dataset", s.handleAPIDataset)
	mux.HandleFunc("/api/stats", s.handleAPIStats)
	mux.HandleFunc("/api/seasons", s.handleAPISeasons)
	mux.HandleFunc("/download/csv", s.handleCSVDownload)
	mux.HandleFunc("/chart.png", s.handleChartPNG)
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    ":" + s.port,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

const sessionCookie = "solarcalc_session"

// sessionID reads the session cookie, minting one if the browser has none
// yet. Every page and API path goes through here so state sticks to the
// browser across requests.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id, err := session.NewID()
	if err != nil {
		log.Printf("session: new id: %v", err)
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// currentDataset returns the session's dataset, or nil when the user has not
// generated anything yet.
func (s *Server) currentDataset(w http.ResponseWriter, r *http.Request) *dataset.Dataset {
	id := s.sessionID(w, r)
	if id == "" {
		return nil
	}
	st, ok := s.sessions.Get(id)
	if !ok {
		return nil
	}
	return st.Dataset
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("api: write response: %v", err)
	}
}

// noDataError is the guard for endpoints that need a generated dataset: the
// caller is pointed at the generate action instead of a bare error.
func noDataError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]string{
		"error": "no data generated yet; submit the generate form first",
	})
}

type HealthStatus struct {
	Status        string `json:"status"`
	Sessions      int    `json:"sessions"`
	UptimeSeconds int    `json:"uptime_seconds"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, HealthStatus{
		Status:        "ok",
		Sessions:      s.sessions.Len(),
		UptimeSeconds: int(time.Since(s.started).Seconds()),
	})
}
