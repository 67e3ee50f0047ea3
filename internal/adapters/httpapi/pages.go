package httpapi

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/Joe-Bitz/goodmorninguganda/internal/app"
	"github.com/Joe-Bitz/goodmorninguganda/internal/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error().Err(err).Str("template", name).Msg("template render failed")
	}
}

type seededHeadline struct {
	Time string
	Tag  string
	Text string
}

type indexData struct {
	State      domain.TerminalState
	Headlines  []seededHeadline
	SeriesJSON string
	Ticker     []app.TickerEntry
	Now        time.Time
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	state := s.terminal.BuildState(r.Context())
	series := app.MakeSeries(0)
	if state.CrashMode {
		series = app.MakeCrashSeries(0)
	}
	seriesJSON, _ := json.Marshal(series)

	s.render(w, "index.html", indexData{
		State: state,
		Headlines: []seededHeadline{
			{Time: "08:14", Tag: app.Headlines[0].Tag, Text: app.Headlines[0].Text},
			{Time: "09:02", Tag: app.Headlines[1].Tag, Text: app.Headlines[1].Text},
			{Time: "10:37", Tag: app.Headlines[2].Tag, Text: app.Headlines[2].Text},
		},
		SeriesJSON: string(seriesJSON),
		Ticker:     app.Ticker,
		Now:        time.Now(),
	})
}

func (s *Server) handleResearch(w http.ResponseWriter, r *http.Request) {
	s.render(w, "research.html", nil)
}

type filing struct {
	Form        string
	Date        string
	Description string
}

func (s *Server) handleSEC(w http.ResponseWriter, r *http.Request) {
	s.render(w, "sec.html", []filing{
		{Form: "FORM POD-420", Date: "2026-01-20", Description: "Notice of material event: they stopped recording."},
		{Form: "10-Q (Vibes)", Date: "2026-01-19", Description: "Quarterly report for cash flow, snacks, and friendship goodwill."},
		{Form: "8-K (Actually Kidding)", Date: "2026-01-18", Description: "Current report confirming you cannot short a podcast."},
	})
}

func (s *Server) handleTranscript(w http.ResponseWriter, r *http.Request) {
	s.render(w, "transcript.html", nil)
}
