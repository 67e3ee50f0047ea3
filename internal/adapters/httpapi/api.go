package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/Joe-Bitz/goodmorninguganda/internal/app"
	"github.com/Joe-Bitz/goodmorninguganda/internal/domain"
	"github.com/Joe-Bitz/goodmorninguganda/internal/httpjson"
)

func (s *Server) handleRecalc(w http.ResponseWriter, r *http.Request) {
	state := s.terminal.BuildState(r.Context())
	series := app.MakeSeries(0)
	if state.CrashMode {
		series = app.MakeCrashSeries(0)
	}
	httpjson.Write(w, http.StatusOK, map[string]any{
		"crash_mode":     state.CrashMode,
		"latest_release": state.LatestRelease,
		"metrics":        state.Metrics,
		"series":         series,
	})
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	h := app.RandomHeadline()
	httpjson.Write(w, http.StatusOK, map[string]string{
		"tag":   h.Tag,
		"text":  h.Text,
		"stamp": time.Now().Format("15:04"),
	})
}

func (s *Server) handleSpotifyStatus(w http.ResponseWriter, r *http.Request) {
	sync := s.watcher.MaybeSync(r.Context())
	state := s.state.Load(r.Context())
	httpjson.Write(w, http.StatusOK, map[string]any{
		"sync":  sync,
		"state": state,
	})
}

// handleTriggerCrash records a release directly, bypassing the watcher's
// change detection. Token-gated when a trigger token is configured.
func (s *Server) handleTriggerCrash(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Token string `json:"token"`
		Title string `json:"title"`
		Date  string `json:"date"`
	}
	if r.Body != nil {
		// best-effort: GET requests and non-JSON bodies are fine
		_ = json.NewDecoder(r.Body).Decode(&payload)
	}

	provided := firstNonEmpty(r.URL.Query().Get("token"), payload.Token, r.Header.Get("X-Trigger-Token"))
	if s.triggerToken != "" && provided != s.triggerToken {
		httpjson.Write(w, http.StatusForbidden, map[string]any{"ok": false, "error": "invalid_token"})
		return
	}

	title := strings.TrimSpace(firstNonEmpty(r.URL.Query().Get("title"), payload.Title, "Manual Episode Trigger"))
	date := strings.TrimSpace(firstNonEmpty(r.URL.Query().Get("date"), payload.Date, time.Now().UTC().Format("2006-01-02")))
	if title == "" {
		httpjson.Write(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "missing_title"})
		return
	}
	if date == "" {
		httpjson.Write(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "missing_date"})
		return
	}

	added, err := s.releases.AppendIfMissing(r.Context(), date, title)
	if err != nil {
		s.logger.Error().Err(err).Msg("manual trigger append failed")
		httpjson.Write(w, http.StatusInternalServerError, map[string]any{"ok": false, "error": "append_failed"})
		return
	}

	resp := map[string]any{
		"ok":      true,
		"added":   added,
		"release": domain.Release{Title: title, Date: date},
	}
	if s.triggerToken == "" {
		resp["warning"] = "GMU_MANUAL_TRIGGER_TOKEN is not set"
	}
	httpjson.Write(w, http.StatusOK, resp)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
