package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/Joe-Bitz/goodmorninguganda/internal/app"
	"github.com/Joe-Bitz/goodmorninguganda/internal/ports"
)

type Server struct {
	logger   zerolog.Logger
	terminal *app.TerminalService
	watcher  *app.Watcher
	releases ports.ReleaseStore
	state    ports.StateStore
	// triggerToken gates /api/trigger-crash; empty means ungated (with a
	// warning in the response).
	triggerToken string
}

func NewServer(logger zerolog.Logger, terminal *app.TerminalService, watcher *app.Watcher, releases ports.ReleaseStore, state ports.StateStore, triggerToken string) *Server {
	return &Server{
		logger:       logger,
		terminal:     terminal,
		watcher:      watcher,
		releases:     releases,
		state:        state,
		triggerToken: triggerToken,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(defaultRequestTimeout))
	r.Use(hlog.NewHandler(s.logger))
	r.Use(hlog.RequestIDHandler("request_id", "Request-Id"))
	r.Use(hlog.RemoteAddrHandler("remote_ip"))
	r.Use(hlog.UserAgentHandler("user_agent"))
	r.Use(hlog.AccessHandler(accessLogFn))

	r.Get("/", s.handleIndex)
	r.Get("/research", s.handleResearch)
	r.Get("/sec", s.handleSEC)
	r.Get("/transcript", s.handleTranscript)
	for path, target := range map[string]string{
		"/index.html":      "/",
		"/research.html":   "/research",
		"/sec.html":        "/sec",
		"/transcript.html": "/transcript",
	} {
		r.Get(path, redirectTo(target))
	}
	r.Handle("/static/*", http.FileServer(http.FS(staticFS)))

	r.Get("/api/recalc", s.handleRecalc)
	r.Get("/api/news", s.handleNews)
	r.Get("/api/spotify-status", s.handleSpotifyStatus)
	r.Get("/api/trigger-crash", s.handleTriggerCrash)
	r.Post("/api/trigger-crash", s.handleTriggerCrash)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/version", s.handleVersion)
	})

	return r
}

func redirectTo(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target, http.StatusFound)
	}
}
