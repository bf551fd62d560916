/* routes.go
 * Contains the server constructor and the router. Kept apart from server.go so tests can drive the handler without
 * binding a port
 */

package web

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

// NewServer creates the Server for cfg. A nil Hub creates one, which the caller must then Run
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	hub := cfg.Hub
	if hub == nil {
		hub = NewHub(logger)
	}
	assetsDir := cfg.AssetsDir
	if assetsDir == "" {
		assetsDir = "assets"
	}
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Server{
		controller: cfg.Controller,
		hub:        hub,
		logger:     logger,
		templates:  template.Must(template.New("page").ParseFS(templateFS, "templates/*.html")),
		assetsDir:  assetsDir,
		origins:    origins,
	}
}

// Hub returns the websocket hub the server registers clients with
func (s *Server) Hub() *Hub {
	return s.hub
}

// requestTimeout stays below writeTimeout so the handler context is cancelled before the connection write deadline
// passes
const (
	writeTimeout   = 15 * time.Second
	requestTimeout = 10 * time.Second
)

// Routes builds the chi router with every endpoint
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(chimiddleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.HandleHealth)
	r.Get("/ws", s.HandleWebSocket)
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(s.assetsDir))))

	// The websocket upgrade must not sit behind a timeout
	r.Group(func(r chi.Router) {
		r.Use(chimiddleware.Timeout(requestTimeout))

		r.Get("/", s.HandleIndex)
		r.Route("/match", func(r chi.Router) {
			r.Post("/next", s.HandleNext)
			r.Post("/prev", s.HandlePrevious)
			r.Post("/jump", s.HandleJump)
			r.Post("/select", s.HandleSelect)
		})

		r.Route("/api", func(r chi.Router) {
			r.Get("/tournament", s.HandleTournament)
			r.Get("/status", s.HandleStatus)
			r.Get("/match", s.HandleMatch)
			r.Get("/matches", s.HandleMatches)
			r.Get("/rikishi/{id}", s.HandleRikishi)
			r.Get("/head-to-head", s.HandleHeadToHead)
			r.Post("/refresh", s.HandleRefresh)
		})
	})

	return r
}
