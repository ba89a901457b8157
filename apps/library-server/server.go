package libraryserver

import (
	"context"
	"net/http"

	"video-library/internal/models"
	"video-library/shared/config"
	"video-library/shared/logging"
	"video-library/shared/metrics"
	"video-library/shared/monitoring"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// VideoStore is the subset of storage.VideoStore the API needs.
type VideoStore interface {
	List() []models.Video
	Create(in models.NewVideo) models.Video
	Count() int
}

// IdeaGenerator produces video ideas for a topic. Errors are expected to
// wrap one of the shared/ai sentinel errors.
type IdeaGenerator interface {
	GenerateIdeas(ctx context.Context, topic string) (*models.IdeaResponse, error)
}

// Server owns the HTTP surface of the video library.
type Server struct {
	config  *config.ServerConfig
	store   VideoStore
	ideas   IdeaGenerator
	monitor *monitoring.Monitor
	shell   *shellRenderer
	log     zerolog.Logger
}

func New(cfg *config.ServerConfig, store VideoStore, ideas IdeaGenerator, monitor *monitoring.Monitor) (*Server, error) {
	shell, err := newShellRenderer(cfg)
	if err != nil {
		return nil, err
	}
	if monitor == nil {
		monitor = monitoring.NewMonitor()
	}
	return &Server{
		config:  cfg,
		store:   store,
		ideas:   ideas,
		monitor: monitor,
		shell:   shell,
		log:     logging.WithComponent("api"),
	}, nil
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/videos", s.handleListVideos)
		r.Post("/videos", s.handleCreateVideo)
		r.Post("/generate-ideas", s.handleGenerateIdeas)
	})

	r.Get("/health", monitoring.HealthHandler(s.monitor))
	r.Get("/status", monitoring.StatusHandler(s.monitor))
	r.Handle("/metrics", metrics.Handler())

	clientFiles := http.StripPrefix("/dist/client/", http.FileServer(http.Dir(s.config.ClientDir)))
	r.Handle("/dist/client/*", clientFiles)

	r.NotFound(s.handleFallback)
	r.MethodNotAllowed(s.handleFallback)

	return r
}
