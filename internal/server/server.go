package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/scenectl/internal/auth"
	"github.com/danmuck/scenectl/internal/observability"
)

const version = "0.1.0"

// Config carries the daemon's listen and policy settings.
type Config struct {
	Name        string
	Addr        string
	CorsOrigins []string
	AuthToken   string
}

// DefaultConfig returns the development defaults.
func DefaultConfig() Config {
	return Config{
		Name: "scened",
		Addr: ":9000",
	}
}

// Server hosts the scene API.
type Server struct {
	cfg       Config
	registry  *Registry
	router    *gin.Engine
	startedAt time.Time
}

// NewServer wires middleware and routes around a scene registry.
func NewServer(cfg Config, registry *Registry) *Server {
	if cfg.Name == "" {
		cfg.Name = "scened"
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(observability.RequestLogger(log.Logger))
	router.Use(observability.RequestMetricsMiddleware(cfg.Name))
	if len(cfg.CorsOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CorsOrigins,
			AllowMethods: []string{"GET", "POST"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
			MaxAge:       12 * time.Hour,
		}))
	}

	s := &Server{
		cfg:       cfg,
		registry:  registry,
		router:    router,
		startedAt: time.Now(),
	}
	s.registerRoutes()
	return s
}

// Router exposes the gin engine for tests and embedding.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run blocks serving the API on the configured address.
func (s *Server) Run() error {
	log.Info().Str("addr", s.cfg.Addr).Str("component", s.cfg.Name).Msg("serving scene api")
	return s.router.Run(s.cfg.Addr)
}

func (s *Server) validator() auth.Validator {
	if s.cfg.AuthToken == "" {
		return nil
	}
	return auth.StaticToken{Token: s.cfg.AuthToken}
}
