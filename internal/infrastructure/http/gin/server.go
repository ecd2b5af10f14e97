package gin

import (
	"fmt"
	"net/http"
	"time"

	ginlib "github.com/gin-gonic/gin"

	"github.com/rahulupadhyay22/Restaurant-Pos/internal/config"
)

// Webhook payloads are small and list queries are bounded, so the timeouts
// are fixed rather than configurable.
const (
	readTimeout  = 10 * time.Second
	writeTimeout = 30 * time.Second
	idleTimeout  = 90 * time.Second
)

// Server wraps a gin engine in an http.Server with sane timeouts.
type Server struct {
	engine *ginlib.Engine
	http   *http.Server
}

func NewServer(cfg config.ServerConfig) *Server {
	engine := ginlib.New()
	engine.Use(ginlib.Recovery())
	return &Server{
		engine: engine,
		http: &http.Server{
			Addr:         cfg.Address(),
			Handler:      engine,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
	}
}

// Engine exposes the underlying router for route registration.
func (s *Server) Engine() *ginlib.Engine {
	return s.engine
}

func (s *Server) Run() error {
	if s.http == nil {
		return fmt.Errorf("http server is nil")
	}
	return s.http.ListenAndServe()
}
