package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"supermind/config"
	"supermind/pkg/langflow"
	"supermind/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	webConfig   config.WebConfig

	// AI flow engine
	flow   langflow.ILangflow
	tweaks map[string]map[string]any
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Web         config.WebConfig

	// AI flow engine
	Flow   langflow.ILangflow
	Tweaks map[string]map[string]any
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		webConfig:   cfg.Web,
		flow:        cfg.Flow,
		tweaks:      cfg.Tweaks,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.flow == nil {
		return errors.New("langflow client is required")
	}
	return nil
}
