package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/anirudh-pedro/Aniru-AI/render"
	"github.com/anirudh-pedro/Aniru-AI/util"
	"github.com/gin-gonic/gin"
)

const (
	// api routes
	PingURL          = "/ping"
	HealthURL        = "/health"
	MessageFormatURL = "/messages/format"

	RequestIDHeader = "X-Request-ID"
)

type Service struct {
	config util.Config
	server *http.Server
	router *gin.Engine
	engine *render.Engine
}

// NewService returns new service instance with provided config.
func NewService(config util.Config) (*Service, error) {
	addr, err := config.ListenAddress()
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP server address: %w", err)
	}

	service := &Service{
		config: config,
		engine: render.NewEngine(render.Options{TargetBlank: config.LinkTargetBlank}),
	}

	server := &http.Server{
		Addr: addr,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time you’ll spend writing the response (no “forever hanging” clients)
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// Addr returns the address the HTTP server listens on.
func (service *Service) Addr() string {
	return service.server.Addr
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
