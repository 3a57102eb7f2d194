// Package rest serves a node's HTTP API.
package rest // import "chainspace.io/ledger/rest"

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"chainspace.io/ledger/config"
	"chainspace.io/ledger/log"
	"chainspace.io/ledger/log/fld"
	"chainspace.io/ledger/node/api"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const (
	readTimeout  = 30 * time.Second
	writeTimeout = 5 * time.Minute
)

// Config defines the values passed into the REST Service
type Config struct {
	Ledger     api.Ledger
	MaxPayload config.ByteSize
	Port       int
}

// Service gives us a place to store values for our REST API
type Service struct {
	maxPayload config.ByteSize
	port       int
	router     *gin.Engine
	srv        *http.Server
}

// New returns a new REST API. Nothing is served until Start is called.
func New(cfg *Config) *Service {
	s := &Service{
		maxPayload: cfg.MaxPayload,
		port:       cfg.Port,
	}
	s.router = s.makeRouter(api.New(cfg.Ledger))
	return s
}

// Handler returns the router serving the API.
func (s *Service) Handler() http.Handler {
	return s.router
}

// Start binds the configured port and serves the API in the background.
func (s *Service) Start() error {
	l, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return errors.Wrapf(err, "rest: unable to listen on port %d", s.port)
	}
	s.srv = &http.Server{
		Handler:      s.router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
	go func() {
		log.Info("http server started", fld.Port(s.port))
		if err := s.srv.Serve(l); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server exited", fld.Err(err))
		}
	}()
	return nil
}

// Shutdown gracefully stops a started server.
func (s *Service) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
