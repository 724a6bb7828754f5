// Copyright 2026 Soniclabs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"

	"github.com/soniclabs/callscribe/ingestion"
	"github.com/soniclabs/callscribe/storage"
)

const (
	defaultUploadConcurrency = 4
	shutdownTimeout          = 5 * time.Second
)

var (
	// ErrRepositoryRequired is returned when a repository is not provided.
	ErrRepositoryRequired = errors.New("call repository required")

	// ErrPipelineRequired is returned when a pipeline is not provided.
	ErrPipelineRequired = errors.New("ingestion pipeline required")
)

// Server is the HTTP frontend of the ingestion service, backed by Gin.
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	repository storage.CallRepository
	pipeline   *ingestion.Pipeline
	uploadPool *ants.Pool
	logger     *slog.Logger
}

// Option configures a Server.
type Option func(*Server) error

// WithUploadConcurrency bounds how many uploads run through the
// pipeline at once. Default is 4; values below 1 are clamped to 1.
func WithUploadConcurrency(size int) Option {
	return func(s *Server) error {
		if size < 1 {
			size = 1
		}
		if s.uploadPool != nil {
			s.uploadPool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		s.uploadPool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewServer creates the HTTP server and registers all routes.
func NewServer(addr string, repository storage.CallRepository, pipeline *ingestion.Pipeline, opts ...Option) (*Server, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if pipeline == nil {
		return nil, ErrPipelineRequired
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())

	pool, err := ants.NewPool(defaultUploadConcurrency)
	if err != nil {
		return nil, err
	}

	s := &Server{
		engine:     engine,
		repository: repository,
		pipeline:   pipeline,
		uploadPool: pool,
		logger:     slog.Default().With("component", "api"),
	}

	for _, opt := range opts {
		if optErr := opt(s); optErr != nil {
			s.uploadPool.Release()
			return nil, optErr
		}
	}

	s.registerRoutes()

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  5 * time.Minute,
		WriteTimeout: 5 * time.Minute,
	}

	return s, nil
}

func (s *Server) registerRoutes() {
	s.engine.GET("/", s.handleStatus)
	s.engine.GET("/calls", s.handleListCalls)
	s.engine.GET("/call/:id", s.handleGetCall)
	s.engine.POST("/upload", s.handleUpload)
}

// corsMiddleware sets permissive CORS headers and handles preflight.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Start binds the port and begins serving. It returns once the
// listener is bound; serving continues in a goroutine.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", s.httpServer.Addr, err)
	}

	s.logger.Info("HTTP server started", "addr", s.httpServer.Addr)

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server error", "err", err)
		}
	}()

	return nil
}

// Stop gracefully shuts down the server and releases the upload pool.
func (s *Server) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	s.uploadPool.Release()
	if err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	s.logger.Info("HTTP server stopped")
	return nil
}

// Handler returns the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}
