// File: internal/app/server.go
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"revert_connect_backend/internal/catalog"
	"revert_connect_backend/internal/config"
	"revert_connect_backend/internal/event"
	"revert_connect_backend/internal/filestorage"
	"revert_connect_backend/internal/gate"
	"revert_connect_backend/internal/jobs"
	"revert_connect_backend/internal/mentor"
	"revert_connect_backend/internal/middleware"
	"revert_connect_backend/internal/platform/metrics"
	"revert_connect_backend/internal/post"
	"revert_connect_backend/internal/resource"
	"revert_connect_backend/internal/revert"
	"revert_connect_backend/internal/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted under /api/v1.
type Handlers struct {
	Gate     *gate.Handler
	Catalog  *catalog.Handler
	User     *user.Handler
	Post     *post.Handler
	Event    *event.Handler
	Resource *resource.Handler
	Mentor   *mentor.Handler
	Revert   *revert.Handler
}

// Server struct holds the dependencies for the HTTP server.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	cfg        *config.Config
	logger     *zap.Logger

	resourceIndexJob *jobs.ResourceIndexJob
	resourceIndexer  *resource.Indexer
}

// NewServer creates a new instance of our application server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	handlers Handlers,
	accessGate *gate.Gate,
	sessions middleware.SessionResolver,
	m *metrics.Metrics,
	files *filestorage.FileStorageService,
	resourceIndexer *resource.Indexer,
	resourceIndexJob *jobs.ResourceIndexJob,
) (*Server, error) {
	gin.SetMode(cfg.GinMode)
	router := gin.New()

	// --- Global Middleware ---
	router.Use(middleware.ZapLogger(logger, cfg.GinMode == gin.ReleaseMode))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{"Content-Length", middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	// --- Setup Routes ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "Revert Connect API is healthy!"})
	})
	if cfg.MetricsEnabled && m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}
	if files != nil && strings.HasPrefix(files.PublicBaseURL(), "/") {
		router.Static(files.PublicBaseURL(), files.StoragePath())
	}

	v1 := router.Group("/api/v1", middleware.Session(sessions, logger.Named("SessionMiddleware")))
	registerRoutes(v1, handlers, accessGate)

	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer:       httpServer,
		router:           router,
		cfg:              cfg,
		logger:           logger,
		resourceIndexJob: resourceIndexJob,
		resourceIndexer:  resourceIndexer,
	}, nil
}

// registerRoutes mounts every screen behind its gate. The profile routes are never gated.
func registerRoutes(v1 *gin.RouterGroup, h Handlers, g *gate.Gate) {
	requireUser := gin.HandlerFunc(middleware.RequireUser)

	h.Gate.RegisterRoutes(v1)
	h.Catalog.RegisterRoutes(v1)
	h.User.RegisterRoutes(v1, requireUser)

	h.Post.RegisterRoutes(v1, middleware.ProfileGate(g, gate.Community), requireUser)
	h.Event.RegisterRoutes(v1, middleware.ProfileGate(g, gate.Events), requireUser)
	h.Resource.RegisterRoutes(v1, middleware.ProfileGate(g, gate.Resources), requireUser)
	h.Mentor.RegisterRoutes(v1, middleware.ProfileGate(g, gate.Mentors), requireUser)
	h.Revert.RegisterRoutes(v1, middleware.ProfileGate(g, gate.MeetReverts), requireUser)
}

// Router exposes the engine for in-process tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start prepares the search index, starts background jobs and serves HTTP until shutdown.
func (s *Server) Start() error {
	if s.resourceIndexer.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := s.resourceIndexer.EnsureIndex(ctx); err != nil {
			s.logger.Error("Failed to create Elasticsearch resources index; search may fail until it exists", zap.Error(err))
		}
		cancel()
	}
	if s.resourceIndexJob != nil {
		if err := s.resourceIndexJob.SetupAndStart(); err != nil {
			s.logger.Error("Failed to setup and start resource index job", zap.Error(err))
		}
	}

	s.logger.Info("HTTP Server starting",
		zap.String("address", s.httpServer.Addr),
		zap.String("gin_mode", s.cfg.GinMode),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("Failed to start HTTP server", zap.Error(err))
		return err
	}
	s.logger.Info("HTTP Server stopped")
	return nil
}

// Shutdown stops the jobs and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Attempting graceful server shutdown...")
	if s.resourceIndexJob != nil {
		s.resourceIndexJob.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
