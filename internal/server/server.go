package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/leoking9009/notion-working/internal/config"
	"github.com/leoking9009/notion-working/internal/handler"
	"github.com/leoking9009/notion-working/internal/middleware"
	"github.com/leoking9009/notion-working/internal/model"
)

// Server represents the HTTP server
type Server struct {
	cfg      *config.Config
	router   *gin.Engine
	services *Services
}

// New creates a new server instance
func New(cfg *config.Config) (*Server, error) {
	client := NewStoreClient(cfg)
	repos := InitRepositories(cfg, client)
	services := InitServices(cfg, repos)
	handlers := InitHandlers(services)

	router := setupRouter(cfg, handlers)

	return &Server{
		cfg:      cfg,
		router:   router,
		services: services,
	}, nil
}

// Run starts the server
func (s *Server) Run() error {
	log.Info().Str("addr", s.cfg.Server.Address()).Msg("server listening")
	return s.router.Run(s.cfg.Server.Address())
}

// Router exposes the engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func setupRouter(cfg *config.Config, h *Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.SetTrustedProxies(nil)

	// All origins on purpose: the original deployment served the UI
	// from a different host than the functions.
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		MaxAge:       12 * time.Hour,
	}))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, model.NewErrorResponse("Method not allowed", ""))
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("Not found", ""))
	})

	// The original system shipped twice: a persistent process under
	// /api and a function-per-route deployment at the root. Both route
	// sets stay available with identical semantics.
	registerRoutes(r.Group(""), h)
	registerRoutes(r.Group("/api"), h)

	return r
}

func registerRoutes(g *gin.RouterGroup, h *Handlers) {
	g.GET("/health", handler.HealthCheck)

	g.GET("/database", h.Task.ListDatabase)

	tasks := g.Group("/tasks")
	{
		tasks.POST("", h.Task.Create)
		tasks.PATCH("/:id", h.Task.Update)
		tasks.DELETE("/:id", h.Task.Delete)
	}

	notices := g.Group("/notices")
	{
		notices.GET("", h.Notice.List)
		notices.POST("", h.Notice.Create)
		notices.PATCH("/:id", h.Notice.Update)
		notices.DELETE("/:id", h.Notice.Delete)
	}

	comments := g.Group("/comments")
	{
		comments.GET("/:noticeId", h.Comment.ListByNotice)
		comments.POST("", h.Comment.Create)
		comments.DELETE("/:id", h.Comment.Delete)
	}

	g.POST("/register", h.User.Register)

	users := g.Group("/users")
	{
		users.GET("", h.User.List)
		users.POST("/register", h.User.Register)
		users.PATCH("/:id/status", h.User.UpdateStatus)
	}
}
