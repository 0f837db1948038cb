package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"sellerhub/internal/api/handlers"
	"sellerhub/internal/api/middleware"
	"sellerhub/internal/config"
	"sellerhub/internal/connectors/ebay"
	"sellerhub/internal/database"
	"sellerhub/internal/logger"
	ebaysvc "sellerhub/internal/services/ebay"

	"github.com/gin-gonic/gin"
)

type Server struct {
	config    *config.Config
	logger    *logger.Logger
	db        *database.Database
	connector *ebay.Connector
	router    *gin.Engine
	server    *http.Server
}

func New(cfg *config.Config, logger *logger.Logger, db *database.Database) *Server {
	// Set Gin mode
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	auth := ebaysvc.NewAuthManager(ebaysvc.AuthConfig{
		ClientID:     cfg.EbayClientID,
		ClientSecret: cfg.EbayClientSecret,
		RedirectURI:  cfg.EbayRedirectURI,
		Sandbox:      cfg.EbaySandbox,
	})
	connector := ebay.New(cfg, logger)

	// Initialize handlers
	listingHandler := handlers.NewListingHandler(db.DB, logger, cfg, auth)
	accountHandler := handlers.NewAccountHandler(db.DB, logger)
	issueHandler := handlers.NewIssueHandler(db.DB, logger)
	syncHandler := handlers.NewSyncHandler(db.DB, logger, connector)

	// Routes
	v1 := router.Group("/api/v1")
	{
		// Listings
		listings := v1.Group("/listings")
		{
			listings.GET("", listingHandler.List)
			listings.GET("/:id", listingHandler.Get)
			listings.POST("", listingHandler.Create)
			listings.PUT("/:id", listingHandler.Update)
			listings.DELETE("/:id", listingHandler.Delete)
			listings.POST("/:id/publish", listingHandler.Publish)
			listings.POST("/:id/revise", listingHandler.Revise)
			listings.POST("/:id/relist", listingHandler.Relist)
			listings.POST("/:id/end", listingHandler.End)
			listings.GET("/:id/remote", listingHandler.Remote)
			listings.POST("/:id/enqueue", syncHandler.EnqueuePublish)
		}

		// Accounts
		accounts := v1.Group("/accounts")
		{
			accounts.GET("", accountHandler.List)
			accounts.GET("/:id", accountHandler.Get)
			accounts.POST("", accountHandler.Create)
			accounts.PUT("/:id", accountHandler.Update)
			accounts.DELETE("/:id", accountHandler.Delete)
			accounts.PUT("/:id/token", accountHandler.UpsertToken)
			accounts.POST("/:id/sync", syncHandler.SyncAccount)
		}

		// Issues
		issues := v1.Group("/issues")
		{
			issues.GET("", issueHandler.List)
			issues.POST("/:id/resolve", issueHandler.Resolve)
		}
	}

	return &Server{
		config:    cfg,
		logger:    logger,
		db:        db,
		connector: connector,
		router:    router,
	}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.config.APIHost, s.config.APIPort)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting server on " + addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	s.connector.Close()
	return s.server.Shutdown(ctx)
}

// GetRouter returns the Gin router for tests.
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
