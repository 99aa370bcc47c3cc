package routes

import (
	"net/http"
	"time"

	"go-messease/config"
	"go-messease/database"
	"go-messease/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the engine with middleware and every API route.
func NewRouter(db database.Handle, cfg *config.Config, logger *zap.SugaredLogger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(cfg)))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})

	RootRoutes(router, db, cfg)
	MenuRoutes(router, db, logger)
	OrderRoutes(router, db, logger)
	PaymentRoutes(router, db, logger)

	return router
}

// corsConfig allows any origin unless CORS_ORIGINS narrows it.
func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORSOrigins) > 0 {
		c.AllowOrigins = cfg.CORSOrigins
	} else {
		c.AllowOriginFunc = func(string) bool { return true }
	}
	return c
}
