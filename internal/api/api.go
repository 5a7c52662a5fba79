package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/api/handlers"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/api/middleware"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/monitor"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Rebalance *service.RebalanceService
	Monitor   *monitor.Monitor
}

type RouterOptions struct {
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
}

func NewRouter(services *Services, opts RouterOptions) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(opts.AllowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(opts.AllowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")
	limited := middleware.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst)

	if services != nil {
		if services.Rebalance != nil {
			networkHandler := handlers.NewNetworkHandler(services.Rebalance)
			networkGroup := apiGroup.Group("/network")
			{
				networkGroup.GET("/locations", networkHandler.GetLocations)
				networkGroup.GET("/locations/:id", networkHandler.GetLocation)
				networkGroup.GET("/stats", networkHandler.GetStats)
			}

			routeHandler := handlers.NewRouteHandler(services.Rebalance)
			routeGroup := apiGroup.Group("/routes")
			{
				routeGroup.GET("", routeHandler.GetRoutes)
				routeGroup.POST("/analyze", limited, routeHandler.Analyze)
				routeGroup.POST("/:id/execute", limited, routeHandler.Execute)
			}

			transferHandler := handlers.NewTransferHandler(services.Rebalance)
			transferGroup := apiGroup.Group("/transfers")
			{
				transferGroup.GET("", transferHandler.GetHistory)
				transferGroup.POST("", limited, transferHandler.Create)
				transferGroup.GET("/options", transferHandler.GetOptions)
			}
		}

		if services.Monitor != nil {
			monitorHandler := handlers.NewMonitorHandler(services.Monitor)
			monitorGroup := apiGroup.Group("/monitor")
			{
				monitorGroup.GET("/health", monitorHandler.GetHealth)
				monitorGroup.GET("/integrations", monitorHandler.GetIntegrations)
				monitorGroup.GET("/predictions", monitorHandler.GetPredictions)
			}
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
