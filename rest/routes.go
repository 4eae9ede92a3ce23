package rest

import (
	"net/http"

	"newscleanse/config"
	"newscleanse/di"
	middleware_custom "newscleanse/middleware"
	"newscleanse/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	e.Use(middleware_custom.RequestIDMiddleware())
	e.Use(middleware.Recover())
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: cfg.Server.ReadTimeout,
	}))
	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))
	e.Use(middleware_custom.MetricsMiddleware())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/v1/health" || c.Path() == "/metrics"
		},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1")
	v1.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	})

	registerArticleRoutes(v1, container, cfg)
	registerSessionRoutes(v1, container)
	registerUserRoutes(v1, container, cfg)
	registerMoodRoutes(v1, container)
}
