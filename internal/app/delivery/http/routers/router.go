package routers

import (
	"formfillout-service/internal/app/config"
	"formfillout-service/internal/app/delivery/http/middlewares"
	filteredResponses "formfillout-service/internal/app/services/core/filtered_responses"
	"formfillout-service/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	filteredResponseController *filteredResponses.FilteredResponseController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   strings.Split(internalConfig.App.CorsAllowedOrigins, ","),
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(chimiddleware.RealIP)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.Metrics)
	router.Use(middlewares.ErrorHandler)

	router.Get(constvars.RouteHealthCheck, healthCheck(internalConfig))
	router.Method(constvars.MethodGet, constvars.RouteMetrics, promhttp.Handler())

	router.Route("/{"+constvars.URLParamFormID+"}", func(r chi.Router) {
		attachFilteredResponseRoutes(r, filteredResponseController)
	})
}
