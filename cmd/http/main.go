package main

import (
	"context"
	"formfillout-service/internal/app/config"
	"formfillout-service/internal/app/delivery/http/middlewares"
	"formfillout-service/internal/app/delivery/http/routers"
	"formfillout-service/internal/app/drivers/logger"
	filteredResponses "formfillout-service/internal/app/services/core/filtered_responses"
	"formfillout-service/internal/app/services/fillout/submissions"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    ":" + internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("App is listening", zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exiting")

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Error while shutting down dependencies", zap.Error(err))
	}
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Fillout
	submissionClient := submissions.NewSubmissionFilloutClient(bootstrap.InternalConfig.Fillout, bootstrap.Logger)

	// Filtered responses
	filteredResponseUsecase := filteredResponses.NewFilteredResponseUsecase(submissionClient, bootstrap.InternalConfig, bootstrap.Logger)
	filteredResponseController := filteredResponses.NewFilteredResponseController(bootstrap.Logger, filteredResponseUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, filteredResponseController)
}
