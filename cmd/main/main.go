package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/supchaser/imagegrid/internal/app/delivery"
	"github.com/supchaser/imagegrid/internal/app/repository"
	"github.com/supchaser/imagegrid/internal/app/usecase"
	"github.com/supchaser/imagegrid/internal/config"
	"github.com/supchaser/imagegrid/internal/dispatch"
	"github.com/supchaser/imagegrid/internal/fetcher"
	"github.com/supchaser/imagegrid/internal/middleware"
	"github.com/supchaser/imagegrid/internal/tracker"
	"github.com/supchaser/imagegrid/internal/utils/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		fmt.Printf("error initializing config: %v\n", err)
		os.Exit(1)
	}

	err = logger.Init(cfg.LogMode)
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("configuration loaded successfully")
	logger.Debug("debug mode enabled",
		zap.String("log_mode", cfg.LogMode),
		zap.Int("max_loading_galleries", cfg.MaxLoadingGalleries),
		zap.Int("max_urls_per_gallery", cfg.MaxURLsPerGallery),
		zap.Duration("fetch_timeout", cfg.FetchTimeout),
		zap.Int("default_urls", len(cfg.ImageURLs)),
	)

	queueCtx, stopQueue := context.WithCancel(context.Background())
	defer stopQueue()

	completionQueue := dispatch.NewQueue()
	queueDone := make(chan struct{})
	go func() {
		defer close(queueDone)
		_ = completionQueue.Run(queueCtx)
	}()

	imageFetcher := fetcher.CreateFetcher(nil, fetcher.Config{
		Timeout:  cfg.FetchTimeout,
		MaxBytes: cfg.MaxImageBytes,
	})
	batchTracker := tracker.CreateTracker(imageFetcher, completionQueue)

	galleryRepo := repository.CreateGalleryRepository(cfg.MaxLoadingGalleries)
	galleryUsecase := usecase.CreateGalleryUsecase(galleryRepo, batchTracker, imageFetcher, cfg.MaxURLsPerGallery, cfg.ImageURLs)
	galleryDelivery := delivery.CreateGalleryDelivery(galleryUsecase)

	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	apiRouter := router.PathPrefix("/api/v1").Subrouter()
	apiRouter.HandleFunc("/images", galleryDelivery.FetchImage).Methods("GET")

	galleryRouter := apiRouter.PathPrefix("/galleries").Subrouter()
	galleryRouter.HandleFunc("", galleryDelivery.CreateGallery).Methods("POST")
	galleryRouter.HandleFunc("", galleryDelivery.GetAllGalleries).Methods("GET")
	galleryRouter.HandleFunc("/{id}", galleryDelivery.GetGallery).Methods("GET")
	galleryRouter.HandleFunc("/{id}/images/{index:[0-9]+}", galleryDelivery.GetImage).Methods("GET")

	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.PanicMiddleware)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)

	go func() {
		logger.Info("starting HTTP server",
			zap.String("address", server.Addr),
			zap.Any("config", cfg),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("failed to start server", zap.Error(err))
		os.Exit(1)
	case sig := <-quit:
		logger.Info("server is shutting down",
			zap.String("signal", sig.String()),
		)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown error", zap.Error(err))
			os.Exit(1)
		}

		// every fetch is bounded by the client timeout, so batches settle
		// shortly after it
		drainCtx, cancelDrain := context.WithTimeout(context.Background(), cfg.FetchTimeout+5*time.Second)
		defer cancelDrain()
		if err := batchTracker.Drain(drainCtx); err != nil {
			logger.Warn("stopping with batches still in flight",
				zap.Int64("batches", batchTracker.InFlight()),
				zap.Error(err),
			)
		}

		completionQueue.Close()
		<-queueDone

		logger.Info("server stopped")
	}
}
