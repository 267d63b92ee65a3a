package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-contact-relay/config"
	_ "go-contact-relay/docs" // Important for Swagger
	v1 "go-contact-relay/internal/delivery/http/v1"
	"go-contact-relay/internal/usecase"
	"go-contact-relay/pkg/logger"
	"go-contact-relay/pkg/mailgun"
)

// @title           Contact Relay API
// @version         1.0
// @description     Single-endpoint relay that forwards contact form submissions to Mailgun.
// @host            localhost:8088
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting contact relay",
		"domain", cfg.Domain,
		"to_address", cfg.ToAddress,
		"api_key_prefix", cfg.APIKeyPrefix(),
	)
	if cfg.RedirectURL != nil {
		logger.Log.Info("Redirect mode enabled", "redirect_url", cfg.RedirectURL.String())
	}

	// 3. Setup Mailgun Client
	sender := mailgun.NewClient(cfg)

	// 4. Setup UseCases
	contactUC := usecase.NewContactUsecase(sender, cfg.ToAddress)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		Config:    cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	logger.Log.Info("Listening", "addr", cfg.Addr())

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
