// @title devevents API
// @version 1.0
// @description Developer event listings and bookings.
// @BasePath /
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"devevents/config"
	_ "devevents/docs"
	"devevents/internal/adapters/email"
	deliveryhttp "devevents/internal/delivery/http"
	"devevents/internal/delivery/http/controllers"
	"devevents/internal/repository/mongodb"
	"devevents/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connector := mongodb.NewConnector(cfg.MongoURI, logger, nil)
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ContextTimeout)
	client, err := connector.Connect(connectCtx)
	cancel()
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := connector.Disconnect(disconnectCtx); err != nil {
			logger.Error("mongodb disconnect failed", "err", err)
		}
	}()

	db := client.Database(cfg.MongoDatabase)
	indexCtx, cancel := context.WithTimeout(ctx, cfg.ContextTimeout)
	err = mongodb.EnsureIndexes(indexCtx, db)
	cancel()
	if err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.InsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("init mailer: %w", err)
	}

	eventRepo := mongodb.NewEventRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db, eventRepo)

	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	eventService := services.NewEventService(eventRepo, cfg.ContextTimeout)
	bookingService := services.NewBookingService(bookingRepo, eventRepo, emailService, logger, cfg.ContextTimeout)

	router := deliveryhttp.NewRouter(
		controllers.NewEventController(logger, eventService),
		controllers.NewBookingController(logger, bookingService),
	)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           deliveryhttp.NewHandler(router, logger, cfg.AllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", server.Addr, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
