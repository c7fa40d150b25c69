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

	"github.com/odionmurphy/Murphy-Portfolio/internal/config"
	"github.com/odionmurphy/Murphy-Portfolio/internal/handler"
	"github.com/odionmurphy/Murphy-Portfolio/internal/logger"
	"github.com/odionmurphy/Murphy-Portfolio/internal/mail"
	"github.com/odionmurphy/Murphy-Portfolio/internal/repository"
	"github.com/odionmurphy/Murphy-Portfolio/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Server.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if cfg.Admin.Token == "" {
		log.Warn("ADMIN_TOKEN not set, admin listing will reject all requests")
	}

	repo, err := repository.NewSQLiteContactRepository(cfg.Database.Path)
	if err != nil {
		log.Fatal("failed to open database", "path", cfg.Database.Path, "error", err)
	}
	defer repo.Close()

	notifier := mail.FromConfig(cfg.Mail, log)
	contactService := service.NewContactService(repo, notifier, cfg.Admin.Token, cfg.Mail.Timeout, log)
	contactHandler := handler.NewContactHandler(contactService, log)

	router := handler.NewRouter(handler.RouterConfig{
		ContactHandler: contactHandler,
		PublicDir:      cfg.Server.PublicDir,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Info("server listening", "port", cfg.Server.Port, "public_dir", cfg.Server.PublicDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", "error", err)
	}
}
