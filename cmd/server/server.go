package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/triglav-games/encounter-api/internal/clients/content"
	v1 "github.com/triglav-games/encounter-api/internal/handlers/v1"
	"github.com/triglav-games/encounter-api/internal/orchestrators/encounter"
	"github.com/triglav-games/encounter-api/internal/pkg/clock"
	"github.com/triglav-games/encounter-api/internal/pkg/idgen"
	redisclient "github.com/triglav-games/encounter-api/internal/redis"
	"github.com/triglav-games/encounter-api/internal/repositories/archive"
	"github.com/triglav-games/encounter-api/internal/repositories/attempt"
	"github.com/triglav-games/encounter-api/internal/repositories/save"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start the encounter API with Redis-backed saves and attempts and a SQLite archive.`,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	redisClient, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
	}()

	clk := clock.New()

	saveRepo, err := save.NewRedis(&save.Config{
		Client: redisClient,
		Clock:  clk,
	})
	if err != nil {
		return fmt.Errorf("failed to create save repository: %w", err)
	}

	attemptRepo, err := attempt.NewRedis(&attempt.Config{
		Client: redisClient,
		Clock:  clk,
		TTL:    cfg.AttemptTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create attempt repository: %w", err)
	}

	archiveRepo, err := archive.NewSQLite(&archive.Config{
		Path:  cfg.ArchivePath,
		Clock: clk,
	})
	if err != nil {
		return fmt.Errorf("failed to create archive repository: %w", err)
	}
	defer func() {
		if err := archiveRepo.Close(); err != nil {
			slog.Warn("Failed to close archive", "error", err)
		}
	}()

	service, err := encounter.NewOrchestrator(&encounter.Config{
		SaveRepo:      saveRepo,
		AttemptRepo:   attemptRepo,
		ArchiveRepo:   archiveRepo,
		ContentClient: content.NewStatic(),
		IDGenerator:   idgen.NewUUID("enc"),
		Clock:         clk,
	})
	if err != nil {
		return fmt.Errorf("failed to create encounter service: %w", err)
	}

	handler, err := v1.NewHandler(&v1.Config{
		EncounterService: service,
	})
	if err != nil {
		return fmt.Errorf("failed to create API handler: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down HTTP server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Graceful shutdown failed, forcing close", "error", err)
			return srv.Close()
		}

		slog.Info("Server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}
