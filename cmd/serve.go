package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/debghosh/mysticresin/internal/config"
	"github.com/debghosh/mysticresin/internal/handlers"
	"github.com/debghosh/mysticresin/internal/theme"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the storefront HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg := config.Load()
	if cfg.SessionSecret == "" {
		return errors.New("SESSION_SECRET is required")
	}

	kvStore, st, backupSvc, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer kvStore.Close()

	projector := theme.NewProjector(st.Config().Theme)

	router, stopRouter := handlers.NewRouter(handlers.RouterConfig{
		Store:         st,
		Backup:        backupSvc,
		Projector:     projector,
		SessionSecret: []byte(cfg.SessionSecret),
		CorsOrigins:   cfg.CorsAllowedOrigins,
		Logger:        logger,
	})
	defer stopRouter()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("port", cfg.Port), zap.String("db", kvStore.Path()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown error", zap.Error(err))
	}
	return nil
}
