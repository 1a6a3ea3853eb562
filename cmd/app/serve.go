package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"kitchenpos/cmd"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and background jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			uowFactory, closeStorage, err := openStorage(cfg)
			if err != nil {
				return err
			}
			defer closeStorage()

			dispatcher, closeDispatcher, err := openDispatcher(cfg, logger)
			if err != nil {
				return err
			}
			defer closeDispatcher()

			app := cmd.NewCompositionRoot(cfg, uowFactory, dispatcher, logger)

			ctx, stop := signal.NotifyContext(c.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// An in-memory store starts empty, so it gets the catalog on every start.
			if cfg.StorageDriver == cmd.StorageDriverMemory && cfg.CatalogFile != "" {
				if err := seedCatalog(ctx, &app, cfg.CatalogFile); err != nil {
					return err
				}
			}

			jobManager := app.CreateJobManager()
			if err := jobManager.StartAll(); err != nil {
				return err
			}
			defer jobManager.StopAll()

			e := echo.New()
			e.HideBanner = true
			e.Use(middleware.Logger())
			e.Use(middleware.Recover())
			e.GET("/health", func(c echo.Context) error {
				return c.String(http.StatusOK, "Healthy")
			})
			app.CreateHTTPServer().RegisterRoutes(e)

			errCh := make(chan error, 1)
			go func() {
				errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}
}
