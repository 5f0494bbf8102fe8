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

	"creational/cmd"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "creational",
		Short:         "Walk through the settings store, report builders and order prototype",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, _ []string) error {
			logger := newLogger(slog.LevelInfo)
			app := cmd.NewCompositionRoot(cmd.Config{}, logger)
			return app.CreateDemoRunner().Run(c.OutOrStdout())
		},
	}

	root.AddCommand(newServeCommand())
	return root
}

func newServeCommand() *cobra.Command {
	var envFile string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API and run the background jobs",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			config, err := cmd.LoadConfig(envFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, config)
		},
	}

	serveCmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file read before the environment")
	return serveCmd
}

func serve(ctx context.Context, config cmd.Config) error {
	logger := newLogger(config.LogLevel)
	app := cmd.NewCompositionRoot(config, logger)
	app.SettingsProvider().Store().LoadDefaults()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	app.CreateServer().RegisterRoutes(e)

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "HTTP server starting", "port", config.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.InfoContext(shutdownCtx, "HTTP server shutting down")
	return e.Shutdown(shutdownCtx)
}

// newLogger writes to stderr so stdout only carries command output.
func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
