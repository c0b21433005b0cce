package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Hac254/Sweet-Dreams/internal"
	"github.com/Hac254/Sweet-Dreams/internal/api"
	"github.com/Hac254/Sweet-Dreams/internal/config"
	"github.com/Hac254/Sweet-Dreams/internal/player"
	"github.com/Hac254/Sweet-Dreams/internal/storage"
)

const appVersion = "1.0.0"

func main() {
	var port string

	root := &cobra.Command{
		Use:     "sweetdreams",
		Short:   "Sweet Dreams sleep diary server",
		Version: appVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if port != "" {
				cfg.Port = port
			}
			return run(cfg)
		},
	}
	root.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	root.SetVersionTemplate("sweetdreams v{{.Version}}\n")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	logger, err := internal.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return err
	}

	store := storage.NewMemoryStore(logger)
	app := api.NewApp(logger, store, player.New())
	router := api.NewRouter(app, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
