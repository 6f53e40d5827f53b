package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/ilmnur/admin-dashboard/internal/backend"
	"github.com/ilmnur/admin-dashboard/internal/config"
	"github.com/ilmnur/admin-dashboard/internal/handler"
	"github.com/ilmnur/admin-dashboard/internal/session"
	"github.com/ilmnur/admin-dashboard/internal/state"
)

func main() {
	root := &cli.Command{
		Name:  "dashboard",
		Usage: "Admin dashboard gateway for the multilingual learning backend",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the dashboard server",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", Usage: "listen address (overrides DASHBOARD_ADDR)"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return serve(ctx, c.String("addr"))
				},
			},
			{
				Name:  "state",
				Usage: "Maintain the local state store",
				Commands: []*cli.Command{
					{
						Name:  "clear-session",
						Usage: "Remove the persisted session, forcing a fresh login",
						Action: func(ctx context.Context, _ *cli.Command) error {
							return withStore(ctx, func(ctx context.Context, store *state.Store) error {
								if err := store.ClearSession(); err != nil {
									return err
								}
								slog.Info("persisted session cleared")
								return nil
							})
						},
					},
					{
						Name:  "prune-activity",
						Usage: "Delete activity log entries older than the retention window",
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "keep-days", Value: 90, Usage: "retention window in days"},
						},
						Action: func(ctx context.Context, c *cli.Command) error {
							days := int(c.Int("keep-days"))
							return withStore(ctx, func(ctx context.Context, store *state.Store) error {
								cutoff := time.Now().UTC().AddDate(0, 0, -days)
								removed, err := store.PruneActivity(ctx, cutoff)
								if err != nil {
									return err
								}
								slog.Info("activity log pruned", "removed", removed, "cutoff", cutoff)
								return nil
							})
						},
					},
				},
			},
		},
		Action: func(ctx context.Context, _ *cli.Command) error {
			return serve(ctx, "")
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

// withStore opens the state store with the configured path and secret, runs
// fn, and closes it. Used by the maintenance subcommands.
func withStore(ctx context.Context, fn func(context.Context, *state.Store) error) error {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := state.Open(ctx, cfg.StatePath, cfg.StateSecret)
	if err != nil {
		return err
	}
	defer store.Close()

	return fn(ctx, store)
}

func serve(ctx context.Context, addrOverride string) error {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if addrOverride != "" {
		cfg.Addr = addrOverride
	}

	store, err := state.Open(ctx, cfg.StatePath, cfg.StateSecret)
	if err != nil {
		return err
	}
	defer store.Close()

	sessions, err := session.New(store)
	if err != nil {
		return err
	}

	client := backend.NewClient(cfg.BackendURL, sessions)
	h := handler.New(client, sessions, store)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: h.Routes(),
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr, "env", cfg.Env, "backend", cfg.BackendURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		return err
	}

	slog.Info("server stopped")
	return nil
}
