// File: cmd/server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log" // Standard log for startup/shutdown messages before/after zap is active
	"os"
	"os/signal"
	"syscall"

	"revert_connect_backend/internal/config"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Printf("FATAL: %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "revert-connect",
		Short:         "Revert Connect community directory API",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Running the binary without a subcommand serves the API.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
	root.AddCommand(newServeCmd(), newSyncResourcesCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func newSyncResourcesCmd() *cobra.Command {
	var (
		batchSize int
		esRefresh string
	)
	cmd := &cobra.Command{
		Use:   "sync-resources",
		Short: "Re-index every resource into Elasticsearch",
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch esRefresh {
			case "true", "false", "wait_for":
			default:
				return fmt.Errorf("invalid --es-refresh %q (expected true, false or wait_for)", esRefresh)
			}
			return runSyncResources(cmd.Context(), batchSize, esRefresh)
		},
	}
	cmd.Flags().IntVar(&batchSize, "batch-size", 100, "Batch size for syncing resources")
	cmd.Flags().StringVar(&esRefresh, "es-refresh", "false", "Elasticsearch refresh policy (true, false, wait_for)")
	return cmd
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	server, cleanup, err := initializeServer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-gctx.Done()
		log.Println("INFO: Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ServerTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		log.Println("INFO: Server shutdown complete.")
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Println("INFO: Application exiting.")
	return nil
}

func runSyncResources(ctx context.Context, batchSize int, esRefresh string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration for sync: %w", err)
	}
	indexer, cleanup, err := initializeIndexer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize indexer: %w", err)
	}
	defer cleanup()
	if !indexer.Enabled() {
		return errors.New("ELASTICSEARCH_URL is not set; nothing to sync")
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats, err := indexer.SyncAll(ctx, batchSize, esRefresh)
	if err != nil {
		return fmt.Errorf("resource synchronization failed after %d batches: %w", stats.Batches, err)
	}
	log.Printf("INFO: Resource synchronization completed: %d synced in %d batches.", stats.Synced, stats.Batches)
	return nil
}
