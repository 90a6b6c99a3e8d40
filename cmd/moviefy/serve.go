package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/jonathan/moviefy/internal/logging"
	"github.com/jonathan/moviefy/internal/recommend"
	"github.com/jonathan/moviefy/internal/server"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	servePort        int
	serveCatalog     string
	serveDatabaseURL string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing recommendations, index management, health and metrics endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config)")
	serveCmd.Flags().StringVarP(&serveCatalog, "catalog", "c", "", "Path to catalog JSON file (default from config)")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "database-url", "", "PostgreSQL URL to load the catalog from")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(contextOf(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := logging.Component("server")

	store, closeStore, err := openStore(ctx, resolveSource(serveCatalog, serveDatabaseURL))
	if err != nil {
		return err
	}
	defer closeStore()

	opts, err := engineOptions("")
	if err != nil {
		return err
	}
	engine := recommend.NewEngine(store, append(opts, recommend.WithLogger(logging.Component("recommend")))...)

	// Warm up so the first request does not pay for the index build.
	if !engine.Warm(ctx) {
		logger.Warn().Str("error", engine.Stats().LastError).Msg("starting without a catalog index")
	}

	port := servePort
	if port == 0 {
		port = cfg.Server.Port
	}
	srv := server.New(server.Config{
		Port:        port,
		CORSOrigins: cfg.Server.CORSOrigins,
		RateLimit:   cfg.Server.RateLimit,
		RateWindow:  cfg.Server.RateWindow,
		DefaultTopN: cfg.Engine.TopN,
	}, engine, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})
	g.Go(func() error {
		return recommend.NewRefresher(engine, cfg.Engine.RefreshInterval).Run(gctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
