package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/wagertrack/wagertrack/internal/client/api"
	"github.com/wagertrack/wagertrack/internal/client/auth"
	"github.com/wagertrack/wagertrack/internal/client/cache"
	"github.com/wagertrack/wagertrack/internal/client/cli"
	"github.com/wagertrack/wagertrack/internal/client/iocli"
	"github.com/wagertrack/wagertrack/internal/client/netmon"
	"github.com/wagertrack/wagertrack/internal/client/offline"
	"github.com/wagertrack/wagertrack/internal/client/offlineapi"
	"github.com/wagertrack/wagertrack/internal/client/storage"
	"github.com/wagertrack/wagertrack/internal/client/storage/boltdb"
	"github.com/wagertrack/wagertrack/internal/client/storage/memory"
	"github.com/wagertrack/wagertrack/internal/client/storage/sqlite"
	syncpkg "github.com/wagertrack/wagertrack/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "wagertrack-client.db", "Path to local database")
	backend := flag.String("storage", "bolt", "Local storage backend: bolt or sqlite")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	ctx := context.Background()

	store, err := openStore(ctx, *backend, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}

	client := buildClient(*serverURL, store, logger)
	defer func() {
		if err := client.Close(); err != nil {
			logger.Error("failed to close client", "error", err)
		}
	}()

	// Reactivate a saved session so authenticated commands work right away.
	if _, err := client.RestoreSession(ctx); err != nil && !errors.Is(err, auth.ErrNotAuthenticated) {
		logger.Warn("failed to restore session", "error", err)
	}

	if err := cli.New(client, iocli.NewStdio()).Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Housekeeping rides along on every invocation; failures never affect
	// the command's outcome.
	if err := client.Maintain(ctx); err != nil {
		logger.Debug("maintenance failed", "error", err)
	}
}

func openStore(ctx context.Context, backend, dbPath string) (storage.KVStore, error) {
	switch backend {
	case "bolt":
		return boltdb.New(ctx, dbPath)
	case "sqlite":
		return sqlite.New(ctx, dbPath)
	case "memory":
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q, use bolt, sqlite or memory", backend)
	}
}

func buildClient(serverURL string, store storage.KVStore, logger *slog.Logger) *offlineapi.Client {
	apiClient := api.NewClient(serverURL)

	dataCache := cache.New(store, logger)
	queue := offline.NewQueue(store, logger)
	records := offline.NewRecordStore(store, queue, logger)

	monitor := netmon.New(apiClient, netmon.DefaultInterval, logger)
	coordinator := syncpkg.NewCoordinator(apiClient, queue, records, dataCache, monitor, store, logger)

	session := auth.NewSession(store, logger)
	authService := auth.NewService(apiClient, session, logger)

	client := offlineapi.New(offlineapi.Config{
		APIClient:   apiClient,
		AuthService: authService,
		Cache:       dataCache,
		Queue:       queue,
		Records:     records,
		Coordinator: coordinator,
		Monitor:     monitor,
		Store:       store,
		Logger:      logger,
	})

	// One synchronous probe instead of the poll loop: a one-shot command
	// needs the current state, not a background watcher.
	probeCtx, cancel := context.WithTimeout(context.Background(), netmon.ProbeTimeout)
	defer cancel()
	monitor.SetOnline(apiClient.Ping(probeCtx) == nil)

	return client
}

func printVersion() {
	fmt.Printf("WagerTrack Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
