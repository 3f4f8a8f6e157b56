package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/movieshelf/internal/client/api"
	"github.com/iudanet/movieshelf/internal/client/auth"
	"github.com/iudanet/movieshelf/internal/client/cli"
	"github.com/iudanet/movieshelf/internal/client/iocli"
	"github.com/iudanet/movieshelf/internal/client/live"
	"github.com/iudanet/movieshelf/internal/client/replica"
	"github.com/iudanet/movieshelf/internal/client/storage/boltdb"
	clientsync "github.com/iudanet/movieshelf/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "movieshelf-client.db", "Path to local database")
	verbose := flag.Bool("verbose", false, "Print debug logs to stderr")

	flag.Parse()

	stdio := iocli.NewStdio()

	if *showVersion {
		printVersion(stdio)
		return 0
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(stdio)
		return 1
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	apiClient := api.NewClient(*serverURL, logger)
	authService := auth.NewService(apiClient, boltStorage, logger)
	apiClient.SetTokenSource(authService)

	store := replica.Open(ctx, boltStorage, boltStorage, logger)
	coordinator := clientsync.NewCoordinator(ctx, apiClient, store, boltStorage, logger)

	monitor, err := clientsync.NewMonitor(*serverURL, apiClient, logger,
		clientsync.WithPendingCheck(func(ctx context.Context) bool {
			return len(store.ListPending(ctx)) > 0
		}))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	app := cli.New(cli.Deps{
		IO:           stdio,
		Auth:         authService,
		Coordinator:  coordinator,
		Replica:      store,
		Connectivity: monitor,
		Ratings:      apiClient,
		Logger:       logger,
		Live: func(opts ...live.Option) (cli.LiveChannel, error) {
			sub, err := live.NewSubscriber(*serverURL, authService, store, logger, opts...)
			if err != nil {
				return nil, err
			}
			return sub, nil
		},
	})

	if err := app.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, cli.ErrUnknownCommand) {
			cli.PrintUsage(stdio)
		}
		return 1
	}
	return 0
}

func printVersion(out iocli.IO) {
	out.Printf("movieshelf client\n")
	out.Printf("Version:    %s\n", Version)
	out.Printf("Build Date: %s\n", BuildDate)
	out.Printf("Git Commit: %s\n", GitCommit)
}
