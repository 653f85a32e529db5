package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"soundctl/internal/client"
	"soundctl/internal/config"
	"soundctl/internal/console"
	"soundctl/internal/logger"
	"soundctl/internal/server"
	"soundctl/internal/simulator"
	"soundctl/internal/simulator/repository"
	"soundctl/internal/statestore"
	"soundctl/internal/tui"
)

func main() {
	root := &cobra.Command{
		Use:   "soundctl",
		Short: "Venue audio operator console",
		Long:  "soundctl is the terminal console for the venue audio control service.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole()
		},
		SilenceUsage: true,
	}
	root.AddCommand(&cobra.Command{
		Use:   "simulator",
		Short: "Run a local stand-in for the control service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulator()
		},
		SilenceUsage: true,
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// runConsole wires the client-side engine and hands the terminal to the TUI.
// Logs go to a file; stdout belongs to the alt screen.
func runConsole() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.GetFile(cfg.LogLevel, cfg.LogFile)
	defer func() { _ = log.Sync() }()

	db, err := statestore.Open(cfg.StateDBPath)
	if err != nil {
		log.Errorw("opening state store failed", "path", cfg.StateDBPath, "err", err)
		return err
	}
	defer func() { _ = db.Close() }()

	api := client.New(cfg.APIBaseURL, cfg.APIPrefix)
	eng := console.New(api, statestore.NewSQLite(db), console.Options{
		PIN:          cfg.PIN,
		PollInterval: cfg.PollInterval,
	}, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Infow("console starting", "api", cfg.APIBaseURL+cfg.APIPrefix, "poll_interval", cfg.PollInterval)
	return tui.Run(ctx, eng, cfg.PollInterval)
}

// runSimulator starts the local control-service stand-in: SQLite-backed
// schedule, in-memory venue state, the cue engine, and the HTTP API.
func runSimulator() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.Get(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	tz, err := time.LoadLocation(cfg.SimulatorTimezone)
	if err != nil {
		log.Warnw("unknown timezone, falling back to UTC", "tz", cfg.SimulatorTimezone, "err", err)
		tz = time.UTC
	}

	db, err := repository.InitDB(cfg.SimulatorDBPath)
	if err != nil {
		log.Errorw("failed to init sqlite", "path", cfg.SimulatorDBPath, "err", err)
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	repos := repository.NewRepository(db)
	svc := simulator.NewService(repos, tz, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := svc.Seed(ctx); err != nil {
		log.Errorw("seeding default schedule failed", "err", err)
		return err
	}

	engine := simulator.NewEngine(svc)
	go engine.Run(ctx, cfg.SimulatorTick)

	handler := simulator.NewHandler(svc, log)
	srv := &server.Server{}
	go func() {
		if err := srv.Run(cfg.SimulatorPort, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
	log.Infow("simulator listening", "port", cfg.SimulatorPort, "tz", tz.String())

	waitForShutdown(cancel, srv, log)
	return nil
}

// waitForShutdown blocks on SIGINT/SIGTERM, stops background goroutines,
// and drains in-flight requests.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
