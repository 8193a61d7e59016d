package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/openbess/bessd/pkg/api"
	"github.com/openbess/bessd/pkg/config"
	"github.com/openbess/bessd/pkg/log"
	"github.com/openbess/bessd/pkg/manager"
	"github.com/openbess/bessd/pkg/metrics"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bessd",
	Short: "bessd - software packet switch control plane",
	Long: `bessd runs a software packet-switching dataplane: packet-processing
modules wired into a dataflow graph, dispatched by traffic-class
schedulers on core-pinned workers, all driven over a gRPC control API.`,
	Version: Version,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"bessd version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(applyCmd)

	daemonCmd.Flags().StringVar(&daemonConfigPath, "config", "", "path to config file")
	daemonCmd.Flags().StringVar(&daemonListenAddr, "listen", "", "control API address (overrides config)")
	daemonCmd.Flags().StringVar(&daemonHealthAddr, "health", "", "health/metrics address (overrides config)")
	daemonCmd.Flags().BoolVar(&daemonTrackGates, "track-gates", false, "include per-gate counters in module info")

	applyCmd.Flags().StringVarP(&applyFile, "file", "f", "", "pipeline manifest to apply")
	applyCmd.Flags().StringVar(&applyAddr, "addr", "127.0.0.1:10514", "control API address")
	_ = applyCmd.MarkFlagRequired("file")
}

var (
	daemonConfigPath string
	daemonListenAddr string
	daemonHealthAddr string
	daemonTrackGates bool
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the bessd daemon",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(daemonConfigPath)
		if err != nil {
			return err
		}
		if daemonListenAddr != "" {
			cfg.ListenAddr = daemonListenAddr
		}
		if daemonHealthAddr != "" {
			cfg.HealthAddr = daemonHealthAddr
		}
		if daemonTrackGates {
			cfg.TrackGates = true
		}

		log.Init(log.Config{
			Level:      log.Level(cfg.LogLevel),
			JSONOutput: cfg.LogJSON,
		})
		logger := log.WithComponent("daemon")
		logger.Info().Str("version", Version).Msg("Starting bessd")

		mgr := manager.New(manager.Config{DefaultCore: cfg.DefaultCore})
		server := api.NewServer(mgr, api.Options{TrackGates: cfg.TrackGates})
		health := api.NewHealthServer(mgr)

		collector := metrics.NewCollector(mgr, server.Locker())
		collector.Start()
		defer collector.Stop()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return server.Start(cfg.ListenAddr)
		})
		g.Go(func() error {
			return health.Start(cfg.HealthAddr)
		})
		g.Go(func() error {
			<-ctx.Done()
			logger.Info().Msg("Shutting down")
			server.Stop()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = health.Stop(shutdownCtx)
			mgr.DestroyAllWorkers()
			return nil
		})

		if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}
