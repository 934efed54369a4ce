// Command kvmesh-manager runs the kvmesh Manager: the coordination
// node that tracks live Storage Nodes and Clients and drives
// two-phase commit writes and majority-read reconciliation across the
// mesh (SPEC_FULL.md §§1-5).
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"kvmesh/config"
	"kvmesh/internal/logging"
	"kvmesh/internal/manager"
	"kvmesh/internal/rpc"
	"kvmesh/internal/rpc/managerpb"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// flagOverrides holds the cobra/pflag-bound variables that, when set
// on the command line, take precedence over the YAML config file —
// SPEC_FULL.md §4.8, matching cmd/ployzd/main.go's flags-override-
// config shape.
type flagOverrides struct {
	configPath string

	listen         string
	workers        int
	logLevel       string
	probeInterval  time.Duration
	probeTimeout   time.Duration
	prepareTimeout time.Duration
	commitTimeout  time.Duration
}

func newRootCmd() *cobra.Command {
	var flags flagOverrides

	cmd := &cobra.Command{
		Use:   "kvmesh-manager",
		Short: "Run the kvmesh Manager coordination daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd, &flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to a YAML Manager config file")
	cmd.Flags().StringVar(&flags.listen, "listen", "", "host:port the gRPC server binds (overrides config)")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "bounded unary RPC worker pool size (overrides config)")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "debug, info, warn, or error (overrides config)")
	cmd.Flags().DurationVar(&flags.probeInterval, "probe-interval", 0, "period between liveness sweeps (overrides config)")
	cmd.Flags().DurationVar(&flags.probeTimeout, "probe-timeout", 0, "per-peer liveness probe timeout (overrides config)")
	cmd.Flags().DurationVar(&flags.prepareTimeout, "prepare-timeout", 0, "per-peer prepare-phase timeout (overrides config)")
	cmd.Flags().DurationVar(&flags.commitTimeout, "commit-timeout", 0, "per-peer commit/abort-phase timeout (overrides config)")
	return cmd
}

// applyFlagOverrides overlays every flag the caller actually set onto
// cfg, leaving config-file or default values untouched otherwise.
func applyFlagOverrides(cfg *config.Config, cmd *cobra.Command, flags *flagOverrides) {
	set := cmd.Flags().Changed
	if set("listen") {
		cfg.Listen = flags.listen
	}
	if set("workers") {
		cfg.Workers = flags.workers
	}
	if set("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if set("probe-interval") {
		cfg.ProbeInterval = flags.probeInterval
	}
	if set("probe-timeout") {
		cfg.ProbeTimeout = flags.probeTimeout
	}
	if set("prepare-timeout") {
		cfg.PrepareTimeout = flags.prepareTimeout
	}
	if set("commit-timeout") {
		cfg.CommitTimeout = flags.commitTimeout
	}
}

func run(ctx context.Context, cmd *cobra.Command, flags *flagOverrides) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlagOverrides(&cfg, cmd, flags)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := logging.Configure(cfg.LogLevel); err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	logger := slog.Default()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	dialer := rpc.NewGRPCDialer()
	defer dialer.Close()

	m := manager.New(
		manager.WithDialer(dialer),
		manager.WithPrepareTimeout(cfg.PrepareTimeout),
		manager.WithCommitTimeout(cfg.CommitTimeout),
		manager.WithProbeTimeout(cfg.ProbeTimeout),
		manager.WithLogger(logger),
		manager.WithTracer(otel.Tracer("kvmesh/manager")),
	)

	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Listen, err)
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(rpc.WorkerPoolInterceptor(cfg.Workers)),
	)
	managerpb.RegisterManagerServiceServer(grpcServer, rpc.NewServer(m))

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("manager listening", "addr", cfg.Listen, "workers", cfg.Workers)
		if err := grpcServer.Serve(lis); err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		err := m.RunLiveness(ctx, cfg.ProbeInterval)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		grpcServer.GracefulStop()
		return nil
	})

	if ok, notifyErr := daemon.SdNotify(false, daemon.SdNotifyReady); notifyErr != nil {
		logger.Warn("systemd notify failed", "error", notifyErr)
	} else if ok {
		logger.Info("notified systemd of readiness")
	}

	return g.Wait()
}
