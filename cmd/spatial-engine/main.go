package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spatialtag/spatial-engine/internal/config"
	"github.com/spatialtag/spatial-engine/internal/engine"
	"github.com/spatialtag/spatial-engine/internal/handler"
	"github.com/spatialtag/spatial-engine/pkg/utils"
)

var (
	// Version is set at build time through ldflags.
	Version = "dev"
)

// Exit codes: 0 normal, 1 invalid configuration, 2 bind/transport
// failure, 130 external termination.
const (
	exitConfig    = 1
	exitTransport = 2
	exitSignal    = 130
)

// maintenanceInterval paces the background index rebuild.
const maintenanceInterval = 5 * time.Minute

func main() {
	os.Exit(run())
}

func run() int {
	logger := utils.NewLogger(config.LogLevel(), config.LogFormat())
	logger.WithField("version", Version).Info("starting spatial engine")

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Error("failed to load config")
		return exitConfig
	}

	eng, err := engine.New(cfg, logger)
	if err != nil {
		logger.WithError(err).Error("failed to initialize engine")
		return exitConfig
	}

	grpcServer := handler.NewServer(cfg, eng, logger)
	lis, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		logger.WithError(err).WithField("addr", cfg.Server.Addr).Error("failed to bind")
		return exitTransport
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- grpcServer.Serve(lis)
	}()

	var monitoring *handler.MonitoringServer
	if cfg.Monitoring.MetricsEnabled {
		monitoring = handler.NewMonitoringServer(cfg, eng, logger)
		go func() {
			if err := monitoring.Start(); err != nil {
				logger.WithError(err).Error("monitoring server error")
			}
		}()
	}

	// Periodic bulk rebuild keeps the R-trees balanced under the
	// append-heavy scan workload.
	maintCtx, maintCancel := context.WithCancel(context.Background())
	defer maintCancel()
	go func() {
		ticker := time.NewTicker(maintenanceInterval)
		defer ticker.Stop()
		for {
			select {
			case <-maintCtx.Done():
				return
			case <-ticker.C:
				if _, err := eng.OptimizeIndexes(maintCtx); err != nil {
					logger.WithError(err).Warn("index maintenance failed")
				}
			}
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	code := 0
	select {
	case sig := <-sigChan:
		logger.WithField("signal", sig.String()).Info("shutdown signal received")
		code = exitSignal
	case err := <-serveErr:
		if err != nil {
			logger.WithError(err).Error("gRPC server error")
			code = exitTransport
		}
	}

	// Drain the engine first so in-flight operations finish inside the
	// grace period, then stop the transports.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdownTimeout)
	defer cancel()
	if err := eng.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Warn("engine shutdown incomplete")
	}

	grpcServer.Stop()
	if monitoring != nil {
		if err := monitoring.Shutdown(cfg.Server.GracefulShutdownTimeout); err != nil {
			logger.WithError(err).Warn("monitoring shutdown error")
		}
	}

	logger.Info("spatial engine stopped")
	return code
}
