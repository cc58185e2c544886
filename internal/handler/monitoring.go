package handler

import (
	"context"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/spatialtag/spatial-engine/internal/config"
	"github.com/spatialtag/spatial-engine/internal/engine"
)

// MonitoringServer serves health, metrics and debug endpoints over HTTP,
// next to the gRPC transport. It stays reachable when the engine gates
// refuse operations.
type MonitoringServer struct {
	router     *gin.Engine
	httpServer *http.Server
	engine     *engine.Engine
	logger     *logrus.Entry
}

// NewMonitoringServer creates the monitoring HTTP server.
func NewMonitoringServer(cfg *config.Config, eng *engine.Engine, logger *logrus.Logger) *MonitoringServer {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	s := &MonitoringServer{
		router: router,
		engine: eng,
		logger: logger.WithField("component", "monitoring"),
	}

	router.GET("/health", s.healthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.Monitoring.DebugMode {
		debugGroup := router.Group("/debug/pprof")
		{
			debugGroup.GET("/", gin.WrapF(pprof.Index))
			debugGroup.GET("/cmdline", gin.WrapF(pprof.Cmdline))
			debugGroup.GET("/profile", gin.WrapF(pprof.Profile))
			debugGroup.GET("/symbol", gin.WrapF(pprof.Symbol))
			debugGroup.GET("/trace", gin.WrapF(pprof.Trace))
			debugGroup.GET("/heap", gin.WrapH(pprof.Handler("heap")))
			debugGroup.GET("/goroutine", gin.WrapH(pprof.Handler("goroutine")))
		}
	}

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Monitoring.MetricsPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s
}

// Start begins serving in the calling goroutine.
func (s *MonitoringServer) Start() error {
	s.logger.WithField("addr", s.httpServer.Addr).Info("monitoring server listening")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server.
func (s *MonitoringServer) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

func (s *MonitoringServer) healthCheck(c *gin.Context) {
	h := s.engine.Health()

	code := http.StatusOK
	if !h.Healthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"healthy":            h.Healthy,
		"status":             h.Status,
		"uptime_s":           h.UptimeSeconds,
		"battery":            s.engine.BatteryLevel(),
		"last_processing_ms": s.engine.LastProcessingMs(),
	})
}
