// Package engine wires the spatial indexes, the LiDAR processor and the
// proximity resolver behind a single facade that enforces the health and
// lifecycle gates.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/spatialtag/spatial-engine/internal/config"
	"github.com/spatialtag/spatial-engine/internal/geo"
	"github.com/spatialtag/spatial-engine/internal/lidar"
	"github.com/spatialtag/spatial-engine/internal/metrics"
	"github.com/spatialtag/spatial-engine/internal/models"
	"github.com/spatialtag/spatial-engine/internal/proximity"
)

// Facade-gate refusals. Non-retryable within the current process state.
var (
	ErrBatteryCritical = errors.New("battery level below operating threshold")
	ErrShuttingDown    = errors.New("engine is shutting down")
)

// State is the facade lifecycle state.
type State int32

const (
	StateInitializing State = iota
	StateReady
	StateDraining
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateDraining:
		return "draining"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// HealthStatus is the engine health snapshot reported to the transport.
type HealthStatus struct {
	Healthy       bool
	Status        string
	UptimeSeconds float64
}

// healthMonitor tracks the gate inputs: battery percentage, last check
// time, last processing duration.
type healthMonitor struct {
	batteryPercent   atomic.Int32
	lastCheckAt      atomic.Int64 // unix nanos
	lastProcessingMs atomic.Int64
}

func (h *healthMonitor) recordCheck() {
	h.lastCheckAt.Store(time.Now().UnixNano())
}

// Engine is the facade over the core components. It owns the three spatial
// indexes exclusively and shares them with the processor and resolver.
type Engine struct {
	cfg *config.Config

	environment *geo.SpatialIndex
	users       *geo.SpatialIndex
	tags        *geo.SpatialIndex

	processor *lidar.Processor
	resolver  *proximity.Resolver

	health    healthMonitor
	state     atomic.Int32
	inflight  sync.WaitGroup
	startedAt time.Time
	logger    *logrus.Entry
}

// New constructs and wires the engine. The environment index runs in the
// device-local frame, the entity indexes in the geodetic frame.
func New(cfg *config.Config, logger *logrus.Logger) (*Engine, error) {
	e := &Engine{
		cfg:       cfg,
		startedAt: time.Now(),
		logger:    logger.WithField("component", "engine"),
	}
	e.state.Store(int32(StateInitializing))
	e.health.batteryPercent.Store(100)

	capacity := geo.WithNodeCapacity(cfg.Engine.NodeCapacity)
	e.environment = geo.NewSpatialIndex("environment", geo.FrameLocal, capacity)
	e.users = geo.NewSpatialIndex("users", geo.FrameGeodetic, capacity)
	e.tags = geo.NewSpatialIndex("tags", geo.FrameGeodetic, capacity)

	processor, err := lidar.NewProcessor(e.environment, logger,
		lidar.WithScanRange(cfg.Scan.MaxRangeMeters),
		lidar.WithMinScanRange(cfg.Scan.MinRangeMeters),
		lidar.WithConfidenceThreshold(cfg.Scan.ConfidenceThreshold),
		lidar.WithBatchSize(cfg.Scan.BatchSize),
	)
	if err != nil {
		return nil, fmt.Errorf("lidar processor: %w", err)
	}
	e.processor = processor
	e.resolver = proximity.NewResolver(e.users, e.tags, processor, logger)

	e.state.Store(int32(StateReady))
	e.logger.WithFields(logrus.Fields{
		"scan_range":    cfg.Scan.MaxRangeMeters,
		"batch_size":    cfg.Scan.BatchSize,
		"battery_gate":  cfg.Engine.BatteryThresholdPercent,
		"node_capacity": cfg.Engine.NodeCapacity,
	}).Info("spatial engine initialized")

	return e, nil
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return State(e.state.Load())
}

// SetBatteryLevel records the device battery percentage consulted by the
// operation gate.
func (e *Engine) SetBatteryLevel(percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	e.health.batteryPercent.Store(int32(percent))
	metrics.BatteryPercent.Set(float64(percent))
}

// BatteryLevel returns the last recorded battery percentage.
func (e *Engine) BatteryLevel() int {
	return int(e.health.batteryPercent.Load())
}

// LastProcessingMs returns the duration of the most recent gated operation.
func (e *Engine) LastProcessingMs() int64 {
	return e.health.lastProcessingMs.Load()
}

// beginOp runs the facade gates and registers an in-flight operation. The
// returned func must be called when the operation completes.
func (e *Engine) beginOp(name string) (func(status string), error) {
	if State(e.state.Load()) != StateReady {
		return nil, ErrShuttingDown
	}
	if int(e.health.batteryPercent.Load()) < e.cfg.Engine.BatteryThresholdPercent {
		metrics.OperationsTotal.WithLabelValues(name, "battery_critical").Inc()
		return nil, ErrBatteryCritical
	}
	e.health.recordCheck()

	e.inflight.Add(1)
	start := time.Now()
	return func(status string) {
		duration := time.Since(start)
		e.health.lastProcessingMs.Store(duration.Milliseconds())
		metrics.OperationDuration.WithLabelValues(name).Observe(duration.Seconds())
		metrics.OperationsTotal.WithLabelValues(name, status).Inc()
		e.inflight.Done()
	}, nil
}

func opStatus(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ProcessScan forwards a frame to the LiDAR processor. pose may be nil.
func (e *Engine) ProcessScan(ctx context.Context, points []lidar.Point3, pose *lidar.Pose) (*lidar.EnvironmentMap, error) {
	done, err := e.beginOp("process_scan")
	if err != nil {
		return nil, err
	}

	envMap, err := e.processor.ProcessPointCloud(ctx, points, pose)
	done(opStatus(err))
	if err != nil {
		return nil, err
	}

	metrics.PointsProcessedTotal.Add(float64(len(envMap.Points)))
	metrics.ScanPointsRetained.Observe(float64(len(envMap.Points)))
	e.updateIndexGauge(ctx, e.environment)
	return envMap, nil
}

// DiscoverNearby resolves a proximity query against the selected entity
// index. radiusMeters of 0 selects the default.
func (e *Engine) DiscoverNearby(ctx context.Context, kind proximity.Kind, center models.Location, radiusMeters float64) (*proximity.DiscoveryResult, error) {
	done, err := e.beginOp("discover_nearby")
	if err != nil {
		return nil, err
	}

	result, err := e.resolver.DiscoverNearby(ctx, kind, center, radiusMeters)
	done(opStatus(err))
	return result, err
}

// CheckInteractionPossible reports whether two locations can interact.
func (e *Engine) CheckInteractionPossible(ctx context.Context, a, b models.Location) (bool, float64, error) {
	done, err := e.beginOp("check_interaction")
	if err != nil {
		return false, 0, err
	}

	possible, confidence, err := e.resolver.CheckInteractionPossible(ctx, a, b)
	done(opStatus(err))
	return possible, confidence, err
}

// RegisterUser records a user location in the user index.
func (e *Engine) RegisterUser(ctx context.Context, id string, loc models.Location) error {
	return e.registerEntity(ctx, e.users, "register_user", id, loc)
}

// RegisterTag records a tag location in the tag index.
func (e *Engine) RegisterTag(ctx context.Context, id string, loc models.Location) error {
	return e.registerEntity(ctx, e.tags, "register_tag", id, loc)
}

func (e *Engine) registerEntity(ctx context.Context, index *geo.SpatialIndex, op, id string, loc models.Location) error {
	done, err := e.beginOp(op)
	if err != nil {
		return err
	}

	err = index.Insert(ctx, geo.IndexedPoint{
		Location:   loc,
		ID:         id,
		Confidence: loc.Confidence,
	})
	done(opStatus(err))
	if err != nil {
		return err
	}

	e.updateIndexGauge(ctx, index)
	return nil
}

// OptimizeIndexes bulk-rebuilds all three indexes, restoring R-tree
// balance. Intended for the advisory maintenance cadence.
func (e *Engine) OptimizeIndexes(ctx context.Context) (map[string]geo.OptimizationStats, error) {
	done, err := e.beginOp("optimize_indexes")
	if err != nil {
		return nil, err
	}

	stats := make(map[string]geo.OptimizationStats, 3)
	var firstErr error
	for _, index := range []*geo.SpatialIndex{e.environment, e.users, e.tags} {
		s, rerr := index.BulkRebuild(ctx)
		if rerr != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("rebuild %s: %w", index.Name(), rerr)
			}
			continue
		}
		stats[index.Name()] = s
	}
	done(opStatus(firstErr))
	return stats, firstErr
}

// Health reports the engine health. It stays reachable in every lifecycle
// state and under the battery gate.
func (e *Engine) Health() HealthStatus {
	uptime := time.Since(e.startedAt).Seconds()
	metrics.UptimeSeconds.Set(uptime)

	state := State(e.state.Load())
	battery := int(e.health.batteryPercent.Load())

	status := state.String()
	healthy := state == StateReady
	if healthy && battery < e.cfg.Engine.BatteryThresholdPercent {
		status = "battery_critical"
		healthy = false
	}

	return HealthStatus{
		Healthy:       healthy,
		Status:        status,
		UptimeSeconds: uptime,
	}
}

// Resolver exposes the proximity resolver for transports that stream.
func (e *Engine) Resolver() *proximity.Resolver {
	return e.resolver
}

// Shutdown drains the engine: new calls are refused immediately while
// in-flight operations get up to the configured grace period to complete.
func (e *Engine) Shutdown(ctx context.Context) error {
	if !e.state.CompareAndSwap(int32(StateReady), int32(StateDraining)) {
		return ErrShuttingDown
	}
	e.logger.Info("draining in-flight operations")

	drained := make(chan struct{})
	go func() {
		e.inflight.Wait()
		close(drained)
	}()

	var err error
	select {
	case <-drained:
	case <-time.After(e.cfg.Server.GracefulShutdownTimeout):
		err = fmt.Errorf("grace period %s elapsed with operations in flight",
			e.cfg.Server.GracefulShutdownTimeout)
	case <-ctx.Done():
		err = ctx.Err()
	}

	e.state.Store(int32(StateTerminated))
	e.logger.Info("engine terminated")
	return err
}

func (e *Engine) updateIndexGauge(ctx context.Context, index *geo.SpatialIndex) {
	if size, err := index.Size(ctx); err == nil {
		metrics.IndexSize.WithLabelValues(index.Name()).Set(float64(size))
	}
}
