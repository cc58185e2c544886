package engine

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialtag/spatial-engine/internal/config"
	"github.com/spatialtag/spatial-engine/internal/lidar"
	"github.com/spatialtag/spatial-engine/internal/models"
	"github.com/spatialtag/spatial-engine/internal/proximity"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "development",
		Server: config.ServerConfig{
			Addr:                    "[::1]:50051",
			RequestTimeout:          100 * time.Millisecond,
			RateLimitPerMinute:      600,
			StreamBuffer:            32,
			GracefulShutdownTimeout: 200 * time.Millisecond,
		},
		Scan: config.ScanConfig{
			MaxRangeMeters:      50,
			MinRangeMeters:      0.5,
			RefreshRateHz:       30,
			MaxProcessingTimeMs: 100,
			ConfidenceThreshold: 0.85,
			BatchSize:           1024,
		},
		Engine: config.EngineConfig{
			BatteryThresholdPercent: 15,
			NodeCapacity:            16,
		},
		Monitoring: config.MonitoringConfig{
			MetricsEnabled: false,
			MetricsPort:    "9090",
		},
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	eng, err := New(testConfig(), logger)
	require.NoError(t, err)
	return eng
}

func mustLocation(t *testing.T, lat, lon, alt float64) models.Location {
	t.Helper()
	loc, err := models.NewLocation(lat, lon, alt, 1.0)
	require.NoError(t, err)
	return loc
}

func TestEngine_StartsReady(t *testing.T) {
	eng := newTestEngine(t)
	assert.Equal(t, StateReady, eng.State())
	assert.Equal(t, 100, eng.BatteryLevel())
}

func TestEngine_ScanAndDiscover(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	center := mustLocation(t, 37.7749, -122.4194, 10)
	require.NoError(t, eng.RegisterUser(ctx, "u1", center))

	result, err := eng.DiscoverNearby(ctx, proximity.KindUser, center, 50)
	require.NoError(t, err)
	require.Len(t, result.Candidates, 1)
	assert.Equal(t, "u1", result.Candidates[0].ID)
	assert.True(t, result.Partial)

	envMap, err := eng.ProcessScan(ctx, []lidar.Point3{
		{X: 1, Y: 2, Z: 0.5},
		{X: 2, Y: 1, Z: 0},
	}, nil)
	require.NoError(t, err)
	assert.Len(t, envMap.Points, 2)

	// With a scan in place the visibility filter runs: the user sits far
	// from the scanned region, so the result narrows.
	result, err = eng.DiscoverNearby(ctx, proximity.KindUser, center, 50)
	require.NoError(t, err)
	assert.False(t, result.Partial)
	assert.Empty(t, result.Candidates)
}

func TestEngine_BatteryGate(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	eng.SetBatteryLevel(14)

	_, err := eng.ProcessScan(ctx, []lidar.Point3{{X: 1, Y: 1, Z: 1}}, nil)
	assert.ErrorIs(t, err, ErrBatteryCritical)

	center := mustLocation(t, 0, 0, 0)
	_, err = eng.DiscoverNearby(ctx, proximity.KindUser, center, 50)
	assert.ErrorIs(t, err, ErrBatteryCritical)

	err = eng.RegisterUser(ctx, "u1", center)
	assert.ErrorIs(t, err, ErrBatteryCritical)

	// Health stays reachable and reports the condition.
	h := eng.Health()
	assert.False(t, h.Healthy)
	assert.Equal(t, "battery_critical", h.Status)

	// Recovery reopens the gate.
	eng.SetBatteryLevel(80)
	_, err = eng.ProcessScan(ctx, []lidar.Point3{{X: 1, Y: 1, Z: 1}}, nil)
	assert.NoError(t, err)
}

func TestEngine_BatteryGateBoundary(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	// Exactly at the threshold is allowed; below is not.
	eng.SetBatteryLevel(15)
	_, err := eng.ProcessScan(ctx, []lidar.Point3{{X: 1, Y: 1, Z: 1}}, nil)
	assert.NoError(t, err)
}

func TestEngine_CheckInteraction(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	a := mustLocation(t, 0, 0, 0)
	b := mustLocation(t, 0.0000027, 0, 0) // ~0.3 m

	possible, confidence, err := eng.CheckInteractionPossible(ctx, a, b)
	require.NoError(t, err)
	assert.False(t, possible)
	assert.Equal(t, 0.0, confidence)
}

func TestEngine_OptimizeIndexes(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, eng.RegisterUser(ctx, "u1", mustLocation(t, 0, 0, 0)))
	_, err := eng.ProcessScan(ctx, []lidar.Point3{{X: 1, Y: 2, Z: 0.5}}, nil)
	require.NoError(t, err)

	stats, err := eng.OptimizeIndexes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats["users"].InitialCount)
	assert.Equal(t, 1, stats["users"].FinalCount)
	assert.Equal(t, 1, stats["environment"].FinalCount)
	assert.Equal(t, 0, stats["tags"].FinalCount)
}

func TestEngine_Health(t *testing.T) {
	eng := newTestEngine(t)

	h := eng.Health()
	assert.True(t, h.Healthy)
	assert.Equal(t, "ready", h.Status)
	assert.GreaterOrEqual(t, h.UptimeSeconds, 0.0)
}

func TestEngine_Shutdown(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, eng.Shutdown(ctx))
	assert.Equal(t, StateTerminated, eng.State())

	_, err := eng.ProcessScan(ctx, []lidar.Point3{{X: 1, Y: 1, Z: 1}}, nil)
	assert.ErrorIs(t, err, ErrShuttingDown)

	center := mustLocation(t, 0, 0, 0)
	_, err = eng.DiscoverNearby(ctx, proximity.KindUser, center, 50)
	assert.ErrorIs(t, err, ErrShuttingDown)

	// Health still answers after termination.
	h := eng.Health()
	assert.False(t, h.Healthy)
	assert.Equal(t, "terminated", h.Status)
}

func TestEngine_ShutdownTwice(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, eng.Shutdown(ctx))
	assert.ErrorIs(t, eng.Shutdown(ctx), ErrShuttingDown)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "initializing", StateInitializing.String())
	assert.Equal(t, "ready", StateReady.String())
	assert.Equal(t, "draining", StateDraining.String())
	assert.Equal(t, "terminated", StateTerminated.String())
}
