package handler

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/spatialtag/spatial-engine/internal/config"
	"github.com/spatialtag/spatial-engine/internal/engine"
	"github.com/spatialtag/spatial-engine/internal/geo"
	"github.com/spatialtag/spatial-engine/internal/lidar"
	"github.com/spatialtag/spatial-engine/internal/models"
	"github.com/spatialtag/spatial-engine/pkg/pb"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "development",
		Server: config.ServerConfig{
			Addr:                    "[::1]:50051",
			RequestTimeout:          time.Second,
			RateLimitPerMinute:      6000,
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
			MetricsPort: "9090",
		},
	}
}

func newTestServer(t *testing.T) (*Server, *engine.Engine) {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	eng, err := engine.New(testConfig(), logger)
	require.NoError(t, err)
	return NewServer(testConfig(), eng, logger), eng
}

func TestProcessScan(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	resp, err := s.ProcessScan(ctx, &pb.ScanFrame{
		Points: []*pb.SpatialPoint{
			{X: 1, Y: 2, Z: 0.5},
			{X: 0.1, Y: 0, Z: 0}, // filtered by range
		},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Points, 1)
	assert.NotEmpty(t, resp.MapId)
	assert.Equal(t, 0.85, resp.ConfidenceThreshold)
}

func TestProcessScan_WithPose(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	resp, err := s.ProcessScan(ctx, &pb.ScanFrame{
		Points: []*pb.SpatialPoint{{X: 0.1, Y: 0, Z: 0}},
		Pose: []float64{
			1, 0, 0, 5,
			0, 1, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, 1,
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Points, 1)
	assert.InDelta(t, 5.1, resp.Points[0].X, 1e-9)
}

func TestProcessScan_InvalidPose(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	_, err := s.ProcessScan(ctx, &pb.ScanFrame{
		Points: []*pb.SpatialPoint{{X: 1, Y: 1, Z: 1}},
		Pose:   []float64{1, 2, 3},
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestDiscoverNearby(t *testing.T) {
	s, eng := newTestServer(t)
	ctx := context.Background()

	loc, err := models.NewLocation(37.7749, -122.4194, 10, 1.0)
	require.NoError(t, err)
	require.NoError(t, eng.RegisterUser(ctx, "u1", loc))

	resp, err := s.DiscoverNearby(ctx, &pb.ProximityRequest{
		Location: &pb.Location{
			Latitude: 37.7749, Longitude: -122.4194, Altitude: 10, AccuracyMeters: 1,
		},
		RadiusMeters: 50,
		Kind:         pb.EntityKind_ENTITY_KIND_USER,
	})
	require.NoError(t, err)
	require.Len(t, resp.Candidates, 1)
	assert.Equal(t, "u1", resp.Candidates[0].Id)
	assert.True(t, resp.Partial)
	assert.GreaterOrEqual(t, resp.ProcessingTimeMs, 0.0)
}

func TestDiscoverNearby_MissingLocation(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	_, err := s.DiscoverNearby(ctx, &pb.ProximityRequest{RadiusMeters: 50})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestDiscoverNearby_InvalidLatitude(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	_, err := s.DiscoverNearby(ctx, &pb.ProximityRequest{
		Location:     &pb.Location{Latitude: 91, AccuracyMeters: 1},
		RadiusMeters: 50,
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestUpdateLocation(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	_, err := s.UpdateLocation(ctx, &pb.UpdateLocationRequest{
		Id:   "tag1",
		Kind: pb.EntityKind_ENTITY_KIND_TAG,
		Location: &pb.Location{
			Latitude: 0, Longitude: 0, Altitude: 0, AccuracyMeters: 1,
		},
	})
	require.NoError(t, err)

	resp, err := s.DiscoverNearby(ctx, &pb.ProximityRequest{
		Location:     &pb.Location{Latitude: 0, Longitude: 0, AccuracyMeters: 1},
		RadiusMeters: 50,
		Kind:         pb.EntityKind_ENTITY_KIND_TAG,
	})
	require.NoError(t, err)
	require.Len(t, resp.Candidates, 1)
	assert.Equal(t, "tag1", resp.Candidates[0].Id)
}

func TestUpdateLocation_RequiresID(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	_, err := s.UpdateLocation(ctx, &pb.UpdateLocationRequest{
		Location: &pb.Location{AccuracyMeters: 1},
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestHealth(t *testing.T) {
	s, eng := newTestServer(t)
	ctx := context.Background()

	resp, err := s.Health(ctx, &pb.HealthRequest{})
	require.NoError(t, err)
	assert.True(t, resp.Healthy)
	assert.Equal(t, "ready", resp.Status)

	// Health stays reachable under the battery gate.
	eng.SetBatteryLevel(10)
	resp, err = s.Health(ctx, &pb.HealthRequest{})
	require.NoError(t, err)
	assert.False(t, resp.Healthy)
	assert.Equal(t, "battery_critical", resp.Status)
}

func TestBatteryGateMapsToFailedPrecondition(t *testing.T) {
	s, eng := newTestServer(t)
	ctx := context.Background()

	eng.SetBatteryLevel(10)
	_, err := s.ProcessScan(ctx, &pb.ScanFrame{Points: []*pb.SpatialPoint{{X: 1, Y: 1, Z: 1}}})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"field error", &models.FieldError{Field: "latitude", Value: 91}, codes.InvalidArgument},
		{"radius error", &models.RadiusError{Value: 60}, codes.InvalidArgument},
		{"range error", &lidar.RangeError{Value: 0.1}, codes.InvalidArgument},
		{"excessive cloud", &lidar.ExcessiveCloudError{Size: 200000}, codes.InvalidArgument},
		{"pose error", &lidar.PoseError{Message: "bad"}, codes.InvalidArgument},
		{"query limit", geo.ErrQueryLimit, codes.ResourceExhausted},
		{"lock timeout", geo.ErrLockTimeout, codes.Unavailable},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded},
		{"canceled", context.Canceled, codes.Canceled},
		{"battery", engine.ErrBatteryCritical, codes.FailedPrecondition},
		{"shutting down", engine.ErrShuttingDown, codes.FailedPrecondition},
		{"unknown", io.ErrUnexpectedEOF, codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, status.Code(mapError(tt.err)))
		})
	}
	assert.NoError(t, mapError(nil))
}

// fakeProximityStream drives StreamProximity without a network.
type fakeProximityStream struct {
	ctx       context.Context
	requests  []*pb.ProximityRequest
	cursor    int
	responses []*pb.ProximityResponse
}

func (f *fakeProximityStream) Send(resp *pb.ProximityResponse) error {
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeProximityStream) Recv() (*pb.ProximityRequest, error) {
	if f.cursor >= len(f.requests) {
		return nil, io.EOF
	}
	req := f.requests[f.cursor]
	f.cursor++
	return req, nil
}

func (f *fakeProximityStream) Context() context.Context     { return f.ctx }
func (f *fakeProximityStream) SetHeader(metadata.MD) error  { return nil }
func (f *fakeProximityStream) SendHeader(metadata.MD) error { return nil }
func (f *fakeProximityStream) SetTrailer(metadata.MD)       {}
func (f *fakeProximityStream) SendMsg(m interface{}) error  { return nil }
func (f *fakeProximityStream) RecvMsg(m interface{}) error  { return nil }

func TestStreamProximity_OneResponsePerRequestInOrder(t *testing.T) {
	s, eng := newTestServer(t)
	ctx := context.Background()

	locA, err := models.NewLocation(0, 0, 0, 1.0)
	require.NoError(t, err)
	require.NoError(t, eng.RegisterUser(ctx, "u1", locA))

	request := func(radius float64) *pb.ProximityRequest {
		return &pb.ProximityRequest{
			Location:     &pb.Location{Latitude: 0, Longitude: 0, AccuracyMeters: 1},
			RadiusMeters: radius,
			Kind:         pb.EntityKind_ENTITY_KIND_USER,
		}
	}

	stream := &fakeProximityStream{
		ctx:      ctx,
		requests: []*pb.ProximityRequest{request(50), request(10), request(5)},
	}

	require.NoError(t, s.StreamProximity(stream))
	require.Len(t, stream.responses, 3)
	for _, resp := range stream.responses {
		assert.Len(t, resp.Candidates, 1)
	}
}

func TestStreamProximity_FatalRequestEndsStream(t *testing.T) {
	s, _ := newTestServer(t)

	stream := &fakeProximityStream{
		ctx: context.Background(),
		requests: []*pb.ProximityRequest{
			{RadiusMeters: 50}, // missing location
		},
	}

	err := s.StreamProximity(stream)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
