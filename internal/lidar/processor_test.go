package lidar

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialtag/spatial-engine/internal/geo"
)

func newTestProcessor(t *testing.T, opts ...ProcessorOption) (*Processor, *geo.SpatialIndex) {
	t.Helper()
	index := geo.NewSpatialIndex("environment", geo.FrameLocal)
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	p, err := NewProcessor(index, logger, opts...)
	require.NoError(t, err)
	return p, index
}

func TestNewProcessor_Validation(t *testing.T) {
	index := geo.NewSpatialIndex("environment", geo.FrameLocal)
	logger := logrus.New()

	_, err := NewProcessor(index, logger, WithScanRange(0.1))
	var rangeErr *RangeError
	assert.ErrorAs(t, err, &rangeErr)

	_, err = NewProcessor(index, logger, WithScanRange(51))
	assert.ErrorAs(t, err, &rangeErr)

	_, err = NewProcessor(index, logger, WithConfidenceThreshold(0.5))
	var confErr *ConfidenceError
	assert.ErrorAs(t, err, &confErr)
}

func TestProcessPointCloud_RangeFilter(t *testing.T) {
	p, _ := newTestProcessor(t)
	ctx := context.Background()

	points := []Point3{
		{X: 0.1, Y: 0, Z: 0},  // below minimum range
		{X: 3, Y: 4, Z: 0},    // magnitude 5, accepted
		{X: 30, Y: 40, Z: 0},  // magnitude 50, boundary accepted
		{X: 40, Y: 40, Z: 10}, // beyond range
	}

	envMap, err := p.ProcessPointCloud(ctx, points, nil)
	require.NoError(t, err)
	assert.Len(t, envMap.Points, 2)
	assert.Equal(t, MinConfidenceThreshold, envMap.ConfidenceThreshold)
	assert.NotEmpty(t, envMap.MapID)
	assert.GreaterOrEqual(t, envMap.ProcessingTimeMs, 0.0)
}

func TestProcessPointCloud_ExcessiveCloud(t *testing.T) {
	p, index := newTestProcessor(t)
	ctx := context.Background()

	points := make([]Point3, MaxPointsPerScan+1)
	for i := range points {
		points[i] = Point3{X: 1, Y: 1, Z: 1}
	}

	_, err := p.ProcessPointCloud(ctx, points, nil)
	var cloudErr *ExcessiveCloudError
	require.ErrorAs(t, err, &cloudErr)
	assert.Equal(t, MaxPointsPerScan+1, cloudErr.Size)

	// The index is untouched.
	size, err := index.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, size)
}

func TestProcessPointCloud_AcceptedPointsAreQueryable(t *testing.T) {
	p, index := newTestProcessor(t)
	ctx := context.Background()

	points := []Point3{
		{X: 1, Y: 2, Z: 0.5},
		{X: -3, Y: 1, Z: 2},
		{X: 0, Y: 10, Z: -1},
	}
	envMap, err := p.ProcessPointCloud(ctx, points, nil)
	require.NoError(t, err)
	require.Len(t, envMap.Points, len(points))

	// Every accepted point is findable at its own synthetic location with
	// a tight radius, under its synthetic id.
	for _, pt := range envMap.Points {
		loc, err := p.syntheticLocation(pt)
		require.NoError(t, err)

		results, err := index.QueryRadius(ctx, loc, 0.1)
		require.NoError(t, err)
		require.NotEmpty(t, results)

		found := false
		for _, r := range results {
			if len(r.ID) > 6 && r.ID[:6] == "point_" {
				found = true
			}
		}
		assert.True(t, found)
	}
}

func TestProcessPointCloud_SyntheticIDsAreUnique(t *testing.T) {
	p, _ := newTestProcessor(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := p.ProcessPointCloud(ctx, []Point3{{X: 2, Y: 2, Z: 1}}, nil)
		require.NoError(t, err)
	}
	assert.Equal(t, uint64(3), p.PointsProcessed())
	assert.Equal(t, uint64(3), p.seq.Load())
}

func TestProcessPointCloud_PoseTransform(t *testing.T) {
	p, _ := newTestProcessor(t)
	ctx := context.Background()

	// The raw point sits below the minimum range; the translation moves
	// it inside.
	pose, err := NewPose([16]float64{
		1, 0, 0, 5,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
	require.NoError(t, err)

	envMap, err := p.ProcessPointCloud(ctx, []Point3{{X: 0.1, Y: 0, Z: 0}}, pose)
	require.NoError(t, err)
	require.Len(t, envMap.Points, 1)
	assert.InDelta(t, 5.1, envMap.Points[0].X, 1e-9)
}

func TestProcessPointCloud_CancelledContext(t *testing.T) {
	p, index := newTestProcessor(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.ProcessPointCloud(ctx, []Point3{{X: 1, Y: 1, Z: 1}}, nil)
	assert.ErrorIs(t, err, context.Canceled)

	size, serr := index.Size(context.Background())
	require.NoError(t, serr)
	assert.Equal(t, 0, size)
}

func TestProcessPointCloud_DeadlineExceeded(t *testing.T) {
	p, _ := newTestProcessor(t, WithBatchSize(64))

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Millisecond))
	defer cancel()

	points := make([]Point3, 1000)
	for i := range points {
		points[i] = Point3{X: 2, Y: 2, Z: 1}
	}

	_, err := p.ProcessPointCloud(ctx, points, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestQueryEnvironment(t *testing.T) {
	p, _ := newTestProcessor(t)
	ctx := context.Background()

	_, err := p.ProcessPointCloud(ctx, []Point3{{X: 1, Y: 2, Z: 0.5}}, nil)
	require.NoError(t, err)

	envMap, err := p.ProcessPointCloud(ctx, []Point3{{X: 2, Y: 1, Z: 0}}, nil)
	require.NoError(t, err)
	loc, err := p.syntheticLocation(envMap.Points[0])
	require.NoError(t, err)

	envCtx, err := p.QueryEnvironment(ctx, loc, 5)
	require.NoError(t, err)
	assert.Equal(t, 5.0, envCtx.RadiusMeters)
	assert.NotEmpty(t, envCtx.Points)
	assert.GreaterOrEqual(t, envCtx.QueryTimeMs, 0.0)
}

func TestQueryEnvironment_RadiusValidation(t *testing.T) {
	p, _ := newTestProcessor(t)
	ctx := context.Background()

	center, err := p.syntheticLocation(Point3{X: 2, Y: 2, Z: 1})
	require.NoError(t, err)

	var rangeErr *RangeError
	_, err = p.QueryEnvironment(ctx, center, 0.3)
	assert.ErrorAs(t, err, &rangeErr)
	_, err = p.QueryEnvironment(ctx, center, 50.5)
	assert.ErrorAs(t, err, &rangeErr)
}

func TestQueryEnvironment_CacheInvalidatedByIngest(t *testing.T) {
	p, _ := newTestProcessor(t)
	ctx := context.Background()

	_, err := p.ProcessPointCloud(ctx, []Point3{{X: 1, Y: 2, Z: 0.5}}, nil)
	require.NoError(t, err)

	center, err := p.syntheticLocation(Point3{X: 1, Y: 2, Z: 0.5})
	require.NoError(t, err)

	first, err := p.QueryEnvironment(ctx, center, 10)
	require.NoError(t, err)

	// A second frame lands close to the first point; the cached result
	// must not shadow it.
	_, err = p.ProcessPointCloud(ctx, []Point3{{X: 1.1, Y: 2, Z: 0.5}}, nil)
	require.NoError(t, err)

	second, err := p.QueryEnvironment(ctx, center, 10)
	require.NoError(t, err)
	assert.Greater(t, len(second.Points), len(first.Points))
}

func TestProcessorMetrics(t *testing.T) {
	p, _ := newTestProcessor(t)
	ctx := context.Background()

	_, err := p.ProcessPointCloud(ctx, []Point3{{X: 1, Y: 2, Z: 0.5}, {X: 2, Y: 1, Z: 1}}, nil)
	require.NoError(t, err)

	assert.Equal(t, uint64(2), p.PointsProcessed())
	assert.GreaterOrEqual(t, p.AvgProcessingTimeMs(), 0.0)
	assert.InDelta(t, MinConfidenceThreshold, p.ConfidenceMean(), 1e-9)
}
