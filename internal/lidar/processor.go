// Package lidar turns raw point-cloud frames into environment-index entries
// and answers environment queries around a location.
package lidar

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/spatialtag/spatial-engine/internal/geo"
	"github.com/spatialtag/spatial-engine/internal/models"
)

const (
	// MinScanRangeMeters and MaxScanRangeMeters bound accepted point
	// magnitudes after the pose transform.
	MinScanRangeMeters = 0.5
	MaxScanRangeMeters = 50.0

	// MinConfidenceThreshold is the lowest confidence a processor may
	// attach to accepted environment points.
	MinConfidenceThreshold = 0.85

	// DefaultBatchSize is the number of points handled between suspension
	// points.
	DefaultBatchSize = 1024

	// MaxPointsPerScan caps a single frame.
	MaxPointsPerScan = 100000

	// confidenceRingSize bounds the ring of recent confidence samples.
	confidenceRingSize = 128

	// cacheCapacity and cacheTTL size the environment query cache.
	cacheCapacity = 256
	cacheTTL      = 5 * time.Second
)

// Point3 is a raw 3D sample in meters.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// Magnitude returns the distance from the sensor origin.
func (p Point3) Magnitude() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// ExcessiveCloudError reports a frame above MaxPointsPerScan.
type ExcessiveCloudError struct {
	Size int
}

func (e *ExcessiveCloudError) Error() string {
	return fmt.Sprintf("point cloud size %d exceeds limit %d", e.Size, MaxPointsPerScan)
}

// RangeError reports a scan range or environment-query radius outside
// [MinScanRangeMeters, MaxScanRangeMeters].
type RangeError struct {
	Value float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid scan range: %vm, expected between %vm and %vm",
		e.Value, MinScanRangeMeters, MaxScanRangeMeters)
}

// ConfidenceError reports a confidence threshold below the minimum.
type ConfidenceError struct {
	Value float64
}

func (e *ConfidenceError) Error() string {
	return fmt.Sprintf("invalid confidence threshold: %v, expected >= %v",
		e.Value, MinConfidenceThreshold)
}

// EnvironmentMap is the result of processing one frame: the accepted
// subset of points, the wall-clock duration, and the threshold in effect.
type EnvironmentMap struct {
	Points              []Point3
	ProcessingTimeMs    float64
	ConfidenceThreshold float64
	MapID               string
}

// EnvironmentContext is the result of an environment query.
type EnvironmentContext struct {
	Center       [3]float64
	RadiusMeters float64
	Points       []geo.IndexedPoint
	QueryTimeMs  float64
}

// processorMetrics keeps the processor's in-process counters: a monotonic
// points counter, a sliding mean of processing time, and a bounded ring of
// recent confidence samples.
type processorMetrics struct {
	pointsProcessed atomic.Uint64

	mu               sync.Mutex
	avgProcessingMs  float64
	confidenceRing   []float64
	confidenceCursor int
}

func (m *processorMetrics) record(points int, duration time.Duration, confidence float64) {
	m.pointsProcessed.Add(uint64(points))

	m.mu.Lock()
	defer m.mu.Unlock()

	ms := float64(duration.Microseconds()) / 1000.0
	if m.avgProcessingMs == 0 {
		m.avgProcessingMs = ms
	} else {
		m.avgProcessingMs = m.avgProcessingMs*0.9 + ms*0.1
	}

	if len(m.confidenceRing) < confidenceRingSize {
		m.confidenceRing = append(m.confidenceRing, confidence)
	} else {
		m.confidenceRing[m.confidenceCursor] = confidence
		m.confidenceCursor = (m.confidenceCursor + 1) % confidenceRingSize
	}
}

// Processor transforms, range-filters and indexes LiDAR frames.
type Processor struct {
	env   *geo.SpatialIndex
	cache *geo.QueryCache

	scanRange           float64
	minRange            float64
	confidenceThreshold float64
	pose                *Pose
	batchSize           int

	seq     atomic.Uint64
	metrics processorMetrics
	logger  *logrus.Entry
}

// ProcessorOption configures a Processor at construction.
type ProcessorOption func(*Processor)

// WithScanRange overrides the maximum accepted point magnitude.
func WithScanRange(rangeMeters float64) ProcessorOption {
	return func(p *Processor) { p.scanRange = rangeMeters }
}

// WithMinScanRange overrides the minimum accepted point magnitude.
func WithMinScanRange(rangeMeters float64) ProcessorOption {
	return func(p *Processor) { p.minRange = rangeMeters }
}

// WithConfidenceThreshold overrides the confidence attached to accepted
// points.
func WithConfidenceThreshold(threshold float64) ProcessorOption {
	return func(p *Processor) { p.confidenceThreshold = threshold }
}

// WithPose overrides the sensor pose transform.
func WithPose(pose *Pose) ProcessorOption {
	return func(p *Processor) { p.pose = pose }
}

// WithBatchSize overrides the batch size.
func WithBatchSize(size int) ProcessorOption {
	return func(p *Processor) {
		if size > 0 {
			p.batchSize = size
		}
	}
}

// NewProcessor creates a processor writing into the given environment
// index. The index is expected to operate in the local frame.
func NewProcessor(env *geo.SpatialIndex, logger *logrus.Logger, opts ...ProcessorOption) (*Processor, error) {
	p := &Processor{
		env:                 env,
		cache:               geo.NewQueryCache(cacheCapacity, cacheTTL),
		scanRange:           MaxScanRangeMeters,
		minRange:            MinScanRangeMeters,
		confidenceThreshold: MinConfidenceThreshold,
		pose:                IdentityPose(),
		batchSize:           DefaultBatchSize,
		logger:              logger.WithField("component", "lidar"),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.scanRange < MinScanRangeMeters || p.scanRange > MaxScanRangeMeters {
		return nil, &RangeError{Value: p.scanRange}
	}
	if p.minRange < MinScanRangeMeters || p.minRange >= p.scanRange {
		return nil, &RangeError{Value: p.minRange}
	}
	if p.confidenceThreshold < MinConfidenceThreshold || p.confidenceThreshold > 1 {
		return nil, &ConfidenceError{Value: p.confidenceThreshold}
	}

	return p, nil
}

// ProcessPointCloud transforms a frame with the given pose (nil selects the
// configured one), keeps the points whose magnitude lies within the scan
// range, and inserts them into the environment index under one write hold.
// The context is consulted at batch boundaries; on cancellation, batches
// already applied stay in the index.
func (p *Processor) ProcessPointCloud(ctx context.Context, points []Point3, pose *Pose) (*EnvironmentMap, error) {
	start := time.Now()

	if len(points) > MaxPointsPerScan {
		return nil, &ExcessiveCloudError{Size: len(points)}
	}
	if pose == nil {
		pose = p.pose
	}

	retained := make([]Point3, 0, len(points))
	for batchStart := 0; batchStart < len(points); batchStart += p.batchSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		batchEnd := batchStart + p.batchSize
		if batchEnd > len(points) {
			batchEnd = len(points)
		}

		batch := make([]Point3, batchEnd-batchStart)
		copy(batch, points[batchStart:batchEnd])
		pose.ApplyInPlace(batch)

		for _, pt := range batch {
			magnitude := pt.Magnitude()
			if magnitude >= p.minRange && magnitude <= p.scanRange {
				retained = append(retained, pt)
			}
		}
	}

	indexed := make([]geo.IndexedPoint, 0, len(retained))
	for _, pt := range retained {
		loc, err := p.syntheticLocation(pt)
		if err != nil {
			return nil, fmt.Errorf("synthetic location: %w", err)
		}
		indexed = append(indexed, geo.IndexedPoint{
			Location:   loc,
			ID:         fmt.Sprintf("point_%d", p.seq.Add(1)),
			Confidence: p.confidenceThreshold,
		})
	}

	inserted, err := p.env.InsertBatch(ctx, indexed, p.batchSize)
	if inserted > 0 {
		p.cache.Purge()
	}
	if err != nil {
		p.logger.WithFields(logrus.Fields{
			"inserted": inserted,
			"retained": len(retained),
		}).WithError(err).Warn("point cloud insert aborted")
		return nil, err
	}

	duration := time.Since(start)
	p.metrics.record(len(retained), duration, p.confidenceThreshold)

	p.logger.WithFields(logrus.Fields{
		"points":   len(points),
		"retained": len(retained),
		"duration": duration,
	}).Debug("point cloud processed")

	return &EnvironmentMap{
		Points:              retained,
		ProcessingTimeMs:    float64(duration.Microseconds()) / 1000.0,
		ConfidenceThreshold: p.confidenceThreshold,
		MapID:               uuid.New().String(),
	}, nil
}

// syntheticLocation derives a Location from the spherical coordinates of a
// transformed point: elevation degrees in Latitude, azimuth degrees in
// Longitude, range meters in Altitude. Azimuth spans the full ±180° so it
// cannot live in the latitude field.
func (p *Processor) syntheticLocation(pt Point3) (models.Location, error) {
	horizontal := math.Sqrt(pt.X*pt.X + pt.Y*pt.Y)
	elevation := math.Atan2(pt.Z, horizontal) * 180 / math.Pi
	azimuth := math.Atan2(pt.X, pt.Y) * 180 / math.Pi

	return models.NewLocationWithConfidence(elevation, azimuth, pt.Magnitude(), 1.0, p.confidenceThreshold)
}

// QueryEnvironment returns the indexed environment points within
// radiusMeters of center. Results are served from the query cache when a
// fresh entry exists; the cache is purged on every frame ingest.
func (p *Processor) QueryEnvironment(ctx context.Context, center models.Location, radiusMeters float64) (*EnvironmentContext, error) {
	start := time.Now()

	if radiusMeters < MinScanRangeMeters || radiusMeters > MaxScanRangeMeters {
		return nil, &RangeError{Value: radiusMeters}
	}

	key := p.cache.Key(center, radiusMeters)
	points, hit := p.cache.Get(key)
	if !hit {
		var err error
		points, err = p.env.QueryRadius(ctx, center, radiusMeters)
		if err != nil {
			return nil, err
		}
		p.cache.Set(key, points)
	}

	x, y, z := center.ToCartesian()
	return &EnvironmentContext{
		Center:       [3]float64{x, y, z},
		RadiusMeters: radiusMeters,
		Points:       points,
		QueryTimeMs:  float64(time.Since(start).Microseconds()) / 1000.0,
	}, nil
}

// PointsProcessed returns the monotonic count of accepted points.
func (p *Processor) PointsProcessed() uint64 {
	return p.metrics.pointsProcessed.Load()
}

// AvgProcessingTimeMs returns the sliding mean of frame processing time.
func (p *Processor) AvgProcessingTimeMs() float64 {
	p.metrics.mu.Lock()
	defer p.metrics.mu.Unlock()
	return p.metrics.avgProcessingMs
}

// ConfidenceMean returns the mean of the recent confidence samples, or 0
// when no frame has been processed yet.
func (p *Processor) ConfidenceMean() float64 {
	p.metrics.mu.Lock()
	defer p.metrics.mu.Unlock()

	if len(p.metrics.confidenceRing) == 0 {
		return 0
	}
	return stat.Mean(p.metrics.confidenceRing, nil)
}
