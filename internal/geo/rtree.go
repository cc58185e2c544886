// Package geo provides the concurrent 3D spatial index backing the engine.
// Entries are keyed by the Cartesian projection of their Location and stored
// in an R-tree; a reader/writer guard with bounded acquisition serializes
// mutation against concurrent radius queries.
package geo

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/dhconnelly/rtreego"

	"github.com/spatialtag/spatial-engine/internal/models"
)

const (
	// DefaultNodeCapacity is the R-tree node capacity.
	DefaultNodeCapacity = 16

	// MaxPointsPerQuery caps the candidate set of a single radius query.
	// A query that would exceed it is aborted, not truncated.
	MaxPointsPerQuery = 1000

	// MinRangeMeters and MaxRangeMeters bound point magnitudes accepted by
	// a local-frame index.
	MinRangeMeters = 0.5
	MaxRangeMeters = 50.0

	// DefaultWriteTimeout bounds exclusive-hold acquisition for inserts.
	DefaultWriteTimeout = 100 * time.Millisecond
	// DefaultReadTimeout bounds shared-hold acquisition for queries.
	DefaultReadTimeout = 5 * time.Second

	dimensions = 3

	// envelopeTolerance is the half-extent of the degenerate AABB wrapped
	// around each point for R-tree storage.
	envelopeTolerance = 0.01
)

// ErrQueryLimit reports a radius query whose candidate set exceeded
// MaxPointsPerQuery. Callers must narrow the radius.
var ErrQueryLimit = errors.New("query result limit exceeded")

// PointError reports a point rejected by index validation.
type PointError struct {
	Message string
}

func (e *PointError) Error() string {
	return fmt.Sprintf("point validation: %s", e.Message)
}

// Frame selects the coordinate frame an index operates in.
type Frame int

const (
	// FrameGeodetic keys entries by the Earth-radius spherical projection
	// of their Location. Used for user and tag indexes.
	FrameGeodetic Frame = iota

	// FrameLocal keys entries by device-local Cartesian meters recovered
	// from the Location's spherical fields (elevation, azimuth, range).
	// Used for the environment index fed by the LiDAR processor.
	FrameLocal
)

// IndexedPoint is one entry of a SpatialIndex. Entries are yielded to
// callers by copy and never mutated in place.
type IndexedPoint struct {
	Location   models.Location
	ID         string
	Confidence float64
}

// entry wraps an IndexedPoint with its precomputed envelope for rtreego.
type entry struct {
	point IndexedPoint
	key   [3]float64
	rect  *rtreego.Rect
}

func (e *entry) Bounds() *rtreego.Rect {
	return e.rect
}

// Metrics tracks per-index operation counts and an exponential moving
// average of query time.
type Metrics struct {
	mu             sync.Mutex
	InsertCount    uint64
	QueryCount     uint64
	RebuildCount   uint64
	AvgQueryTimeMs float64
}

func (m *Metrics) recordQuery(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.QueryCount++
	ms := float64(duration.Microseconds()) / 1000.0
	if m.AvgQueryTimeMs == 0 {
		m.AvgQueryTimeMs = ms
	} else {
		m.AvgQueryTimeMs = m.AvgQueryTimeMs*0.9 + ms*0.1
	}
}

// OptimizationStats reports the outcome of a bulk rebuild.
type OptimizationStats struct {
	InitialCount int
	FinalCount   int
	Duration     time.Duration
}

// SpatialIndex is a concurrent 3D R-tree over IndexedPoints. All mutation
// and traversal goes through the internal guard; a query observes a
// consistent snapshot between hold acquisition and release.
type SpatialIndex struct {
	name  string
	frame Frame

	guard        *rwGuard
	tree         *rtreego.Rtree
	entries      map[string]*entry
	nodeCapacity int

	writeTimeout time.Duration
	readTimeout  time.Duration

	metrics Metrics
}

// Option configures a SpatialIndex at construction.
type Option func(*SpatialIndex)

// WithNodeCapacity overrides the R-tree node capacity.
func WithNodeCapacity(capacity int) Option {
	return func(si *SpatialIndex) {
		if capacity > 1 {
			si.nodeCapacity = capacity
		}
	}
}

// WithTimeouts overrides the hold-acquisition bounds.
func WithTimeouts(write, read time.Duration) Option {
	return func(si *SpatialIndex) {
		si.writeTimeout = write
		si.readTimeout = read
	}
}

// NewSpatialIndex creates an empty index operating in the given frame.
// The name labels metrics and log lines.
func NewSpatialIndex(name string, frame Frame, opts ...Option) *SpatialIndex {
	si := &SpatialIndex{
		name:         name,
		frame:        frame,
		guard:        newRWGuard(),
		entries:      make(map[string]*entry),
		nodeCapacity: DefaultNodeCapacity,
		writeTimeout: DefaultWriteTimeout,
		readTimeout:  DefaultReadTimeout,
	}
	for _, opt := range opts {
		opt(si)
	}
	si.tree = si.newTree(nil)
	return si
}

func (si *SpatialIndex) newTree(objs []rtreego.Spatial) *rtreego.Rtree {
	minChildren := si.nodeCapacity / 2
	if minChildren < 2 {
		minChildren = 2
	}
	return rtreego.NewTree(dimensions, minChildren, si.nodeCapacity, objs...)
}

// Name returns the index label.
func (si *SpatialIndex) Name() string { return si.name }

// projection returns the Cartesian key of a Location in the index frame.
func (si *SpatialIndex) projection(loc models.Location) [3]float64 {
	if si.frame == FrameLocal {
		x, y, z := localCartesian(loc)
		return [3]float64{x, y, z}
	}
	x, y, z := loc.ToCartesian()
	return [3]float64{x, y, z}
}

// localCartesian recovers the device-local point from a synthetic Location
// produced by the LiDAR processor: Latitude holds elevation degrees,
// Longitude azimuth degrees, Altitude the range in meters.
func localCartesian(loc models.Location) (x, y, z float64) {
	elev := loc.Latitude * math.Pi / 180
	azimuth := loc.Longitude * math.Pi / 180
	r := loc.Altitude

	horizontal := r * math.Cos(elev)
	x = horizontal * math.Sin(azimuth)
	y = horizontal * math.Cos(azimuth)
	z = r * math.Sin(elev)
	return x, y, z
}

func (si *SpatialIndex) makeEntry(p IndexedPoint) (*entry, error) {
	key := si.projection(p.Location)

	if si.frame == FrameLocal {
		magnitude := math.Sqrt(key[0]*key[0] + key[1]*key[1] + key[2]*key[2])
		if magnitude < MinRangeMeters || magnitude > MaxRangeMeters {
			return nil, &PointError{
				Message: fmt.Sprintf("point magnitude %.3fm outside range [%v, %v]",
					magnitude, MinRangeMeters, MaxRangeMeters),
			}
		}
	}

	rect := rtreego.Point{key[0], key[1], key[2]}.ToRect(envelopeTolerance)
	return &entry{point: p, key: key, rect: rect}, nil
}

// Insert validates and adds a single point. The exclusive hold is acquired
// within the configured write bound; invalid points are rejected before any
// mutation.
func (si *SpatialIndex) Insert(ctx context.Context, p IndexedPoint) error {
	e, err := si.makeEntry(p)
	if err != nil {
		return err
	}

	if err := si.guard.Lock(ctx, si.writeTimeout); err != nil {
		return err
	}
	defer si.guard.Unlock()

	si.insertLocked(e)
	return nil
}

func (si *SpatialIndex) insertLocked(e *entry) {
	if old, ok := si.entries[e.point.ID]; ok {
		si.tree.Delete(old)
	}
	si.tree.Insert(e)
	si.entries[e.point.ID] = e

	si.metrics.mu.Lock()
	si.metrics.InsertCount++
	si.metrics.mu.Unlock()
}

// InsertBatch adds points under a single exclusive hold, in point order
// within each chunk of chunkSize and chunk after chunk. The context is
// consulted between chunks; on cancellation the chunks already applied are
// kept and the context error is returned. Points failing validation reject
// the whole batch before any mutation.
func (si *SpatialIndex) InsertBatch(ctx context.Context, points []IndexedPoint, chunkSize int) (int, error) {
	if chunkSize <= 0 {
		chunkSize = len(points)
	}

	prepared := make([]*entry, 0, len(points))
	for _, p := range points {
		e, err := si.makeEntry(p)
		if err != nil {
			return 0, err
		}
		prepared = append(prepared, e)
	}

	if err := si.guard.Lock(ctx, si.writeTimeout); err != nil {
		return 0, err
	}
	defer si.guard.Unlock()

	inserted := 0
	for start := 0; start < len(prepared); start += chunkSize {
		if err := ctx.Err(); err != nil {
			return inserted, err
		}
		end := start + chunkSize
		if end > len(prepared) {
			end = len(prepared)
		}
		for _, e := range prepared[start:end] {
			si.insertLocked(e)
		}
		inserted = end
	}
	return inserted, nil
}

// QueryRadius returns every entry within radiusMeters of center, unordered.
// Envelope centers are prefiltered by squared Cartesian distance, then each
// candidate is rechecked with the index frame's distance function: Location
// distance (haversine + altitude) in the geodetic frame, Euclidean meters
// in the local frame. Result confidence attenuates linearly with distance.
// Exceeding MaxPointsPerQuery aborts the query with ErrQueryLimit.
func (si *SpatialIndex) QueryRadius(ctx context.Context, center models.Location, radiusMeters float64) ([]IndexedPoint, error) {
	if radiusMeters <= 0 || radiusMeters > models.MaxRadiusMeters {
		return nil, &models.RadiusError{Value: radiusMeters}
	}

	start := time.Now()
	defer func() {
		si.metrics.recordQuery(time.Since(start))
	}()

	if err := si.guard.RLock(ctx, si.readTimeout); err != nil {
		return nil, err
	}
	defer si.guard.RUnlock()

	key := si.projection(center)
	bounds, err := rtreego.NewRect(
		rtreego.Point{key[0] - radiusMeters, key[1] - radiusMeters, key[2] - radiusMeters},
		[]float64{2 * radiusMeters, 2 * radiusMeters, 2 * radiusMeters},
	)
	if err != nil {
		return nil, &PointError{Message: fmt.Sprintf("query bounds: %v", err)}
	}

	radiusSq := radiusMeters * radiusMeters
	results := make([]IndexedPoint, 0, 32)
	for _, spatial := range si.tree.SearchIntersect(bounds) {
		e := spatial.(*entry)

		dx := e.key[0] - key[0]
		dy := e.key[1] - key[1]
		dz := e.key[2] - key[2]
		if dx*dx+dy*dy+dz*dz > radiusSq {
			continue
		}

		if len(results) >= MaxPointsPerQuery {
			return nil, fmt.Errorf("%w: more than %d candidates within %.1fm",
				ErrQueryLimit, MaxPointsPerQuery, radiusMeters)
		}

		var distance float64
		if si.frame == FrameLocal {
			distance = math.Sqrt(dx*dx + dy*dy + dz*dz)
		} else {
			var derr error
			distance, derr = e.point.Location.Distance(center)
			if derr != nil && !errors.Is(derr, models.ErrInsufficientResolution) {
				continue
			}
		}
		if distance > radiusMeters {
			continue
		}

		confidence := 1 - distance/radiusMeters
		if confidence < 0 {
			confidence = 0
		}
		results = append(results, IndexedPoint{
			Location:   e.point.Location,
			ID:         e.point.ID,
			Confidence: confidence,
		})
	}

	return results, nil
}

// BulkRebuild replaces the tree with a bulk-loaded copy of the current
// entries, restoring balance after many incremental inserts. The entry
// multiset is preserved.
func (si *SpatialIndex) BulkRebuild(ctx context.Context) (OptimizationStats, error) {
	start := time.Now()

	if err := si.guard.Lock(ctx, si.readTimeout); err != nil {
		return OptimizationStats{}, err
	}
	defer si.guard.Unlock()

	initial := len(si.entries)
	objs := make([]rtreego.Spatial, 0, initial)
	for _, e := range si.entries {
		objs = append(objs, e)
	}
	si.tree = si.newTree(objs)

	si.metrics.mu.Lock()
	si.metrics.RebuildCount++
	si.metrics.mu.Unlock()

	return OptimizationStats{
		InitialCount: initial,
		FinalCount:   si.tree.Size(),
		Duration:     time.Since(start),
	}, nil
}

// Size returns the number of entries.
func (si *SpatialIndex) Size(ctx context.Context) (int, error) {
	if err := si.guard.RLock(ctx, si.readTimeout); err != nil {
		return 0, err
	}
	defer si.guard.RUnlock()
	return len(si.entries), nil
}

// Stats returns a copy of the index metrics.
func (si *SpatialIndex) Stats() Metrics {
	si.metrics.mu.Lock()
	defer si.metrics.mu.Unlock()
	return Metrics{
		InsertCount:    si.metrics.InsertCount,
		QueryCount:     si.metrics.QueryCount,
		RebuildCount:   si.metrics.RebuildCount,
		AvgQueryTimeMs: si.metrics.AvgQueryTimeMs,
	}
}
