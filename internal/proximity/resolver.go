// Package proximity resolves discovery queries: entity radius search
// cross-filtered against the scanned environment, ranked by distance and
// confidence.
package proximity

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/spatialtag/spatial-engine/internal/geo"
	"github.com/spatialtag/spatial-engine/internal/lidar"
	"github.com/spatialtag/spatial-engine/internal/models"
)

const (
	// DefaultDiscoveryRadiusMeters applies when a request omits the radius.
	DefaultDiscoveryRadiusMeters = 50.0

	// MinInteractionDistanceMeters is the floor below which interactions
	// are rejected outright.
	MinInteractionDistanceMeters = 0.5

	// MaxResultsPerQuery caps a discovery result.
	MaxResultsPerQuery = 100

	// MinConfidenceScore is the candidate confidence floor.
	MinConfidenceScore = 0.7
)

// Kind selects the entity index a discovery query runs against.
type Kind int

const (
	KindUser Kind = iota
	KindTag
)

func (k Kind) String() string {
	if k == KindTag {
		return "tag"
	}
	return "user"
}

// DiscoveryResult is a ranked candidate list. Partial marks a result whose
// environment visibility filter could not run.
type DiscoveryResult struct {
	Candidates []geo.IndexedPoint
	Partial    bool
}

// Resolver owns the two entity index handles and the processor handle. The
// dependency shape is one-way: the resolver consults the processor, never
// the reverse.
type Resolver struct {
	users     *geo.SpatialIndex
	tags      *geo.SpatialIndex
	processor *lidar.Processor
	logger    *logrus.Entry
}

// NewResolver creates a resolver over the given indexes and processor.
func NewResolver(users, tags *geo.SpatialIndex, processor *lidar.Processor, logger *logrus.Logger) *Resolver {
	return &Resolver{
		users:     users,
		tags:      tags,
		processor: processor,
		logger:    logger.WithField("component", "proximity"),
	}
}

// DiscoverNearby returns the entities of the given kind within radiusMeters
// of center, ranked ascending by distance with ties broken by descending
// confidence, capped at MaxResultsPerQuery. A radius of 0 selects the
// default. An environment-query failure degrades to an unfiltered result
// with Partial set, unless the caller's context is done, in which case the
// context error is returned; an entity-index failure is returned wrapped
// with the index kind.
func (r *Resolver) DiscoverNearby(ctx context.Context, kind Kind, center models.Location, radiusMeters float64) (*DiscoveryResult, error) {
	if radiusMeters == 0 {
		radiusMeters = DefaultDiscoveryRadiusMeters
	}
	if radiusMeters < MinInteractionDistanceMeters || radiusMeters > DefaultDiscoveryRadiusMeters {
		return nil, &models.RadiusError{Value: radiusMeters}
	}

	// The environment read hold is released inside QueryEnvironment before
	// the entity index hold below is taken; no operation ever holds two
	// index guards at once.
	//
	// Partial marks visibility as unknown: either the environment query
	// failed, or it found no scanned points within the radius (as when
	// nothing has been scanned yet). Both skip the filter.
	result := &DiscoveryResult{}
	env, err := r.processor.QueryEnvironment(ctx, center, radiusMeters)
	switch {
	case err != nil:
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		r.logger.WithError(err).Warn("environment query failed, visibility unknown")
		result.Partial = true
	case len(env.Points) == 0:
		result.Partial = true
	}

	index := r.users
	if kind == KindTag {
		index = r.tags
	}

	candidates, err := index.QueryRadius(ctx, center, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("%s index query: %w", kind, err)
	}

	filtered := candidates[:0]
	for _, c := range candidates {
		if c.Confidence < MinConfidenceScore {
			continue
		}
		if !result.Partial && !visible(c, env.Points, radiusMeters) {
			continue
		}
		filtered = append(filtered, c)
	}

	rank(filtered, center)
	if len(filtered) > MaxResultsPerQuery {
		filtered = filtered[:MaxResultsPerQuery]
	}

	result.Candidates = filtered
	return result, nil
}

// visible reports whether the candidate lies within radiusMeters of some
// environment point, i.e. in a region the device has recently scanned.
func visible(c geo.IndexedPoint, env []geo.IndexedPoint, radiusMeters float64) bool {
	for _, e := range env {
		d, err := c.Location.Distance(e.Location)
		if err != nil && !errors.Is(err, models.ErrInsufficientResolution) {
			continue
		}
		if d <= radiusMeters {
			return true
		}
	}
	return false
}

// rank sorts candidates ascending by distance from center, breaking ties by
// descending confidence.
func rank(candidates []geo.IndexedPoint, center models.Location) {
	type ranked struct {
		point    geo.IndexedPoint
		distance float64
	}

	rs := make([]ranked, len(candidates))
	for i, c := range candidates {
		d, err := center.Distance(c.Location)
		if err != nil && !errors.Is(err, models.ErrInsufficientResolution) {
			d = math.MaxFloat64
		}
		rs[i] = ranked{point: c, distance: d}
	}

	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].distance != rs[j].distance {
			return rs[i].distance < rs[j].distance
		}
		return rs[i].point.Confidence > rs[j].point.Confidence
	})

	for i := range rs {
		candidates[i] = rs[i].point
	}
}

// CheckInteractionPossible reports whether two locations can interact and
// at what confidence. Pairs closer than the interaction floor are rejected;
// otherwise the confidence is the best environment confidence among points
// seen by both sides.
func (r *Resolver) CheckInteractionPossible(ctx context.Context, a, b models.Location) (bool, float64, error) {
	distance, err := a.Distance(b)
	if err != nil && !errors.Is(err, models.ErrInsufficientResolution) {
		return false, 0, err
	}
	if distance < MinInteractionDistanceMeters {
		return false, 0, nil
	}

	env, err := r.processor.QueryEnvironment(ctx, a, distance)
	if err != nil {
		return false, 0, fmt.Errorf("environment query: %w", err)
	}

	confidence := 0.0
	for _, e := range env.Points {
		da, errA := a.Distance(e.Location)
		if errA != nil && !errors.Is(errA, models.ErrInsufficientResolution) {
			continue
		}
		db, errB := b.Distance(e.Location)
		if errB != nil && !errors.Is(errB, models.ErrInsufficientResolution) {
			continue
		}
		if da <= distance && db <= distance && e.Confidence > confidence {
			confidence = e.Confidence
		}
	}

	return confidence >= MinConfidenceScore, confidence, nil
}
