package benchmarks

// Benchmarks for the spatial engine hot paths.
//
// Performance targets:
// - Location distance: < 200 ns/op, 0 allocs/op
// - SpatialIndex insert: < 20µs/op
// - SpatialIndex radius query (500 entries, 50m): < 100µs/op
// - ProcessPointCloud (10k points): < 100ms wall time
//
// Realistic data sizes: a 50m operating radius around the device, frames
// of up to 10k points at 30Hz, a few hundred tracked entities.

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/spatialtag/spatial-engine/internal/geo"
	"github.com/spatialtag/spatial-engine/internal/lidar"
	"github.com/spatialtag/spatial-engine/internal/models"
)

func benchLocation(b *testing.B, lat, lon, alt float64) models.Location {
	b.Helper()
	loc, err := models.NewLocation(lat, lon, alt, 1.0)
	if err != nil {
		b.Fatalf("location: %v", err)
	}
	return loc
}

// BenchmarkDistance benchmarks the haversine + altitude composition.
func BenchmarkDistance(b *testing.B) {
	a := benchLocation(b, 46.52, 6.57, 400)
	c := benchLocation(b, 46.5203, 6.5704, 420)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = a.Distance(c)
	}
}

// BenchmarkSpatialIndexInsert benchmarks incremental inserts.
func BenchmarkSpatialIndexInsert(b *testing.B) {
	ctx := context.Background()
	index := geo.NewSpatialIndex("bench", geo.FrameGeodetic)
	rng := rand.New(rand.NewSource(42))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		loc := benchLocation(b, rng.Float64()*0.0004, rng.Float64()*0.0004, 0)
		_ = index.Insert(ctx, geo.IndexedPoint{
			Location:   loc,
			ID:         fmt.Sprintf("p%d", i),
			Confidence: 1,
		})
	}
}

// BenchmarkSpatialIndexQuery benchmarks radius queries against a populated
// index.
func BenchmarkSpatialIndexQuery(b *testing.B) {
	ctx := context.Background()
	index := geo.NewSpatialIndex("bench", geo.FrameGeodetic)
	rng := rand.New(rand.NewSource(42))

	points := make([]geo.IndexedPoint, 0, 500)
	for i := 0; i < 500; i++ {
		points = append(points, geo.IndexedPoint{
			Location:   benchLocation(b, rng.Float64()*0.0004, rng.Float64()*0.0004, 0),
			ID:         fmt.Sprintf("p%d", i),
			Confidence: 1,
		})
	}
	if _, err := index.InsertBatch(ctx, points, 128); err != nil {
		b.Fatalf("insert: %v", err)
	}

	center := benchLocation(b, 0.0002, 0.0002, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := index.QueryRadius(ctx, center, 50); err != nil {
			b.Fatalf("query: %v", err)
		}
	}
}

// BenchmarkProcessPointCloud benchmarks frame ingestion at the latency
// contract's frame size.
func BenchmarkProcessPointCloud(b *testing.B) {
	ctx := context.Background()
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	rng := rand.New(rand.NewSource(42))
	frame := make([]lidar.Point3, 10000)
	for i := range frame {
		frame[i] = lidar.Point3{
			X: rng.Float64()*40 - 20,
			Y: rng.Float64()*40 - 20,
			Z: rng.Float64() * 5,
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		index := geo.NewSpatialIndex("bench-env", geo.FrameLocal)
		processor, err := lidar.NewProcessor(index, logger)
		if err != nil {
			b.Fatalf("processor: %v", err)
		}
		b.StartTimer()

		if _, err := processor.ProcessPointCloud(ctx, frame, nil); err != nil {
			b.Fatalf("process: %v", err)
		}
	}
}
