package models

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation_Validation(t *testing.T) {
	tests := []struct {
		name      string
		lat       float64
		lon       float64
		alt       float64
		accuracy  float64
		wantErr   bool
		wantField string
	}{
		{
			name: "valid - San Francisco", lat: 37.7749, lon: -122.4194, alt: 10.0, accuracy: 1.0,
		},
		{
			name: "valid - equator", lat: 0, lon: 0, alt: 0, accuracy: 0.5,
		},
		{
			name: "valid - extremes", lat: 90, lon: -180, alt: 10000, accuracy: 50,
		},
		{
			name: "valid - negative altitude", lat: -45, lon: 170, alt: -100, accuracy: 0.01,
		},
		{
			name: "latitude too high", lat: 91.0, lon: 0, alt: 0, accuracy: 1.0,
			wantErr: true, wantField: "latitude",
		},
		{
			name: "latitude too low", lat: -90.1, lon: 0, alt: 0, accuracy: 1.0,
			wantErr: true, wantField: "latitude",
		},
		{
			name: "longitude out of range", lat: 0, lon: 180.5, alt: 0, accuracy: 1.0,
			wantErr: true, wantField: "longitude",
		},
		{
			name: "altitude too high", lat: 0, lon: 0, alt: 10001, accuracy: 1.0,
			wantErr: true, wantField: "altitude",
		},
		{
			name: "altitude too low", lat: 0, lon: 0, alt: -101, accuracy: 1.0,
			wantErr: true, wantField: "altitude",
		},
		{
			name: "accuracy below floor", lat: 0, lon: 0, alt: 0, accuracy: 0.001,
			wantErr: true, wantField: "accuracy_meters",
		},
		{
			name: "accuracy above ceiling", lat: 0, lon: 0, alt: 0, accuracy: 51,
			wantErr: true, wantField: "accuracy_meters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := NewLocation(tt.lat, tt.lon, tt.alt, tt.accuracy)
			if tt.wantErr {
				require.Error(t, err)
				var fieldErr *FieldError
				require.True(t, errors.As(err, &fieldErr))
				assert.Equal(t, tt.wantField, fieldErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.lat, loc.Latitude)
			assert.Equal(t, tt.lon, loc.Longitude)
			assert.Equal(t, DefaultConfidence, loc.Confidence)
			assert.False(t, loc.CreatedAt.IsZero())
		})
	}
}

func TestNewLocationWithConfidence(t *testing.T) {
	loc, err := NewLocationWithConfidence(10, 20, 100, 2.0, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, loc.Confidence)

	_, err = NewLocationWithConfidence(10, 20, 100, 2.0, 1.5)
	require.Error(t, err)
	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "confidence_score", fieldErr.Field)
}

func TestLocation_Distance(t *testing.T) {
	sf, err := NewLocation(37.7749, -122.4194, 0, 1.0)
	require.NoError(t, err)

	// One degree of longitude apart at this latitude is roughly 87.9 km.
	west, err := NewLocation(37.7749, -123.4194, 0, 1.0)
	require.NoError(t, err)

	d, err := sf.Distance(west)
	require.NoError(t, err)
	assert.InDelta(t, 87890, d, 500)
}

func TestLocation_Distance_Symmetry(t *testing.T) {
	a, err := NewLocation(46.5, 14.2, 500, 1.0)
	require.NoError(t, err)
	b, err := NewLocation(46.5003, 14.2004, 520, 1.0)
	require.NoError(t, err)

	dab, err := a.Distance(b)
	require.NoError(t, err)
	dba, err := b.Distance(a)
	require.NoError(t, err)
	assert.InDelta(t, dab, dba, 1e-9)
}

func TestLocation_Distance_Self(t *testing.T) {
	loc, err := NewLocation(37.7749, -122.4194, 10, 1.0)
	require.NoError(t, err)

	d, err := loc.Distance(loc)
	assert.ErrorIs(t, err, ErrInsufficientResolution)
	assert.InDelta(t, 0, d, 0.01)
}

func TestLocation_Distance_AltitudeComposition(t *testing.T) {
	a, err := NewLocation(0, 0, 0, 1.0)
	require.NoError(t, err)
	b, err := NewLocation(0, 0, 30, 1.0)
	require.NoError(t, err)

	d, err := a.Distance(b)
	require.NoError(t, err)
	assert.InDelta(t, 30, d, 0.01)
}

func TestLocation_WithinRadius(t *testing.T) {
	a, err := NewLocationWithConfidence(0, 0, 0, 1.0, 1.0)
	require.NoError(t, err)

	// ~11 m north.
	b, err := NewLocation(0.0001, 0, 0, 1.0)
	require.NoError(t, err)

	within, err := a.WithinRadius(b, 20)
	require.NoError(t, err)
	assert.True(t, within)

	within, err = a.WithinRadius(b, 5)
	require.NoError(t, err)
	assert.False(t, within)
}

func TestLocation_WithinRadius_ConfidenceShrinksRadius(t *testing.T) {
	// Confidence 0.5 halves the effective radius: a point 11 m away is
	// inside a 20 m query only when confidence keeps the effective
	// radius above 11 m.
	a, err := NewLocationWithConfidence(0, 0, 0, 1.0, 0.5)
	require.NoError(t, err)
	b, err := NewLocation(0.0001, 0, 0, 1.0)
	require.NoError(t, err)

	within, err := a.WithinRadius(b, 20)
	require.NoError(t, err)
	assert.False(t, within)
}

func TestLocation_WithinRadius_InvalidRadius(t *testing.T) {
	a, err := NewLocation(0, 0, 0, 1.0)
	require.NoError(t, err)

	for _, radius := range []float64{0, -1, 50.1} {
		_, err := a.WithinRadius(a, radius)
		var radiusErr *RadiusError
		require.True(t, errors.As(err, &radiusErr), "radius %v", radius)
	}
}

func TestLocation_ToCartesian(t *testing.T) {
	loc, err := NewLocation(0, 0, 0, 1.0)
	require.NoError(t, err)

	x, y, z := loc.ToCartesian()
	assert.InDelta(t, EarthRadiusMeters, x, 1e-6)
	assert.InDelta(t, 0, y, 1e-6)
	assert.InDelta(t, 0, z, 1e-6)

	pole, err := NewLocation(90, 0, 100, 1.0)
	require.NoError(t, err)
	x, y, z = pole.ToCartesian()
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, 0, y, 1e-6)
	assert.InDelta(t, EarthRadiusMeters+100, z, 1e-6)
}

func TestHaversineDistance_SmallSeparation(t *testing.T) {
	// 0.00001 degrees of latitude is about 1.11 m; the half-angle form
	// must not lose it to cancellation.
	d := HaversineDistance(46.5, 14.2, 46.50001, 14.2)
	assert.InDelta(t, 1.11, d, 0.02)
	assert.False(t, math.IsNaN(d))
}
