package handler

import (
	"github.com/spatialtag/spatial-engine/internal/geo"
	"github.com/spatialtag/spatial-engine/internal/lidar"
	"github.com/spatialtag/spatial-engine/internal/models"
	"github.com/spatialtag/spatial-engine/internal/proximity"
	"github.com/spatialtag/spatial-engine/pkg/pb"
)

// Converters between wire messages and internal types.

func locationFromProto(p *pb.Location) (models.Location, error) {
	if p == nil {
		return models.Location{}, &models.FieldError{Field: "location", Message: "location is required"}
	}
	confidence := p.ConfidenceScore
	if confidence == 0 {
		confidence = models.DefaultConfidence
	}
	return models.NewLocationWithConfidence(p.Latitude, p.Longitude, p.Altitude, p.AccuracyMeters, confidence)
}

func locationToProto(loc models.Location) *pb.Location {
	return &pb.Location{
		Latitude:        loc.Latitude,
		Longitude:       loc.Longitude,
		Altitude:        loc.Altitude,
		AccuracyMeters:  loc.AccuracyMeters,
		ConfidenceScore: loc.Confidence,
	}
}

func pointsFromProto(points []*pb.SpatialPoint) []lidar.Point3 {
	result := make([]lidar.Point3, 0, len(points))
	for _, p := range points {
		if p == nil {
			continue
		}
		result = append(result, lidar.Point3{X: p.X, Y: p.Y, Z: p.Z})
	}
	return result
}

func pointsToProto(points []lidar.Point3) []*pb.SpatialPoint {
	result := make([]*pb.SpatialPoint, len(points))
	for i, p := range points {
		result[i] = &pb.SpatialPoint{X: p.X, Y: p.Y, Z: p.Z}
	}
	return result
}

func poseFromProto(values []float64) (*lidar.Pose, error) {
	if len(values) == 0 {
		return nil, nil
	}
	if len(values) != 16 {
		return nil, &lidar.PoseError{Message: "pose must hold 16 row-major values"}
	}
	var m [16]float64
	copy(m[:], values)
	return lidar.NewPose(m)
}

func kindFromProto(kind pb.EntityKind) proximity.Kind {
	if kind == pb.EntityKind_ENTITY_KIND_TAG {
		return proximity.KindTag
	}
	return proximity.KindUser
}

func candidatesToProto(candidates []geo.IndexedPoint) []*pb.Candidate {
	result := make([]*pb.Candidate, len(candidates))
	for i, c := range candidates {
		result[i] = &pb.Candidate{
			Location:   locationToProto(c.Location),
			Id:         c.ID,
			Confidence: c.Confidence,
		}
	}
	return result
}

func environmentMapToProto(m *lidar.EnvironmentMap) *pb.EnvironmentMap {
	return &pb.EnvironmentMap{
		Points:              pointsToProto(m.Points),
		ProcessingTimeMs:    m.ProcessingTimeMs,
		ConfidenceThreshold: m.ConfidenceThreshold,
		MapId:               m.MapID,
	}
}
