// Package handler exposes the engine over gRPC and serves the monitoring
// HTTP endpoints.
package handler

import (
	"context"
	"errors"
	"io"
	"net"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/spatialtag/spatial-engine/internal/config"
	"github.com/spatialtag/spatial-engine/internal/engine"
	"github.com/spatialtag/spatial-engine/internal/geo"
	"github.com/spatialtag/spatial-engine/internal/lidar"
	"github.com/spatialtag/spatial-engine/internal/metrics"
	"github.com/spatialtag/spatial-engine/internal/models"
	"github.com/spatialtag/spatial-engine/pkg/pb"
)

// Server implements the SpatialService gRPC surface on top of the engine
// facade.
type Server struct {
	pb.UnimplementedSpatialServiceServer

	engine  *engine.Engine
	cfg     *config.Config
	limiter *rate.Limiter
	grpcSrv *grpc.Server
	logger  *logrus.Entry
}

// NewServer creates the gRPC server. The rate limiter implements the
// transport gate; the engine enforces its own health gates underneath.
func NewServer(cfg *config.Config, eng *engine.Engine, logger *logrus.Logger) *Server {
	perMinute := cfg.Server.RateLimitPerMinute
	s := &Server{
		engine:  eng,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
		logger:  logger.WithField("component", "grpc"),
	}

	s.grpcSrv = grpc.NewServer(
		grpc.ConnectionTimeout(10 * time.Second),
	)
	pb.RegisterSpatialServiceServer(s.grpcSrv, s)
	return s
}

// Serve blocks serving the listener until Stop is called.
func (s *Server) Serve(lis net.Listener) error {
	s.logger.WithField("addr", lis.Addr().String()).Info("gRPC server listening")
	return s.grpcSrv.Serve(lis)
}

// Stop gracefully stops the gRPC server, letting in-flight RPCs finish.
func (s *Server) Stop() {
	s.grpcSrv.GracefulStop()
}

// checkRate applies the transport rate limit.
func (s *Server) checkRate() error {
	if !s.limiter.Allow() {
		metrics.RateLimited.Inc()
		return status.Error(codes.ResourceExhausted, "rate limit exceeded")
	}
	return nil
}

// withDeadline imposes the transport deadline on an operation context.
func (s *Server) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.cfg.Server.RequestTimeout)
}

// mapError translates the engine error taxonomy onto gRPC status codes.
// The transport never invents richer semantics than the taxonomy carries.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok && status.Code(err) != codes.Unknown {
		return err
	}

	var fieldErr *models.FieldError
	var radiusErr *models.RadiusError
	var rangeErr *lidar.RangeError
	var confErr *lidar.ConfidenceError
	var cloudErr *lidar.ExcessiveCloudError
	var poseErr *lidar.PoseError
	var pointErr *geo.PointError

	switch {
	case errors.As(err, &fieldErr), errors.As(err, &radiusErr),
		errors.As(err, &rangeErr), errors.As(err, &confErr),
		errors.As(err, &cloudErr), errors.As(err, &poseErr),
		errors.As(err, &pointErr):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, geo.ErrQueryLimit):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, geo.ErrLockTimeout):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, engine.ErrBatteryCritical), errors.Is(err, engine.ErrShuttingDown):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// ProcessScan ingests one LiDAR frame. The scan deadline comes from
// max_processing_time_ms; the processor aborts at the next batch boundary
// when it elapses.
func (s *Server) ProcessScan(ctx context.Context, req *pb.ScanFrame) (*pb.EnvironmentMap, error) {
	if err := s.checkRate(); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Scan.MaxProcessingTimeMs)*time.Millisecond)
	defer cancel()

	pose, err := poseFromProto(req.Pose)
	if err != nil {
		return nil, mapError(err)
	}

	envMap, err := s.engine.ProcessScan(ctx, pointsFromProto(req.Points), pose)
	if err != nil {
		return nil, mapError(err)
	}
	return environmentMapToProto(envMap), nil
}

// DiscoverNearby resolves a proximity query.
func (s *Server) DiscoverNearby(ctx context.Context, req *pb.ProximityRequest) (*pb.ProximityResponse, error) {
	if err := s.checkRate(); err != nil {
		return nil, err
	}
	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	return s.discover(ctx, req)
}

// discover runs one proximity request; shared by the unary and streaming
// entry points. include_environment is accepted for wire compatibility;
// the visibility filter always runs and degrades on its own terms.
func (s *Server) discover(ctx context.Context, req *pb.ProximityRequest) (*pb.ProximityResponse, error) {
	start := time.Now()

	center, err := locationFromProto(req.Location)
	if err != nil {
		return nil, mapError(err)
	}

	result, err := s.engine.DiscoverNearby(ctx, kindFromProto(req.Kind), center, req.RadiusMeters)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.ProximityResponse{
		Candidates:       candidatesToProto(result.Candidates),
		ProcessingTimeMs: float64(time.Since(start).Microseconds()) / 1000.0,
		Partial:          result.Partial,
	}, nil
}

// StreamProximity answers a stream of proximity requests with one response
// per request, preserving request order. Responses go through a bounded
// channel; when the client reads slowly the channel fills and the handler
// pauses the upstream read instead of dropping.
func (s *Server) StreamProximity(stream pb.SpatialService_StreamProximityServer) error {
	metrics.ActiveStreams.Inc()
	defer metrics.ActiveStreams.Dec()

	ctx := stream.Context()
	responses := make(chan *pb.ProximityResponse, s.cfg.Server.StreamBuffer)
	sendErr := make(chan error, 1)

	go func() {
		defer close(sendErr)
		for resp := range responses {
			if err := stream.Send(resp); err != nil {
				sendErr <- err
				return
			}
		}
	}()

	var loopErr error
	for {
		req, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			loopErr = err
			break
		}

		if err := s.checkRate(); err != nil {
			loopErr = err
			break
		}

		reqCtx, cancel := s.withDeadline(ctx)
		resp, err := s.discover(reqCtx, req)
		cancel()
		if err != nil {
			loopErr = err
			break
		}

		select {
		case responses <- resp:
		case err := <-sendErr:
			loopErr = err
		case <-ctx.Done():
			loopErr = ctx.Err()
		}
		if loopErr != nil {
			break
		}
	}

	close(responses)
	if err, ok := <-sendErr; ok && loopErr == nil {
		loopErr = err
	}
	return mapError(loopErr)
}

// UpdateLocation registers or refreshes an entity location.
func (s *Server) UpdateLocation(ctx context.Context, req *pb.UpdateLocationRequest) (*pb.UpdateLocationResponse, error) {
	if err := s.checkRate(); err != nil {
		return nil, err
	}
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	loc, err := locationFromProto(req.Location)
	if err != nil {
		return nil, mapError(err)
	}

	if req.Kind == pb.EntityKind_ENTITY_KIND_TAG {
		err = s.engine.RegisterTag(ctx, req.Id, loc)
	} else {
		err = s.engine.RegisterUser(ctx, req.Id, loc)
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.UpdateLocationResponse{}, nil
}

// Health reports engine health. It bypasses the rate limiter and the
// facade gates so it stays reachable in every state.
func (s *Server) Health(ctx context.Context, req *pb.HealthRequest) (*pb.HealthResponse, error) {
	h := s.engine.Health()
	return &pb.HealthResponse{
		Healthy:       h.Healthy,
		Status:        h.Status,
		UptimeSeconds: h.UptimeSeconds,
	}, nil
}
