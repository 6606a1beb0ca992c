package grpc

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// Server bundles the gRPC server with its health service so both can be
// stopped together.
type Server struct {
	*grpc.Server
	health *health.Server
}

// NewServer registers the catalog, health and reflection services.
func NewServer(h *CatalogHandler, logger *logrus.Logger) *Server {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(recoverInterceptor(logger), loggingInterceptor(logger)))
	RegisterCatalogServiceServer(s, h)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(CatalogServiceName, healthpb.HealthCheckResponse_SERVING)

	// The catalog service is registered without a file descriptor, so
	// reflection can list it but not describe its methods.
	reflection.Register(s)
	logger.Infof("gRPC services registered: %s, health, reflection", CatalogServiceName)
	return &Server{Server: s, health: hs}
}

// GracefulStop marks every service NOT_SERVING before draining connections.
func (s *Server) GracefulStop() {
	s.health.Shutdown()
	s.Server.GracefulStop()
}

func (s *Server) Stop() {
	s.health.Shutdown()
	s.Server.Stop()
}

func loggingInterceptor(logger *logrus.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		entry := logger.WithFields(logrus.Fields{
			"method":     info.FullMethod,
			"code":       status.Code(err).String(),
			"latency_ms": time.Since(start).Milliseconds(),
		})
		if err != nil {
			entry.Warn("gRPC call completed with error")
		} else {
			entry.Debug("gRPC call completed")
		}
		return resp, err
	}
}

func recoverInterceptor(logger *logrus.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Errorf("gRPC Handler: panic in %s: %v", info.FullMethod, r)
				err = status.Error(codes.Internal, "Internal server error")
			}
		}()
		return handler(ctx, req)
	}
}
