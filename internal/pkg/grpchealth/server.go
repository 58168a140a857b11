// Package grpchealth поднимает стандартный grpc.health.v1 сервис для проб оркестратора.
package grpchealth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"foodorder/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
)

const (
	checkInterval = 5 * time.Second

	keepaliveMinTime = 1 * time.Minute
)

// Checker возвращает true, пока компонент способен обслуживать работу.
type Checker func() bool

type Server struct {
	log     logger.Logger
	grpc    *grpc.Server
	health  *health.Server
	service string
	checker Checker
}

func New(log logger.Logger, service string, checker Checker) *Server {
	grpcServer := grpc.NewServer(
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime: keepaliveMinTime,
		}),
	)
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	return &Server{
		log:     log.With(logger.NewField("component", "grpc-health"), logger.NewField("service", service)),
		grpc:    grpcServer,
		health:  healthServer,
		service: service,
		checker: checker,
	}
}

// Serve блокируется до отмены ctx или ошибки listener'а.
func (s *Server) Serve(ctx context.Context, port string) error {
	var lc net.ListenConfig
	lis, err := lc.Listen(ctx, "tcp", net.JoinHostPort("", port))
	if err != nil {
		return fmt.Errorf("grpc health listen: %w", err)
	}

	s.update()
	go s.watch(ctx)

	s.log.Info("grpc health server starting", logger.NewField("port", port))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpc.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		return nil
	case err := <-serveErr:
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("grpc health serve: %w", err)
	}
}

// Shutdown переводит статус в NOT_SERVING, чтобы проба упала до остановки сервера.
func (s *Server) Shutdown() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}

func (s *Server) watch(ctx context.Context) {
	ticker := time.NewTicker(checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.update()
		}
	}
}

func (s *Server) update() {
	status := healthpb.HealthCheckResponse_SERVING
	if s.checker != nil && !s.checker() {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(s.service, status)
}
