package grpc

import (
	"context"
	"time"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// watchDatabase probes the database immediately and then every interval
// until ctx is done.
func (s *GRPCServer) watchDatabase(ctx context.Context) {
	s.probe(ctx)

	interval := s.interval
	if interval <= 0 {
		interval = 10 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.probe(ctx)
		}
	}
}

// probe pings the database and publishes the result. Transitions are logged.
func (s *GRPCServer) probe(ctx context.Context) {
	timeout := s.interval
	if timeout <= 0 || timeout > 5*time.Second {
		timeout = 5 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	next := healthpb.HealthCheckResponse_SERVING
	err := s.db.PingContext(pingCtx)
	if err != nil {
		next = healthpb.HealthCheckResponse_NOT_SERVING
	}

	prev, _ := s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	if prev == nil || prev.Status != next {
		if err != nil {
			s.logger.Warn(ctx, "database unavailable", "error", err)
		} else {
			s.logger.Info(ctx, "database available")
		}
	}

	s.health.SetServingStatus("", next)
	s.health.SetServingStatus(ServiceName, next)
}
