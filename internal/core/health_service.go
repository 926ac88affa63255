package core

import (
	"context"
	"time"
)

// Pinger is satisfied by *db.Store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthService struct {
	pinger  Pinger
	timeout time.Duration
}

// NewHealthService creates a HealthService whose check fails when the ping
// does not complete within timeout.
func NewHealthService(pinger Pinger, timeout time.Duration) HealthService {
	return &healthService{pinger: pinger, timeout: timeout}
}

func (s *healthService) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.pinger.Ping(ctx)
}
