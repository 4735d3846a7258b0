package usecase

import (
	"context"

	"yelocar/internal/domain/entity"
)

// ConnectivityStatus reports the key-value store reachability.
type ConnectivityStatus struct {
	Online  bool
	Notices []entity.Notice
}

// ConnectivityUsecase exposes the connectivity monitor to clients.
type ConnectivityUsecase interface {
	// Check probes now.
	Check(ctx context.Context) *ConnectivityStatus

	// Watch calls fn with the current state and then on every change until
	// the disposer runs.
	Watch(fn func(online bool)) *entity.Disposer
}
