package service

import (
	"context"

	"yelocar/internal/domain/entity"
)

// ConnectivityProbe asks the key-value store whether it is reachable.
type ConnectivityProbe interface {
	Probe(ctx context.Context) (bool, error)
}

// ConnectivityMonitor tracks the reachability of the key-value store.
type ConnectivityMonitor interface {
	// Online returns the last observed state.
	Online() bool

	// Check probes now and records the result.
	Check(ctx context.Context) bool

	// Subscribe calls fn on every state change until the disposer is called.
	Subscribe(fn func(online bool)) *entity.Disposer
}
