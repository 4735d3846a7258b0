// Package connectivity tracks whether the key-value store is reachable.
package connectivity

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"yelocar/config"
	"yelocar/internal/domain/entity"
	"yelocar/internal/domain/service"

	"go.uber.org/fx"
)

// Params defines the dependencies for the monitor
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Probe  service.ConnectivityProbe
}

type monitor struct {
	probe    service.ConnectivityProbe
	logger   *slog.Logger
	interval time.Duration
	timeout  time.Duration

	mu          sync.Mutex
	online      bool
	nextID      uint64
	subscribers map[uint64]func(bool)
}

// NewMonitor creates the monitor and registers its probe loop with the
// application lifecycle. The first probe runs during start-up.
func NewMonitor(params Params) service.ConnectivityMonitor {
	m := newMonitor(params.Probe, params.Logger, params.Config.Connectivity)

	loopCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			m.Check(ctx)
			go func() {
				defer close(done)
				m.run(loopCtx)
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-ctx.Done():
			}

			return nil
		},
	})

	return m
}

// newMonitor starts optimistic: online until a probe says otherwise.
func newMonitor(probe service.ConnectivityProbe, logger *slog.Logger, cfg config.ConnectivityConfig) *monitor {
	return &monitor{
		probe:       probe,
		logger:      logger,
		interval:    cfg.ProbeInterval,
		timeout:     cfg.ProbeTimeout,
		online:      true,
		subscribers: make(map[uint64]func(bool)),
	}
}

func (m *monitor) run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}

func (m *monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.online
}

func (m *monitor) Check(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	online, err := m.probe.Probe(probeCtx)
	if err != nil {
		online = false
		m.logger.Debug("Connectivity probe failed", slog.Any("error", err))
	}
	m.set(online)

	return online
}

func (m *monitor) set(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()

		return
	}
	m.online = online
	listeners := make([]func(bool), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		listeners = append(listeners, fn)
	}
	m.mu.Unlock()

	m.logger.Info("Key-value store connectivity changed", slog.Bool("online", online))
	for _, fn := range listeners {
		fn(online)
	}
}

func (m *monitor) Subscribe(fn func(online bool)) *entity.Disposer {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subscribers[id] = fn
	m.mu.Unlock()

	return entity.NewDisposer(func() {
		m.mu.Lock()
		delete(m.subscribers, id)
		m.mu.Unlock()
	})
}

func (m *monitor) subscriberCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.subscribers)
}
