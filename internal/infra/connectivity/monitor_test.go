package connectivity

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"yelocar/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type stubProbe struct {
	online bool
	err    error
}

func (p *stubProbe) Probe(context.Context) (bool, error) {
	return p.online, p.err
}

func newTestMonitor(probe *stubProbe) *monitor {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return newMonitor(probe, logger, config.ConnectivityConfig{ProbeInterval: time.Hour, ProbeTimeout: time.Second})
}

func TestMonitor_CheckRecordsState(t *testing.T) {
	probe := &stubProbe{online: true}
	m := newTestMonitor(probe)

	assert.True(t, m.Check(context.Background()))
	assert.True(t, m.Online())

	probe.online, probe.err = false, errors.New("unreachable")
	assert.False(t, m.Check(context.Background()))
	assert.False(t, m.Online())
}

func TestMonitor_ProbeErrorMeansOffline(t *testing.T) {
	m := newTestMonitor(&stubProbe{online: true, err: errors.New("timeout")})

	assert.False(t, m.Check(context.Background()))
}

func TestMonitor_SubscribersSeeChangesOnly(t *testing.T) {
	probe := &stubProbe{online: true}
	m := newTestMonitor(probe)

	var seen []bool
	d := m.Subscribe(func(online bool) { seen = append(seen, online) })

	m.Check(context.Background()) // unchanged
	probe.online = false
	m.Check(context.Background())
	m.Check(context.Background()) // unchanged
	probe.online = true
	m.Check(context.Background())

	assert.Equal(t, []bool{false, true}, seen)

	d.Dispose()
	probe.online = false
	m.Check(context.Background())
	assert.Equal(t, []bool{false, true}, seen)
}

func TestMonitor_DisposeIsIdempotent(t *testing.T) {
	m := newTestMonitor(&stubProbe{online: true})

	d1 := m.Subscribe(func(bool) {})
	d2 := m.Subscribe(func(bool) {})
	assert.Equal(t, 2, m.subscriberCount())

	d1.Dispose()
	d1.Dispose()
	d1.Dispose()
	assert.Equal(t, 1, m.subscriberCount())

	d2.Dispose()
	assert.Equal(t, 0, m.subscriberCount())
}

func TestMonitor_RunStopsOnCancel(t *testing.T) {
	m := newTestMonitor(&stubProbe{online: true})
	m.interval = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("probe loop did not stop")
	}
}
