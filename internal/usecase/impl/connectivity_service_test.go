package impl

import (
	"context"
	"testing"

	"yelocar/internal/domain/entity"
	mockSvc "yelocar/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConnectivityService_Check(t *testing.T) {
	monitor := mockSvc.NewMockConnectivityMonitor(t)
	srv := NewConnectivityService(monitor, discardLogger())
	ctx := context.Background()

	monitor.EXPECT().Check(ctx).Return(true).Once()
	status := srv.Check(ctx)
	assert.True(t, status.Online)
	assert.Empty(t, status.Notices)

	monitor.EXPECT().Check(ctx).Return(false).Once()
	status = srv.Check(ctx)
	assert.False(t, status.Online)
	require.Len(t, status.Notices, 1)
	assert.Equal(t, entity.NoticeCodeLoadOffline, status.Notices[0].Code)
}

func TestConnectivityService_WatchSendsCurrentStateFirst(t *testing.T) {
	monitor := mockSvc.NewMockConnectivityMonitor(t)
	srv := NewConnectivityService(monitor, discardLogger())

	released := false
	monitor.EXPECT().Subscribe(mock.Anything).Return(entity.NewDisposer(func() { released = true }))
	monitor.EXPECT().Online().Return(false)

	var seen []bool
	disposer := srv.Watch(func(online bool) { seen = append(seen, online) })

	assert.Equal(t, []bool{false}, seen)

	disposer.Dispose()
	assert.True(t, released)
}
