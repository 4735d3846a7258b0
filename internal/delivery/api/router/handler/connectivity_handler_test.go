package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"yelocar/internal/domain/entity"
	mockUsecase "yelocar/internal/mocks/usecase"
	"yelocar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConnectivityHandler_Status(t *testing.T) {
	connectivityUC := mockUsecase.NewMockConnectivityUsecase(t)
	h := NewConnectivityHandler(ConnectivityHandlerParams{ConnectivityUC: connectivityUC, Logger: discardLogger()})
	c, rec := newTestContext(http.MethodGet, "/api/v1/connectivity", "")

	connectivityUC.EXPECT().Check(mock.Anything).Return(&usecase.ConnectivityStatus{
		Online:  false,
		Notices: []entity.Notice{entity.NewWarningNotice(entity.NoticeCodeLoadOffline, entity.NoticeMsgLoadOffline)},
	})

	require.NoError(t, h.Status(c))

	var got ConnectivityResponse
	env := decode(t, rec, &got)
	assert.False(t, got.Online)
	require.Len(t, env.Notices, 1)
}

func TestConnectivityHandler_Stream_DisposesOnDisconnect(t *testing.T) {
	connectivityUC := mockUsecase.NewMockConnectivityUsecase(t)
	h := NewConnectivityHandler(ConnectivityHandlerParams{ConnectivityUC: connectivityUC, Logger: discardLogger()})
	h.heartbeat = time.Hour

	c, rec := newTestContext(http.MethodGet, "/api/v1/connectivity/stream", "")
	ctx, cancel := context.WithCancel(c.Request().Context())
	c.SetRequest(c.Request().WithContext(ctx))

	disposed := make(chan struct{})
	connectivityUC.EXPECT().Watch(mock.Anything).RunAndReturn(func(fn func(bool)) *entity.Disposer {
		fn(true)
		go func() {
			fn(false)
			// Give the handler a moment to write before the client leaves.
			time.Sleep(50 * time.Millisecond)
			cancel()
		}()

		return entity.NewDisposer(func() { close(disposed) })
	})

	require.NoError(t, h.Stream(c))

	select {
	case <-disposed:
	case <-time.After(time.Second):
		t.Fatal("subscription was not disposed")
	}
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "event: connectivity\n"))
	assert.Contains(t, body, `data: {"online":false}`)
}
