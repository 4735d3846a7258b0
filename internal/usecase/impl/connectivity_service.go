package impl

import (
	"context"
	"log/slog"

	"yelocar/internal/domain/entity"
	"yelocar/internal/domain/service"
	"yelocar/internal/usecase"
)

// connectivityService implements the ConnectivityUsecase interface.
type connectivityService struct {
	monitor service.ConnectivityMonitor
	logger  *slog.Logger
}

// NewConnectivityService is the constructor for connectivityService.
func NewConnectivityService(monitor service.ConnectivityMonitor, logger *slog.Logger) usecase.ConnectivityUsecase {
	return &connectivityService{
		monitor: monitor,
		logger:  logger,
	}
}

func (srv *connectivityService) Check(ctx context.Context) *usecase.ConnectivityStatus {
	online := srv.monitor.Check(ctx)

	return &usecase.ConnectivityStatus{Online: online, Notices: connectivityNotices(online)}
}

// Watch delivers the current state first so a new stream never waits for a change.
func (srv *connectivityService) Watch(fn func(online bool)) *entity.Disposer {
	disposer := srv.monitor.Subscribe(fn)
	fn(srv.monitor.Online())

	return disposer
}

func connectivityNotices(online bool) []entity.Notice {
	if online {
		return nil
	}

	return []entity.Notice{entity.NewWarningNotice(entity.NoticeCodeLoadOffline, entity.NoticeMsgLoadOffline)}
}
