package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"yelocar/internal/delivery/api/response"
	deliverycontext "yelocar/internal/delivery/context"
	"yelocar/internal/errors"
	"yelocar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultHeartbeat = 25 * time.Second

// ConnectivityHandlerParams holds dependencies for ConnectivityHandler, injected by Fx.
type ConnectivityHandlerParams struct {
	fx.In

	ConnectivityUC usecase.ConnectivityUsecase
	Logger         *slog.Logger
}

// ConnectivityHandler reports the key-value store reachability.
type ConnectivityHandler struct {
	connectivityUC usecase.ConnectivityUsecase
	logger         *slog.Logger
	heartbeat      time.Duration
}

func NewConnectivityHandler(params ConnectivityHandlerParams) *ConnectivityHandler {
	return &ConnectivityHandler{
		connectivityUC: params.ConnectivityUC,
		logger:         params.Logger,
		heartbeat:      defaultHeartbeat,
	}
}

// Status handles GET /api/v1/connectivity
func (h *ConnectivityHandler) Status(c echo.Context) error {
	status := h.connectivityUC.Check(c.Request().Context())

	return response.SuccessWithNotices(c, http.StatusOK, ConnectivityResponse{Online: status.Online}, status.Notices)
}

// Stream handles GET /api/v1/connectivity/stream as server-sent events. The
// subscription lives as long as the request.
func (h *ConnectivityHandler) Stream(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	// Buffered so a slow client never blocks the monitor's notify loop; the
	// latest state is all that matters.
	updates := make(chan bool, 1)
	disposer := h.connectivityUC.Watch(func(online bool) {
		select {
		case updates <- online:
		default:
			select {
			case <-updates:
			default:
			}
			select {
			case updates <- online:
			default:
			}
		}
	})
	defer disposer.Dispose()

	res := c.Response()
	// The server write timeout would otherwise cut the stream.
	_ = http.NewResponseController(res.Writer).SetWriteDeadline(time.Time{})

	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	logger.Debug("Connectivity stream opened")
	defer logger.Debug("Connectivity stream closed")

	for {
		select {
		case <-ctx.Done():
			return nil
		case online := <-updates:
			if err := writeEvent(res, "connectivity", ConnectivityResponse{Online: online}); err != nil {
				return nil //nolint:nilerr // client went away
			}
		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil //nolint:nilerr // client went away
			}
			res.Flush()
		}
	}
}

func writeEvent(res *echo.Response, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return errors.WithStack(err)
	}
	res.Flush()

	return nil
}
