package handler

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "yelocar/internal/delivery/context"
	"yelocar/internal/domain/service"
	"yelocar/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Outcome tells a transport what to do with a delivered message.
type Outcome int

const (
	// OutcomeDone acknowledges a processed message.
	OutcomeDone Outcome = iota

	// OutcomeRetry asks the broker to redeliver.
	OutcomeRetry

	// OutcomeDrop acknowledges a message that can never succeed.
	OutcomeDrop
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDone:
		return "done"
	case OutcomeRetry:
		return "retry"
	case OutcomeDrop:
		return "drop"
	default:
		return "unknown"
	}
}

// LeadDispatcherParams holds dependencies for LeadDispatcher, injected by Fx.
type LeadDispatcherParams struct {
	fx.In

	Logger *slog.Logger
	LeadUC usecase.LeadUsecase
}

// LeadDispatcher decodes lead events from any transport and runs them.
type LeadDispatcher struct {
	logger *slog.Logger
	leadUC usecase.LeadUsecase
}

func NewLeadDispatcher(params LeadDispatcherParams) *LeadDispatcher {
	return &LeadDispatcher{
		logger: params.Logger,
		leadUC: params.LeadUC,
	}
}

// Dispatch processes one JSON-encoded service.LeadEvent. attributes are the
// transport's message metadata.
func (d *LeadDispatcher) Dispatch(ctx context.Context, body []byte, attributes map[string]string) Outcome {
	var event service.LeadEvent
	if err := json.Unmarshal(body, &event); err != nil {
		d.logger.Error("[Worker] Failed to parse lead event", slog.Any("error", err))

		return OutcomeDrop
	}

	requestID := extractRequestID(ctx, attributes, &event)
	reqLogger := d.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing lead event", slog.String("contact_id", event.ContactID))

	if err := d.leadUC.ProcessLead(ctx, &event); err != nil {
		retryable := usecase.IsRetryable(err)
		reqLogger.Error("[Worker] Failed to process lead event",
			slog.String("contact_id", event.ContactID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return OutcomeRetry
		}

		return OutcomeDrop
	}

	reqLogger.Info("[Worker] Lead event processed", slog.String("contact_id", event.ContactID))

	return OutcomeDone
}

// extractRequestID prefers message attributes, then the event payload, then
// the incoming request, and finally generates one.
func extractRequestID(ctx context.Context, attributes map[string]string, event *service.LeadEvent) string {
	if requestID := attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}
