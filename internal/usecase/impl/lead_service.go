package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "yelocar/internal/delivery/context"
	"yelocar/internal/domain/service"
	"yelocar/internal/errors"
	"yelocar/internal/usecase"
)

const defaultLeadTopic = "sales-leads"

// ErrInvalidLeadEvent is returned for events that can never be delivered.
var ErrInvalidLeadEvent = errors.New("invalid lead event")

// leadService implements the LeadUsecase interface.
type leadService struct {
	notifier service.NotificationService
	topic    string
	logger   *slog.Logger
}

// NewLeadService is the constructor for leadService. An empty topic selects the default.
func NewLeadService(notifier service.NotificationService, topic string, logger *slog.Logger) usecase.LeadUsecase {
	if strings.TrimSpace(topic) == "" {
		topic = defaultLeadTopic
	}

	return &leadService{
		notifier: notifier,
		topic:    topic,
		logger:   logger,
	}
}

func (srv *leadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *leadService) ProcessLead(ctx context.Context, event *service.LeadEvent) error {
	if event == nil || event.ContactID == "" {
		return errors.Wrap(ErrInvalidLeadEvent, "missing contact id")
	}

	title, body, data := leadNotification(event)

	messageID, err := srv.notifier.SendToTopic(ctx, srv.topic, title, body, data)
	if err != nil {
		if errors.Is(err, service.ErrTransientDelivery) ||
			errors.Is(err, context.DeadlineExceeded) {
			return usecase.NewRetryableError(err)
		}

		return errors.Wrap(err, "failed to notify sales team")
	}

	srv.log(ctx).Info("Lead dispatched",
		slog.String("contact_id", event.ContactID),
		slog.String("topic", srv.topic),
		slog.String("message_id", messageID),
	)

	return nil
}

func leadNotification(event *service.LeadEvent) (title, body string, data map[string]string) {
	title = "New enquiry from " + event.Name
	body = event.Phone + ", " + event.Email
	if event.Message != "" {
		body += ": " + event.Message
	}

	data = map[string]string{
		"type":       "lead",
		"contact_id": event.ContactID,
		"phone":      event.Phone,
		"email":      event.Email,
	}
	if event.RequestID != "" {
		data["request_id"] = event.RequestID
	}

	return title, body, data
}
