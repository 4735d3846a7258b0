package notification

import (
	"context"
	"log/slog"

	"yelocar/internal/domain/service"
	"yelocar/internal/errors"
	"yelocar/internal/infra/firebase"

	"firebase.google.com/go/v4/messaging"
)

// messageSender is the part of *messaging.Client the service uses.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messageSender
	logger *slog.Logger
}

// NewNotificationService returns an FCM-backed service, or a log-only one
// when Firebase is not configured.
func NewNotificationService(app *firebase.App, logger *slog.Logger) (service.NotificationService, error) {
	if app == nil {
		logger.Warn("Firebase not configured, lead notifications will only be logged")

		return &logOnlyService{logger: logger}, nil
	}

	client, err := app.Messaging()
	if err != nil {
		return nil, err
	}

	return &firebaseService{
		client: client,
		logger: logger,
	}, nil
}

// SendToTopic sends a push notification to every device subscribed to topic
func (s *firebaseService) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) (string, error) {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	id, err := s.client.Send(ctx, message)
	if err != nil {
		if isTransient(err) {
			return "", errors.Wrap(errors.Join(service.ErrTransientDelivery, err), "failed to send notification")
		}

		return "", errors.Wrap(err, "failed to send notification")
	}

	s.logger.Debug("Notification sent", slog.String("topic", topic), slog.String("message_id", id))

	return id, nil
}

// isTransient reports FCM failures worth a redelivery.
func isTransient(err error) bool {
	return messaging.IsUnavailable(err) ||
		messaging.IsInternal(err) ||
		messaging.IsQuotaExceeded(err)
}

type logOnlyService struct {
	logger *slog.Logger
}

func (s *logOnlyService) SendToTopic(_ context.Context, topic, title, body string, data map[string]string) (string, error) {
	s.logger.Info("Notification (not sent)",
		slog.String("topic", topic),
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data),
	)

	return "", nil
}
