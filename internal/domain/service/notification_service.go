package service

import (
	"context"

	"yelocar/internal/errors"
)

// ErrTransientDelivery marks a push failure that may succeed on redelivery.
var ErrTransientDelivery = errors.New("transient push delivery failure")

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendToTopic pushes a notification to every device subscribed to topic
	// and returns the provider's message id.
	SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) (string, error)
}
