package service

import (
	"context"
	"time"
)

// LeadEvent announces a contact form submission to the sales team
type LeadEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	ContactID string    `json:"contact_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLeadEvent publishes a lead event for async processing
	PublishLeadEvent(ctx context.Context, event *LeadEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
