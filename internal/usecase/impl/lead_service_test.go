package impl

import (
	"context"
	"testing"

	"yelocar/internal/domain/service"
	mockSvc "yelocar/internal/mocks/service"
	"yelocar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func leadEvent() *service.LeadEvent {
	return &service.LeadEvent{
		RequestID: "req-1",
		ContactID: "c-1",
		Name:      "Ravi",
		Phone:     "9123456789",
		Email:     "ravi@example.com",
		Message:   "Test drive on Sunday?",
		CreatedAt: fixedNow,
	}
}

func TestLeadService_ProcessLead(t *testing.T) {
	notifier := mockSvc.NewMockNotificationService(t)
	srv := NewLeadService(notifier, "", discardLogger())
	ctx := context.Background()

	notifier.EXPECT().SendToTopic(ctx, defaultLeadTopic, "New enquiry from Ravi",
		"9123456789, ravi@example.com: Test drive on Sunday?",
		map[string]string{
			"type":       "lead",
			"contact_id": "c-1",
			"phone":      "9123456789",
			"email":      "ravi@example.com",
			"request_id": "req-1",
		}).Return("projects/yelocar/messages/1", nil)

	require.NoError(t, srv.ProcessLead(ctx, leadEvent()))
}

func TestLeadService_ProcessLead_Errors(t *testing.T) {
	tests := []struct {
		name          string
		sendErr       error
		wantRetryable bool
	}{
		{"transient", errors.Wrap(service.ErrTransientDelivery, "unavailable"), true},
		{"deadline", context.DeadlineExceeded, true},
		{"permanent", errors.New("invalid topic"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := mockSvc.NewMockNotificationService(t)
			srv := NewLeadService(notifier, "leads", discardLogger())
			ctx := context.Background()

			notifier.EXPECT().SendToTopic(ctx, "leads", mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).Return("", tt.sendErr)

			err := srv.ProcessLead(ctx, leadEvent())

			require.Error(t, err)
			assert.Equal(t, tt.wantRetryable, usecase.IsRetryable(err))
		})
	}
}

func TestLeadService_ProcessLead_InvalidEventIsPermanent(t *testing.T) {
	srv := NewLeadService(mockSvc.NewMockNotificationService(t), "leads", discardLogger())

	err := srv.ProcessLead(context.Background(), &service.LeadEvent{Name: "Ravi"})

	assert.ErrorIs(t, err, ErrInvalidLeadEvent)
	assert.False(t, usecase.IsRetryable(err))
}
