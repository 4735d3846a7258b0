package handler

import (
	"context"
	"testing"

	deliverycontext "yelocar/internal/delivery/context"
	"yelocar/internal/domain/service"
	mockUsecase "yelocar/internal/mocks/usecase"
	"yelocar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLeadDispatcher_Dispatch(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    Outcome
		noCalls bool
	}{
		{"processed", nil, OutcomeDone, false},
		{"transient failure", usecase.NewRetryableError(errors.New("fcm unavailable")), OutcomeRetry, false},
		{"permanent failure", errors.New("invalid topic"), OutcomeDrop, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leadUC := mockUsecase.NewMockLeadUsecase(t)
			d := NewLeadDispatcher(LeadDispatcherParams{Logger: discardLogger(), LeadUC: leadUC})

			leadUC.EXPECT().ProcessLead(mock.Anything, mock.MatchedBy(func(e *service.LeadEvent) bool {
				return e.ContactID == "c-1"
			})).Return(tt.err)

			got := d.Dispatch(context.Background(), leadJSON(t, service.LeadEvent{ContactID: "c-1"}), nil)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLeadDispatcher_MalformedIsDropped(t *testing.T) {
	leadUC := mockUsecase.NewMockLeadUsecase(t)
	d := NewLeadDispatcher(LeadDispatcherParams{Logger: discardLogger(), LeadUC: leadUC})

	assert.Equal(t, OutcomeDrop, d.Dispatch(context.Background(), []byte("{not json"), nil))
	leadUC.AssertNotCalled(t, "ProcessLead", mock.Anything, mock.Anything)
}

func TestExtractRequestID(t *testing.T) {
	ctx := deliverycontext.WithRequestID(context.Background(), "from-header")
	event := &service.LeadEvent{RequestID: "from-event"}

	assert.Equal(t, "from-attr", extractRequestID(ctx, map[string]string{"request_id": "from-attr"}, event))
	assert.Equal(t, "from-event", extractRequestID(ctx, nil, event))
	assert.Equal(t, "from-header", extractRequestID(ctx, nil, &service.LeadEvent{}))
	assert.NotEmpty(t, extractRequestID(context.Background(), nil, &service.LeadEvent{}))
}
