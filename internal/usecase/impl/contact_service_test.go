package impl

import (
	"context"
	"testing"

	deliverycontext "yelocar/internal/delivery/context"
	"yelocar/internal/domain/entity"
	domainerrors "yelocar/internal/domain/errors"
	"yelocar/internal/domain/service"
	"yelocar/internal/domain/validation"
	mockRepo "yelocar/internal/mocks/repository"
	mockSvc "yelocar/internal/mocks/service"
	"yelocar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContactService_Submit_StoresAndPublishes(t *testing.T) {
	contacts := mockRepo.NewMockContactRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	srv := NewContactService(contacts, publisher, validation.New(), discardLogger())
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

	contacts.EXPECT().Add(ctx, mock.Anything).
		Run(func(_ context.Context, msg *entity.ContactMessage) {
			msg.ID = "c-1"
			msg.CreatedAt = fixedNow
		}).
		Return(nil)

	var published *service.LeadEvent
	publisher.EXPECT().PublishLeadEvent(ctx, mock.Anything).
		Run(func(_ context.Context, event *service.LeadEvent) { published = event }).
		Return(nil)

	out, err := srv.Submit(ctx, &usecase.ContactInput{
		Name:  " Ravi ",
		Phone: "91234 56789",
		Email: "ravi@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "c-1", out.Message.ID)
	assert.Equal(t, "Ravi", out.Message.Name)
	assert.Equal(t, "9123456789", out.Message.Phone)
	require.Len(t, out.Notices, 1)
	assert.Equal(t, entity.NoticeMsgContactSent, out.Notices[0].Message)

	require.NotNil(t, published)
	assert.Equal(t, "req-1", published.RequestID)
	assert.Equal(t, "c-1", published.ContactID)
	assert.Equal(t, fixedNow, published.CreatedAt)
	assert.Empty(t, published.Message)
}

func TestContactService_Submit_AcceptsPaddedEmail(t *testing.T) {
	contacts := mockRepo.NewMockContactRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	srv := NewContactService(contacts, publisher, validation.New(), discardLogger())
	ctx := context.Background()

	contacts.EXPECT().Add(ctx, mock.Anything).Return(nil)
	publisher.EXPECT().PublishLeadEvent(ctx, mock.Anything).Return(nil)

	out, err := srv.Submit(ctx, &usecase.ContactInput{
		Name:    "Ravi",
		Phone:   "9123456789",
		Email:   "  ravi@example.com ",
		Message: " Interested in the Nexon EV\n",
	})

	require.NoError(t, err)
	assert.Equal(t, "ravi@example.com", out.Message.Email)
	assert.Equal(t, "Interested in the Nexon EV", out.Message.Message)
}

func TestContactService_Submit_PublishFailureStillSucceeds(t *testing.T) {
	contacts := mockRepo.NewMockContactRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	srv := NewContactService(contacts, publisher, validation.New(), discardLogger())
	ctx := context.Background()

	contacts.EXPECT().Add(ctx, mock.Anything).Return(nil)
	publisher.EXPECT().PublishLeadEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	out, err := srv.Submit(ctx, &usecase.ContactInput{
		Name:    "Ravi",
		Phone:   "9123456789",
		Email:   "ravi@example.com",
		Message: "Is the Creta still available?",
	})

	require.NoError(t, err)
	assert.Equal(t, "Is the Creta still available?", out.Message.Message)
}

func TestContactService_Submit_StoreFailure(t *testing.T) {
	contacts := mockRepo.NewMockContactRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	srv := NewContactService(contacts, publisher, validation.New(), discardLogger())
	ctx := context.Background()

	contacts.EXPECT().Add(ctx, mock.Anything).Return(errors.New("permission denied"))

	_, err := srv.Submit(ctx, &usecase.ContactInput{Name: "Ravi", Phone: "9123456789", Email: "ravi@example.com"})

	assert.ErrorIs(t, err, domainerrors.ErrContactSubmitFailed)
	publisher.AssertNotCalled(t, "PublishLeadEvent", mock.Anything, mock.Anything)
}

func TestContactService_Submit_Validation(t *testing.T) {
	tests := []struct {
		name      string
		input     usecase.ContactInput
		wantField string
	}{
		{"missing name", usecase.ContactInput{Phone: "9123456789", Email: "ravi@example.com"}, "name"},
		{"bad phone", usecase.ContactInput{Name: "Ravi", Phone: "12", Email: "ravi@example.com"}, "phone"},
		{"bad email", usecase.ContactInput{Name: "Ravi", Phone: "9123456789", Email: "ravi"}, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contacts := mockRepo.NewMockContactRepository(t)
			srv := NewContactService(contacts, mockSvc.NewMockEventPublisher(t), validation.New(), discardLogger())

			_, err := srv.Submit(context.Background(), &tt.input)

			var vErr *domainerrors.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
			contacts.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		})
	}
}
