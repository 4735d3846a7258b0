package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "yelocar/internal/delivery/context"
	"yelocar/internal/domain/entity"
	domainerrors "yelocar/internal/domain/errors"
	"yelocar/internal/domain/repository"
	"yelocar/internal/domain/service"
	"yelocar/internal/domain/validation"
	"yelocar/internal/errors"
	"yelocar/internal/usecase"

	"github.com/go-playground/validator/v10"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	contacts  repository.ContactRepository
	publisher service.EventPublisher
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(
	contacts repository.ContactRepository,
	publisher service.EventPublisher,
	validate *validator.Validate,
	logger *slog.Logger,
) usecase.ContactUsecase {
	return &contactService{
		contacts:  contacts,
		publisher: publisher,
		validate:  validate,
		logger:    logger,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit stores the message, then announces it as a lead. Announcing is
// best-effort once the message is stored.
func (srv *contactService) Submit(ctx context.Context, input *usecase.ContactInput) (*usecase.ContactOutput, error) {
	in := *input
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)
	if err := validation.Struct(srv.validate, &in); err != nil {
		return nil, err
	}

	msg := &entity.ContactMessage{
		Name:    in.Name,
		Phone:   validation.NormalizePhone(in.Phone),
		Email:   in.Email,
		Message: in.Message,
	}

	if err := srv.contacts.Add(ctx, msg); err != nil {
		srv.log(ctx).Error("Failed to store contact message", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrContactSubmitFailed, err.Error())
	}

	logger := srv.log(ctx).With(slog.String("contact_id", msg.ID))
	logger.Info("Contact message stored")

	event := &service.LeadEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		ContactID: msg.ID,
		Name:      msg.Name,
		Phone:     msg.Phone,
		Email:     msg.Email,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
	}
	if err := srv.publisher.PublishLeadEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish lead event", slog.Any("error", err))
	}

	return &usecase.ContactOutput{
		Message: msg,
		Notices: []entity.Notice{entity.NewSuccessNotice(entity.NoticeCodeContactSent, entity.NoticeMsgContactSent)},
	}, nil
}
