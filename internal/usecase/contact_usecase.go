package usecase

import (
	"context"

	"yelocar/internal/domain/entity"
)

// ContactInput is a contact form submission. The message is optional.
type ContactInput struct {
	Name    string `json:"name" validate:"required,notblank,max=100"`
	Phone   string `json:"phone" validate:"required,phone10"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"max=2000"`
}

// ContactOutput returns the stored submission.
type ContactOutput struct {
	Message *entity.ContactMessage
	Notices []entity.Notice
}

// ContactUsecase stores contact form submissions and announces them as leads.
type ContactUsecase interface {
	Submit(ctx context.Context, input *ContactInput) (*ContactOutput, error)
}
