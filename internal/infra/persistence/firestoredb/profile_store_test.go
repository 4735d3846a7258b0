package firestoredb

import (
	"context"
	"testing"
	"time"

	"yelocar/internal/domain/entity"
	"yelocar/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestWrapError_MapsGRPCCodes(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		wantUnavailable bool
	}{
		{"unavailable", status.Error(codes.Unavailable, "backend down"), true},
		{"deadline code", status.Error(codes.DeadlineExceeded, "slow"), true},
		{"context deadline", context.DeadlineExceeded, true},
		{"permission denied", status.Error(codes.PermissionDenied, "rules"), false},
		{"internal", status.Error(codes.Internal, "boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := wrapError(tt.err, "op")

			assert.Equal(t, tt.wantUnavailable, errors.Is(err, repository.ErrStoreUnavailable))
		})
	}
}

func TestProfileFields_OmitsEmptyFields(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	data := profileFields(&entity.UserProfile{UID: "u1", PhoneNumber: "9123456780", UpdatedAt: now})

	assert.Equal(t, map[string]any{
		"uid":         "u1",
		"phoneNumber": "9123456780",
		"updatedAt":   now,
	}, data)
}

func TestProfileFields_FullProfile(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	data := profileFields(&entity.UserProfile{
		UID:         "u1",
		Email:       "asha@example.com",
		FullName:    "Asha Rao",
		PhoneNumber: "9876543210",
		CreatedAt:   now,
		UpdatedAt:   now,
	})

	assert.Len(t, data, 6)
	assert.Equal(t, "Asha Rao", data["fullName"])
	assert.Equal(t, now, data["createdAt"])
}
