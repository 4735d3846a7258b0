package postgres

import (
	"testing"

	"yelocar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestUpdateColumns(t *testing.T) {
	tests := []struct {
		name    string
		profile entity.UserProfile
		want    []string
	}{
		{"placeholder merge", entity.UserProfile{UID: "u1", PhoneNumber: "9123456780"}, []string{"updated_at", "phone_number"}},
		{"full profile", entity.UserProfile{UID: "u1", Email: "a@b.co", FullName: "Asha Rao", PhoneNumber: "9876543210"},
			[]string{"updated_at", "email", "full_name", "phone_number"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, updateColumns(&tt.profile))
		})
	}
}
