package rtdb

import (
	"context"
	"net"
	"testing"

	"yelocar/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	dialErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}

	tests := []struct {
		name            string
		err             error
		wantUnavailable bool
	}{
		{"dial failure", dialErr, true},
		{"deadline", context.DeadlineExceeded, true},
		{"service unavailable", errors.New("http error status: 503; reason: Service Unavailable"), true},
		{"permission denied", errors.New("http error status: 401; reason: Permission denied"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := wrapError(tt.err, "op")

			assert.Equal(t, tt.wantUnavailable, errors.Is(err, repository.ErrStoreUnavailable))
			assert.True(t, errors.Is(err, tt.err))
		})
	}
}
