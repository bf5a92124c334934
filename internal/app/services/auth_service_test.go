package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/placetrack/placetrack/internal/pkg/apperrors"
)

func TestValidatePassword(t *testing.T) {
	svc := &AuthService{}

	assert.NoError(t, svc.validatePassword("secret123"))

	tests := []struct {
		name     string
		password string
	}{
		{"empty", ""},
		{"too short", "ab1"},
		{"no digit", "secretpass"},
		{"no letter", "12345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.validatePassword(tt.password)
			assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
		})
	}
}
