package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrValidation", ErrValidation},
		{"ErrNoSession", ErrNoSession},
		{"ErrInvalidCatalog", ErrInvalidCatalog},
		{"ErrUnsupportedType", ErrUnsupportedType},
		{"ErrRateLimited", ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrValidation_Message tests the message surfaced on a failed login
func TestErrValidation_Message(t *testing.T) {
	assert.Equal(t, "please fill in all fields", ErrValidation.Error())
}

// TestErrors_Uniqueness tests that all errors are distinct
func TestErrors_Uniqueness(t *testing.T) {
	allErrors := []error{
		ErrNotFound,
		ErrInvalidInput,
		ErrValidation,
		ErrNoSession,
		ErrInvalidCatalog,
		ErrUnsupportedType,
		ErrRateLimited,
	}

	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i != j {
				assert.False(t, errors.Is(err1, err2), "%v should not match %v", err1, err2)
			}
		}
	}
}

// TestErrors_WithWrapping tests that wrapped errors still match
func TestErrors_WithWrapping(t *testing.T) {
	wrapped := fmt.Errorf("hire 42: %w", ErrNotFound)

	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.False(t, errors.Is(wrapped, ErrNoSession))
	assert.Contains(t, wrapped.Error(), "not found")
}
