package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorType_Constants(t *testing.T) {
	tests := []struct {
		name     string
		errType  ErrorType
		expected string
	}{
		{name: "parsing error type", errType: ErrTypeParsing, expected: "PARSING"},
		{name: "storage error type", errType: ErrTypeStorage, expected: "STORAGE"},
		{name: "validation error type", errType: ErrTypeValidation, expected: "VALIDATION"},
		{name: "not found error type", errType: ErrTypeNotFound, expected: "NOT_FOUND"},
		{name: "config error type", errType: ErrTypeConfig, expected: "CONFIG"},
		{name: "source error type", errType: ErrTypeSource, expected: "SOURCE"},
		{name: "presentation error type", errType: ErrTypePresentation, expected: "PRESENTATION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.errType))
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name        string
		appError    *AppError
		wantMessage string
	}{
		{
			name: "error without cause",
			appError: &AppError{
				Type:    ErrTypeConfig,
				Message: "invalid year window",
			},
			wantMessage: "[CONFIG] invalid year window",
		},
		{
			name: "error with cause",
			appError: &AppError{
				Type:    ErrTypeStorage,
				Message: "failed to rename output",
				Cause:   fmt.Errorf("permission denied"),
			},
			wantMessage: "[STORAGE] failed to rename output: permission denied",
		},
		{
			name: "error with empty message",
			appError: &AppError{
				Type: ErrTypeValidation,
			},
			wantMessage: "[VALIDATION] ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMessage, tt.appError.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("original error")
	appErr := NewParsingError("bad row", cause)

	assert.Same(t, cause, appErr.Unwrap())
	assert.True(t, errors.Is(appErr, cause))
	assert.Nil(t, NewAppValidationError("no cause").Unwrap())
}

func TestAppError_WithContext(t *testing.T) {
	appErr := &AppError{Type: ErrTypeStorage, Message: "write failed"}

	got := appErr.WithContext("path", "merged_dataset.csv").WithContext("rows", 12)

	require.Same(t, appErr, got)
	assert.Equal(t, "merged_dataset.csv", got.Context["path"])
	assert.Equal(t, 12, got.Context["rows"])
}

func TestHelperConstructors(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantMsg  string
	}{
		{name: "parsing", err: NewParsingError("parse failed", cause), wantType: ErrTypeParsing, wantMsg: "parse failed"},
		{name: "storage", err: NewStorageError("store failed", cause), wantType: ErrTypeStorage, wantMsg: "store failed"},
		{name: "validation", err: NewAppValidationError("invalid"), wantType: ErrTypeValidation, wantMsg: "invalid"},
		{name: "not found", err: NewNotFoundError("merged table"), wantType: ErrTypeNotFound, wantMsg: "merged table not found"},
		{name: "config", err: NewConfigError("bad config", cause), wantType: ErrTypeConfig, wantMsg: "bad config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantMsg, tt.err.Message)
			assert.NotNil(t, tt.err.Context)
		})
	}
}
