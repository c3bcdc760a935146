package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "without cause",
			err:      NewMissingDataError("stadium operations dataset is empty", nil),
			expected: "[MISSING_DATA] stadium operations dataset is empty",
		},
		{
			name:     "with cause",
			err:      NewParsingError("bad revenue value", fmt.Errorf("strconv: invalid syntax")),
			expected: "[PARSING] bad revenue value: strconv: invalid syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("io failure")
	err := NewStorageError("cannot write report", cause)

	assert.ErrorIs(t, err, cause)
}

func TestIsType(t *testing.T) {
	err := NewSchemaMismatchError("merchandise", "Unit_Price")
	wrapped := fmt.Errorf("load merchandise: %w", err)

	assert.True(t, IsType(wrapped, ErrTypeSchemaMismatch))
	assert.False(t, IsType(wrapped, ErrTypeMissingData))
	assert.False(t, IsType(fmt.Errorf("plain"), ErrTypeSchemaMismatch))
}

func TestNewSchemaMismatchError_Context(t *testing.T) {
	err := NewSchemaMismatchError("fanbase", "Games_Attended")

	require.NotNil(t, err.Context)
	assert.Equal(t, "fanbase", err.Context["dataset"])
	assert.Equal(t, "Games_Attended", err.Context["column"])
}

func TestNewDivisionByZeroError(t *testing.T) {
	err := NewDivisionByZeroError("engagement multiplier")

	assert.Equal(t, ErrTypeDivisionByZero, err.Type)
	assert.Contains(t, err.Error(), "engagement multiplier")
	assert.Equal(t, "engagement multiplier", err.Context["metric"])
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "missing data maps to 422",
			err:            NewMissingDataError("empty dataset", nil),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "MISSING_DATA",
		},
		{
			name:           "division by zero maps to 422",
			err:            NewDivisionByZeroError("channel multiplier"),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "DIVISION_BY_ZERO",
		},
		{
			name:           "not found maps to 404",
			err:            NewNotFoundError("report"),
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
		{
			name:           "wrapped app error keeps taxonomy",
			err:            fmt.Errorf("run: %w", NewSchemaMismatchError("stadium", "Revenue")),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "SCHEMA_MISMATCH",
		},
		{
			name:           "plain error maps to 500",
			err:            fmt.Errorf("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := FromError(tt.err)
			assert.Equal(t, tt.expectedStatus, apiErr.StatusCode)
			assert.Equal(t, tt.expectedCode, apiErr.ErrorCode)
		})
	}
}
