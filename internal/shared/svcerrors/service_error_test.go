package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewParseError("PAR_1002", "row 3 has 2 fields, want at least 3", nil),
			wantErr: NewParseError("PAR_1002", "row 3 has 2 fields, want at least 3", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("RUN_9000", nil)),
			wantErr: NewInternalError("RUN_9000", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestServiceError_Categories(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")

	fetchErr := NewFetchError("FET_1000", "source unreachable", cause)
	assert.True(t, fetchErr.IsFetchError())
	assert.False(t, fetchErr.IsParseError())
	assert.Equal(t, 502, fetchErr.HttpStatusCode)
	assert.ErrorIs(t, fetchErr, cause)

	parseErr := NewParseError("PAR_1000", "bad csv", nil)
	assert.True(t, parseErr.IsParseError())
	assert.Equal(t, 422, parseErr.HttpStatusCode)

	dataErr := NewDataError("AGG_1000", "bad timestamp", nil)
	assert.True(t, dataErr.IsDataError())
	assert.False(t, dataErr.IsInternalError())
	assert.Equal(t, "AGG_1000: bad timestamp", dataErr.Error())

	internalErr := NewInternalErrorPanic(cause)
	assert.True(t, internalErr.IsInternalError())
	assert.Equal(t, "SYS_9000", internalErr.Code)
	assert.Equal(t, 500, internalErr.HttpStatusCode)
}
