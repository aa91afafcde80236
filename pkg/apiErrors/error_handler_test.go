package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := map[string]int{
		ErrInvalidCredentials:    http.StatusUnauthorized,
		ErrExpiredToken:          http.StatusUnauthorized,
		ErrInsufficientPrivilege: http.StatusForbidden,
		ErrUserAlreadyExists:     http.StatusConflict,
		ErrInvalidDate:           http.StatusBadRequest,
		ErrInvalidMonth:          http.StatusBadRequest,
		ErrInvalidDateRange:      http.StatusBadRequest,
		ErrUnsupportedPeriod:     http.StatusBadRequest,
		ErrInvalidRoomType:       http.StatusBadRequest,
		ErrAggregationFailed:     http.StatusInternalServerError,
		"XYZ_999":                http.StatusInternalServerError,
	}

	for code, expected := range tests {
		assert.Equal(t, expected, StatusFor(code), code)
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrInvalidMonth, "Mês inválido, deve estar entre 1-12", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, ErrInvalidMonth, body.Code)
	assert.Contains(t, body.Message, "1-12")
	assert.Nil(t, body.Details)
}
