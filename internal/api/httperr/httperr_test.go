package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"lockin_backend/internal/model"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{model.ErrInvalidInput, http.StatusBadRequest},
		{model.ErrInsufficientFunds, http.StatusBadRequest},
		{model.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("get account: %w", model.ErrNotFound), http.StatusNotFound},
		{model.ErrAlreadyExists, http.StatusConflict},
		{model.ErrUnauthorized, http.StatusUnauthorized},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Status(tt.err), tt.err.Error())
	}
}

func TestWrite_HidesInternalErrors(t *testing.T) {
	w := httptest.NewRecorder()
	Write(w, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("pq: password authentication failed"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal error", body["error"])
}
