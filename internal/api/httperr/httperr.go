package httperr

import (
	"errors"
	"lockin_backend/internal/model"
	"lockin_backend/pkg/resp"
	"net/http"

	"github.com/rs/zerolog/hlog"
)

// Status - HTTP статус для ошибки сервиса
func Status(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidInput), errors.Is(err, model.ErrInsufficientFunds):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Write пишет ошибку клиенту. Внутренние ошибки логируются, наружу уходит только "internal error"
func Write(w http.ResponseWriter, r *http.Request, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		hlog.FromRequest(r).Error().Err(err).Msg("request failed")
		resp.WriteError(w, status, "internal error")
		return
	}

	resp.WriteError(w, status, err.Error())
}
