package account

import (
	"lockin_backend/internal/api/auth"
	dto "lockin_backend/internal/api/dto/account"
	"lockin_backend/internal/api/httperr"
	"lockin_backend/internal/middleware"
	"lockin_backend/internal/model"
	"lockin_backend/internal/service"
	"lockin_backend/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.AccountService
}

type Handler struct {
	serv service.AccountService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) ResetProgress(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		httperr.Write(w, r, model.ErrUnauthorized)
		return
	}

	if err := h.serv.ResetProgress(r.Context(), accountID); err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "progress reset"})
}

// DeleteAccount удаляет аккаунт и сбрасывает cookies авторизации
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		httperr.Write(w, r, model.ErrUnauthorized)
		return
	}

	if err := h.serv.DeleteAccount(r.Context(), accountID); err != nil {
		httperr.Write(w, r, err)
		return
	}

	auth.ClearSessionCookies(w)

	resp.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "account deleted"})
}
