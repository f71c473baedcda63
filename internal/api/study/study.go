package study

import (
	dto "lockin_backend/internal/api/dto/study"
	"lockin_backend/internal/api/httperr"
	"lockin_backend/internal/converter"
	"lockin_backend/internal/middleware"
	"lockin_backend/internal/model"
	"lockin_backend/internal/service"
	"lockin_backend/pkg/req"
	"lockin_backend/pkg/resp"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.StudyService
}

type Handler struct {
	serv service.StudyService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// RecordSession - POST /study/session {duration_minutes}
func (h *Handler) RecordSession(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		httperr.Write(w, r, model.ErrUnauthorized)
		return
	}

	payload, err := req.Decode[dto.RecordSessionRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	sessionID, err := h.serv.RecordSession(r.Context(), accountID, converter.ToRecordSession(payload))
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, dto.SessionResponse{SessionID: sessionID})
}

// CloseSession - POST /study/session/{id}/close
func (h *Handler) CloseSession(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		httperr.Write(w, r, model.ErrUnauthorized)
		return
	}

	sessionID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || sessionID <= 0 {
		resp.WriteError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	if err := h.serv.CloseSession(r.Context(), accountID, sessionID); err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.SessionResponse{SessionID: sessionID})
}
