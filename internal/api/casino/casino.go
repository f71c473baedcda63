package casino

import (
	dto "lockin_backend/internal/api/dto/casino"
	"lockin_backend/internal/api/httperr"
	"lockin_backend/internal/converter"
	"lockin_backend/internal/middleware"
	"lockin_backend/internal/model"
	"lockin_backend/internal/service"
	"lockin_backend/pkg/req"
	"lockin_backend/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.CasinoService
}

type Handler struct {
	serv service.CasinoService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		httperr.Write(w, r, model.ErrUnauthorized)
		return
	}

	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	result, err := h.serv.Spin(r.Context(), accountID, converter.ToSpin(payload))
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		httperr.Write(w, r, model.ErrUnauthorized)
		return
	}

	stats, err := h.serv.Stats(r.Context(), accountID)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCasinoStatsResponse(*stats))
}
