package progress

import (
	"lockin_backend/internal/api/httperr"
	"lockin_backend/internal/converter"
	"lockin_backend/internal/middleware"
	"lockin_backend/internal/model"
	"lockin_backend/internal/service"
	"lockin_backend/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.AggregationService
}

type Handler struct {
	serv service.AggregationService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		httperr.Write(w, r, model.ErrUnauthorized)
		return
	}

	progress, err := h.serv.Progress(r.Context(), accountID)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToProgressResponse(*progress))
}
