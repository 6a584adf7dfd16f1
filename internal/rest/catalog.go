package rest

import (
	"errors"
	"net/http"

	"threadline-be/internal/catalog"
)

type syncResponse struct {
	Message  string `json:"message"`
	Count    int    `json:"count"`
	Variants int    `json:"variants"`
	Pruned   int64  `json:"pruned"`
}

func (h *Handler) SyncProducts(w http.ResponseWriter, r *http.Request) {
	result, err := h.sync.SyncProducts(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNoUpstreamData):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, catalog.ErrUpstreamStatus):
			writeError(w, http.StatusBadGateway, err.Error())
		default:
			internalError(w, r, "failed to sync products", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, syncResponse{
		Message:  "products synced successfully",
		Count:    result.Count,
		Variants: result.VariantsTouched,
		Pruned:   result.RowsPruned,
	})
}
