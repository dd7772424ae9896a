package gateway

import (
	"net/http"
)

const prunerProgressEndpoint = "/pruner/progress"

func (h *Handler) handlePrunerProgressRequest(w http.ResponseWriter, r *http.Request) {
	progress, err := h.ledger.PrunerProgress(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, prunerProgressEndpoint, err)
		return
	}
	writeResponse(w, prunerProgressEndpoint, progress)
}
