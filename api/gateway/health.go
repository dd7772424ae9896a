package gateway

import (
	"errors"
	"net/http"

	"github.com/celestiaorg/ledger-node/nodebuilder/ledger"
	"github.com/celestiaorg/ledger-node/store"
)

const healthEndpoint = "/status/health"

// HealthResponse represents the response to a `/status/health` request.
// Head is absent until the first version is saved.
type HealthResponse struct {
	Status string                  `json:"status"`
	Head   *uint64                 `json:"head,omitempty"`
	Pruner []ledger.DomainProgress `json:"pruner"`
}

func (h *Handler) handleHealthRequest(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok"}

	head, err := h.ledger.Head(r.Context())
	switch {
	case err == nil:
		resp.Head = &head
	case errors.Is(err, store.ErrNotFound):
	default:
		writeError(w, http.StatusServiceUnavailable, healthEndpoint, err)
		return
	}

	resp.Pruner, err = h.ledger.PrunerProgress(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, healthEndpoint, err)
		return
	}
	writeResponse(w, healthEndpoint, resp)
}
