package gateway

import (
	"net/http"

	"github.com/gorilla/mux"
)

const (
	stateEndpoint = "/state"
	stateKey      = "key"
)

// StateResponse represents the response to a `/state` request.
type StateResponse struct {
	Key     string `json:"key"`
	Version uint64 `json:"version"`
	Value   []byte `json:"value"`
}

func (h *Handler) handleStateRequest(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)[stateKey]
	version, err := parseVersion(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, stateEndpoint, err)
		return
	}
	value, err := h.ledger.StateValue(r.Context(), []byte(key), version)
	if err != nil {
		writeReadError(w, stateEndpoint, err)
		return
	}
	writeResponse(w, stateEndpoint, StateResponse{Key: key, Version: version, Value: value})
}
