package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/celestiaorg/ledger-node/store"
)

const (
	headEndpoint        = "/ledger/head"
	txnEndpoint         = "/ledger/txn"
	eventsEndpoint      = "/ledger/events"
	saveVersionEndpoint = "/ledger/versions"
)

// VersionResponse represents the response to `/ledger/head` and
// `/ledger/versions` requests.
type VersionResponse struct {
	Version uint64 `json:"version"`
}

// TxnResponse represents the response to a `/ledger/txn` request.
type TxnResponse struct {
	Version     uint64 `json:"version"`
	Transaction []byte `json:"transaction"`
}

// EventsResponse represents the response to a `/ledger/events` request.
type EventsResponse struct {
	Version uint64   `json:"version"`
	Events  [][]byte `json:"events"`
}

func (h *Handler) handleHeadRequest(w http.ResponseWriter, r *http.Request) {
	head, err := h.ledger.Head(r.Context())
	if err != nil {
		writeReadError(w, headEndpoint, err)
		return
	}
	writeResponse(w, headEndpoint, VersionResponse{Version: head})
}

func (h *Handler) handleTxnRequest(w http.ResponseWriter, r *http.Request) {
	version, err := parseVersion(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, txnEndpoint, err)
		return
	}
	txn, err := h.ledger.Transaction(r.Context(), version)
	if err != nil {
		writeReadError(w, txnEndpoint, err)
		return
	}
	writeResponse(w, txnEndpoint, TxnResponse{Version: version, Transaction: txn})
}

func (h *Handler) handleEventsRequest(w http.ResponseWriter, r *http.Request) {
	version, err := parseVersion(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, eventsEndpoint, err)
		return
	}
	events, err := h.ledger.Events(r.Context(), version)
	if err != nil {
		writeReadError(w, eventsEndpoint, err)
		return
	}
	if events == nil {
		events = [][]byte{}
	}
	writeResponse(w, eventsEndpoint, EventsResponse{Version: version, Events: events})
}

func (h *Handler) handleSaveVersion(w http.ResponseWriter, r *http.Request) {
	var change store.VersionChange
	if err := json.NewDecoder(r.Body).Decode(&change); err != nil {
		writeError(w, http.StatusBadRequest, saveVersionEndpoint, err)
		return
	}
	version, err := h.ledger.SaveVersion(r.Context(), change)
	if err != nil {
		writeReadError(w, saveVersionEndpoint, err)
		return
	}
	writeResponse(w, saveVersionEndpoint, VersionResponse{Version: version})
}
