package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/celestiaorg/ledger-node/ledgerdb"
	"github.com/celestiaorg/ledger-node/store"
)

const versionKey = "version"

func writeError(w http.ResponseWriter, statusCode int, endpoint string, err error) {
	log.Debugw("serving request", "endpoint", endpoint, "err", err)

	w.WriteHeader(statusCode)

	_, err = w.Write([]byte(err.Error()))
	if err != nil {
		log.Errorw("writing error response", "endpoint", endpoint, "err", err)
	}
}

// writeReadError writes err with the status matching the reason of a failed read.
func writeReadError(w http.ResponseWriter, endpoint string, err error) {
	switch {
	case errors.Is(err, ledgerdb.ErrPruned):
		writeError(w, http.StatusGone, endpoint, err)
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, endpoint, err)
	case errors.Is(err, store.ErrEmptyKey):
		writeError(w, http.StatusBadRequest, endpoint, err)
	default:
		writeError(w, http.StatusInternalServerError, endpoint, err)
	}
}

func writeResponse(w http.ResponseWriter, endpoint string, v any) {
	resp, err := json.Marshal(v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, endpoint, err)
		return
	}
	_, err = w.Write(resp)
	if err != nil {
		log.Errorw("writing response", "endpoint", endpoint, "err", err)
	}
}

func parseVersion(r *http.Request) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)[versionKey], 10, 64)
}
