package gateway

import (
	logging "github.com/ipfs/go-log/v2"

	"github.com/celestiaorg/ledger-node/nodebuilder/ledger"
)

var log = logging.Logger("gateway")

// Handler serves the ledger over the REST gateway.
type Handler struct {
	ledger   ledger.Module
	readOnly bool
}

func NewHandler(ledger ledger.Module, readOnly bool) *Handler {
	return &Handler{
		ledger:   ledger,
		readOnly: readOnly,
	}
}
