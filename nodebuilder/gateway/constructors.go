package gateway

import (
	"github.com/celestiaorg/ledger-node/api/gateway"
	"github.com/celestiaorg/ledger-node/nodebuilder/ledger"
)

// Handler constructs a new gateway Handler over the ledger and registers it
// on the server.
func Handler(cfg *Config, ledger ledger.Module, serv *gateway.Server) {
	handler := gateway.NewHandler(ledger, cfg.ReadOnly)
	handler.RegisterEndpoints(serv)
	handler.RegisterMiddleware(serv)
}

func server(cfg *Config) *gateway.Server {
	return gateway.NewServer(cfg.Address, cfg.Port)
}
