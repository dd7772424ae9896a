package gateway

import (
	"fmt"
	"net/http"
)

func (h *Handler) RegisterEndpoints(rpc *Server) {
	rpc.RegisterHandlerFunc(healthEndpoint, h.handleHealthRequest, http.MethodGet)
	rpc.RegisterHandlerFunc(prunerProgressEndpoint, h.handlePrunerProgressRequest, http.MethodGet)

	// ledger endpoints
	rpc.RegisterHandlerFunc(headEndpoint, h.handleHeadRequest, http.MethodGet)
	rpc.RegisterHandlerFunc(fmt.Sprintf("%s/{%s}", txnEndpoint, versionKey), h.handleTxnRequest,
		http.MethodGet)
	rpc.RegisterHandlerFunc(fmt.Sprintf("%s/{%s}", eventsEndpoint, versionKey), h.handleEventsRequest,
		http.MethodGet)
	rpc.RegisterHandlerFunc(saveVersionEndpoint, h.handleSaveVersion, http.MethodPost)

	// state endpoints
	rpc.RegisterHandlerFunc(fmt.Sprintf("%s/{%s}/version/{%s}", stateEndpoint, stateKey, versionKey),
		h.handleStateRequest, http.MethodGet)
}
