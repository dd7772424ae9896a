package gateway

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

func (h *Handler) RegisterMiddleware(srv *Server) {
	srv.RegisterMiddleware(setContentType)
	srv.RegisterMiddleware(checkPostDisabled(h.readOnly))
	srv.RegisterMiddleware(wrapRequestContext)
}

func setContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// checkPostDisabled prohibits POST requests on a read only gateway.
func checkPostDisabled(readOnly bool) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost && readOnly {
				writeError(w, http.StatusMethodNotAllowed, r.URL.Path, errors.New("gateway is read only"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// wrapRequestContext ensures we implement a deadline on serving requests
// via the gateway server-side to prevent context leaks.
func wrapRequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), time.Minute)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
