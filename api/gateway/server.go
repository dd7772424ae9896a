package gateway

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
)

// ErrServerStarted is returned on attempt to start a running Server.
var ErrServerStarted = errors.New("gateway: server already started")

// Server serves the ledger over REST.
type Server struct {
	srv      *http.Server
	srvMux   *mux.Router
	listener net.Listener

	started atomic.Bool
}

// NewServer returns a new gateway Server bound to the given address and port.
// Every request is logged at debug level.
func NewServer(address, port string) *Server {
	srvMux := mux.NewRouter()
	srvMux.Use(logRequests)

	server := &Server{
		srvMux: srvMux,
	}
	server.srv = &http.Server{
		Addr:              net.JoinHostPort(address, port),
		Handler:           server,
		ReadHeaderTimeout: 2 * time.Second,
	}
	return server
}

// Start begins to listen and serve in the background.
func (s *Server) Start(context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrServerStarted
	}

	listener, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		s.started.Store(false)
		return err
	}
	s.listener = listener

	go func() {
		if err := s.srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("gateway serving stopped", "err", err)
		}
	}()
	log.Infow("gateway started", "addr", listener.Addr().String())
	return nil
}

// Stop gracefully shuts the Server down. Stopping a stopped Server is a no-op.
func (s *Server) Stop(ctx context.Context) error {
	if !s.started.CompareAndSwap(true, false) {
		return nil
	}

	if err := s.srv.Shutdown(ctx); err != nil {
		return err
	}
	s.listener = nil
	log.Info("gateway stopped")
	return nil
}

// RegisterMiddleware appends middlewares called before a request reaches its handler.
func (s *Server) RegisterMiddleware(middlewareFuncs ...mux.MiddlewareFunc) {
	s.srvMux.Use(middlewareFuncs...)
}

// RegisterHandlerFunc registers the handler for the pattern and method.
func (s *Server) RegisterHandlerFunc(pattern string, handlerFunc http.HandlerFunc, method string) {
	s.srvMux.HandleFunc(pattern, handlerFunc).Methods(method)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.srvMux.ServeHTTP(w, r)
}

// ListenAddr returns the address the Server listens on, empty if not started.
func (s *Server) ListenAddr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// statusRecorder remembers the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Debugw("served request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"took", time.Since(start),
		)
	})
}
