package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/dmitrymomot/routemap/core/handler"
	"github.com/dmitrymomot/routemap/core/routemap"
)

// Dispatcher is the hosting dispatch loop: an http.Handler that builds a
// connection scope from each request, resolves it through the route map, and
// invokes the resolved handler with the scope the router populated.
type Dispatcher struct {
	routes       *routemap.RouteMap[handler.Handler]
	errorHandler handler.ErrorHandler
	logger       *slog.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithErrorHandler sets a custom error handler for dispatch failures.
func WithErrorHandler(h handler.ErrorHandler) DispatcherOption {
	return func(d *Dispatcher) {
		if h != nil {
			d.errorHandler = h
		}
	}
}

// WithDispatcherLogger sets a custom logger for the dispatcher.
func WithDispatcherLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDispatcher creates a Dispatcher serving the given route map.
// Panics if routes is nil: a dispatcher without routes is a programming
// error that should fail at startup.
func NewDispatcher(routes *routemap.RouteMap[handler.Handler], opts ...DispatcherOption) *Dispatcher {
	if routes == nil {
		panic(ErrNilRouteMap)
	}

	d := &Dispatcher{
		routes:       routes,
		errorHandler: defaultErrorHandler,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// ServeHTTP implements http.Handler.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ww := newResponseWriter(w)

	scope := &handler.Scope{
		Type:   handler.ScopeHTTP,
		Method: r.Method,
		Path:   r.URL.Path,
	}
	if websocket.IsWebSocketUpgrade(r) {
		scope.Type = handler.ScopeWebsocket
	}

	h, err := d.routes.Resolve(scope)
	if err != nil {
		d.errorHandler(ww, r, err)
		return
	}

	// A static match rewrites the scope path; mirror it onto the request so
	// path-based stdlib helpers see the same view as the handler.
	if scope.Path != r.URL.Path {
		r = r.Clone(r.Context())
		r.URL.Path = scope.Path
	}

	if err := h(ww, r, scope); err != nil {
		if ww.Written() {
			d.logger.Error("handler error after response written",
				"error", err,
				"path", scope.Path,
				"method", scope.Method,
				"status", ww.Status(),
			)
			return
		}
		d.errorHandler(ww, r, err)
	}
}

// defaultErrorHandler maps routing outcomes to wire statuses.
func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	if ww, ok := w.(*responseWriter); ok && ww.Written() {
		return
	}

	switch {
	case errors.Is(err, routemap.ErrNotFound):
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	case errors.Is(err, routemap.ErrMethodNotAllowed):
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	default:
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
