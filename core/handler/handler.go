package handler

import "net/http"

// Handler serves a single resolved connection. The routing core stores
// handlers without calling them; the hosting server invokes the one returned
// by a resolve with the scope the router populated.
type Handler func(w http.ResponseWriter, r *http.Request, s *Scope) error

// Middleware wraps handlers to add cross-cutting functionality.
type Middleware func(next Handler) Handler

// ErrorHandler handles errors surfaced during request dispatch.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Chain wraps h with the given middlewares so that the first middleware is
// the outermost one.
func Chain(h Handler, middlewares ...Middleware) Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
