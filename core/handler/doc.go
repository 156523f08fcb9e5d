// Package handler defines the contracts shared between the routing core and
// the hosting dispatch loop: the connection Scope, the Handler function type,
// and the middleware and error-handling abstractions built on top of it.
//
// The routing core (core/routemap) stores handlers as opaque values and never
// invokes them; only the hosting server calls a Handler, passing it the Scope
// the router resolved and mutated.
//
// # Scope
//
// A Scope describes one inbound connection. The router reads its Path, Type
// and Method during resolution, rewrites Path when a static-asset prefix is
// stripped, and assigns PathParams on every successful resolve:
//
//	scope := &handler.Scope{
//		Type:   handler.ScopeHTTP,
//		Method: r.Method,
//		Path:   r.URL.Path,
//	}
//	h, err := routes.Resolve(scope)
//
// # Handlers and middleware
//
//	func hello(w http.ResponseWriter, r *http.Request, s *handler.Scope) error {
//		_, err := fmt.Fprintf(w, "hello %v", s.PathParams)
//		return err
//	}
//
//	logged := func(next handler.Handler) handler.Handler {
//		return func(w http.ResponseWriter, r *http.Request, s *handler.Scope) error {
//			slog.Info("request", "path", s.Path)
//			return next(w, r, s)
//		}
//	}
package handler
