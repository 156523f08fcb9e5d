package handler

// Scope types understood by the dispatch loop. Any non-HTTP scope is routed
// through the "websocket" dispatch key.
const (
	ScopeHTTP      = "http"
	ScopeWebsocket = "websocket"
)

// Scope describes a single inbound connection for the lifetime of a request.
// It is created by the hosting server, mutated by the router during
// resolution, and handed to the resolved handler.
type Scope struct {
	// Type is the connection protocol type, e.g. ScopeHTTP or ScopeWebsocket.
	Type string

	// Method is the HTTP method. Empty for non-HTTP scopes.
	Method string

	// Path is the request path. The router rewrites it when a static-asset
	// prefix is stripped, so handlers must read the path from here rather
	// than from the original request URL.
	Path string

	// PathParams holds the parsed path parameters. It is assigned by the
	// router on every successful resolve; the concrete type is whatever the
	// configured parameter parser returns (map[string]string by default).
	PathParams any
}
