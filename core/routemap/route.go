package routemap

// RouteKind discriminates the supported route declaration kinds.
type RouteKind uint8

const (
	// KindHTTP routes dispatch per HTTP method.
	KindHTTP RouteKind = iota
	// KindWebsocket routes carry a single handler under the websocket key.
	KindWebsocket
	// KindCatchall routes carry a single catch-all handler that services every
	// method and protocol.
	KindCatchall
)

// String returns the kind name for logging and error messages.
func (k RouteKind) String() string {
	switch k {
	case KindHTTP:
		return "http"
	case KindWebsocket:
		return "websocket"
	case KindCatchall:
		return "catchall"
	default:
		return "unknown"
	}
}

// ParamDef describes one declared path parameter. Full is the canonical
// full-text token exactly as written between the braces in the path template
// (e.g. "id:int" for "/articles/{id:int}"); it locates the parameter's
// position during insertion. Name is the key under which the parsed value is
// surfaced to handlers.
type ParamDef struct {
	Name string
	Full string
}

// Route is a single route declaration handed to RouteMap.AddRoute. Parameter
// syntax is parsed upstream: the router receives the template path together
// with the already-extracted parameter definitions and never interprets the
// tokens itself.
type Route[H any] struct {
	// Path is the route template, e.g. "/articles/{id:int}".
	Path string

	// Params lists the declared path parameters in template order.
	Params []ParamDef

	// Kind selects how the handlers below are interpreted.
	Kind RouteKind

	// Handlers maps upper-case HTTP methods to handlers. KindHTTP only.
	Handlers map[string]H

	// Handler is the single handler for KindWebsocket and KindCatchall routes.
	Handler H
}
