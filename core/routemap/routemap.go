package routemap

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/routemap/core/handler"
)

// ParamParser converts the parameter definitions recorded at a matched entry
// and the raw values collected during traversal into the parsed parameter
// object attached to the scope. The router treats the result as opaque.
type ParamParser func(defs []ParamDef, values []string) (any, error)

// MiddlewareBuilder wraps a raw handler before the router stores it. The
// router stores the wrapped handler verbatim and does not know or care what
// the wrapping does.
type MiddlewareBuilder[H any] func(route Route[H], h H) H

// RouteMap resolves request paths to handlers. Parameter-free, non-static
// paths live in a plain-route table for constant-time lookup; parameterized
// and static-prefix paths descend a trie of path segments.
//
// A RouteMap is built single-threaded via AddRoute/AddStaticPath, then frozen:
// Resolve touches no shared mutable state and is safe for unbounded
// concurrent callers once registration is done.
type RouteMap[H any] struct {
	root        *node[H]
	plainRoutes map[string]HandlerGroup[H]
	staticPaths map[string]struct{}
	wrap        MiddlewareBuilder[H]
	parseParams ParamParser
	logger      *slog.Logger
}

// New creates an empty RouteMap with the given options.
func New[H any](opts ...Option[H]) *RouteMap[H] {
	m := &RouteMap[H]{
		root:        newNode[H](),
		plainRoutes: make(map[string]HandlerGroup[H]),
		staticPaths: make(map[string]struct{}),
		parseParams: defaultParamParser,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// defaultParamParser maps parameter names to their raw string values by
// position. Used when no ParamParser is configured.
func defaultParamParser(defs []ParamDef, values []string) (any, error) {
	params := make(map[string]string, len(defs))
	for i, def := range defs {
		if i < len(values) {
			params[def.Name] = values[i]
		}
	}
	return params, nil
}

// AddStaticPath records path as a static prefix. Must be called before the
// owning catch-all route is declared; set membership alone does not touch
// the tree.
func (m *RouteMap[H]) AddStaticPath(path string) {
	m.staticPaths[NormalizePath(path)] = struct{}{}
}

// RemoveStaticPath removes path from the static-path set and reports whether
// it was present.
func (m *RouteMap[H]) RemoveStaticPath(path string) bool {
	path = NormalizePath(path)
	_, ok := m.staticPaths[path]
	delete(m.staticPaths, path)
	return ok
}

// IsStaticPath reports whether path is registered as a static prefix.
func (m *RouteMap[H]) IsStaticPath(path string) bool {
	_, ok := m.staticPaths[NormalizePath(path)]
	return ok
}

// AddRoute registers a single route declaration. Conflicting declarations at
// the same position fail with a build-time error; the map stays structurally
// valid but does not contain the rejected route.
func (m *RouteMap[H]) AddRoute(route Route[H]) error {
	path := NormalizePath(route.Path)
	isStatic := m.IsStaticPath(path)

	group, err := m.buildGroup(route, path, isStatic)
	if err != nil {
		return err
	}

	if err := m.insert(path, route.Params, isStatic, group); err != nil {
		return err
	}

	m.logger.Debug("route added", "path", path, "kind", route.Kind.String(), "static", isStatic)
	return nil
}

// AddRoutes registers declarations in order, stopping at the first error.
func (m *RouteMap[H]) AddRoutes(routes ...Route[H]) error {
	for _, route := range routes {
		if err := m.AddRoute(route); err != nil {
			return err
		}
	}
	return nil
}

// buildGroup constructs the handler group variant for a declaration,
// validating static-route constraints eagerly.
func (m *RouteMap[H]) buildGroup(route Route[H], path string, isStatic bool) (HandlerGroup[H], error) {
	if isStatic && route.Kind != KindCatchall {
		return nil, fmt.Errorf("%w: static path %q requires a catch-all route", ErrImproperlyConfigured, path)
	}

	switch route.Kind {
	case KindHTTP:
		handlers := make(map[string]H, len(route.Handlers)+1)
		for method, h := range route.Handlers {
			handlers[strings.ToUpper(method)] = m.wrapHandler(route, h)
		}
		// GET routes answer HEAD as well, unless HEAD is registered explicitly.
		if h, ok := handlers[http.MethodGet]; ok {
			if _, ok := handlers[http.MethodHead]; !ok {
				handlers[http.MethodHead] = h
			}
		}
		return &DispatchGroup[H]{Params: route.Params, Handlers: handlers}, nil

	case KindWebsocket:
		return &DispatchGroup[H]{
			Params:   route.Params,
			Handlers: map[string]H{websocketKey: m.wrapHandler(route, route.Handler)},
		}, nil

	case KindCatchall:
		h := m.wrapHandler(route, route.Handler)
		if isStatic {
			if len(route.Params) > 0 {
				return nil, fmt.Errorf("%w: static path %q cannot declare path parameters", ErrImproperlyConfigured, path)
			}
			return &StaticGroup[H]{Path: path, Handler: h}, nil
		}
		return &CatchallGroup[H]{Params: route.Params, Handler: h}, nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownRouteKind, route.Kind)
	}
}

func (m *RouteMap[H]) wrapHandler(route Route[H], h H) H {
	if m.wrap == nil {
		return h
	}
	return m.wrap(route, h)
}

// insert places the group at its terminal position: parameterized and static
// paths descend the trie, everything else goes to the plain-route table.
func (m *RouteMap[H]) insert(path string, defs []ParamDef, isStatic bool, group HandlerGroup[H]) error {
	if len(defs) > 0 || isStatic {
		terminal := m.root.descend(splitPath(path), defs)
		merged, err := m.installGroup(terminal.group, group, path)
		if err != nil {
			return err
		}
		terminal.group = merged
		return nil
	}

	merged, err := m.installGroup(m.plainRoutes[path], group, path)
	if err != nil {
		return err
	}
	m.plainRoutes[path] = merged
	return nil
}

func (m *RouteMap[H]) installGroup(existing, incoming HandlerGroup[H], path string) (HandlerGroup[H], error) {
	if existing == nil {
		return incoming, nil
	}
	merged, err := mergeGroups[H](existing, incoming)
	if err != nil {
		return nil, fmt.Errorf("%w: path %q", err, path)
	}
	return merged, nil
}

// Resolve normalizes the scope's path, locates the matching handler group,
// rewrites the scope path on a static-prefix match, attaches parsed path
// parameters, and dispatches by group kind. HTTP scopes missing a method
// entry fail with ErrMethodNotAllowed; non-HTTP scopes missing a websocket
// entry fail with ErrNotFound.
func (m *RouteMap[H]) Resolve(scope *handler.Scope) (H, error) {
	var zero H

	path := NormalizePath(scope.Path)

	group, values, rewritten, err := m.find(path)
	if err != nil {
		return zero, err
	}
	if rewritten != "" {
		scope.Path = rewritten
	}

	params, err := m.parseParams(group.ParamDefs(), values)
	if err != nil {
		return zero, err
	}
	scope.PathParams = params

	switch g := group.(type) {
	case *StaticGroup[H]:
		return g.Handler, nil
	case *CatchallGroup[H]:
		return g.Handler, nil
	case *DispatchGroup[H]:
		key := websocketKey
		if scope.Type == handler.ScopeHTTP {
			key = scope.Method
		}
		h, ok := g.Handlers[key]
		if !ok {
			if scope.Type == handler.ScopeHTTP {
				return zero, fmt.Errorf("%w: %s %s", ErrMethodNotAllowed, scope.Method, path)
			}
			return zero, ErrNotFound
		}
		return h, nil
	}

	return zero, ErrNotFound
}

// find checks the plain-route table first, then walks the trie.
func (m *RouteMap[H]) find(path string) (HandlerGroup[H], []string, string, error) {
	if group, ok := m.plainRoutes[path]; ok {
		return group, nil, "", nil
	}
	return m.root.find(path)
}

// Reset clears all routes and static paths so the map can be rebuilt. The
// trie is drained iteratively; see node.drain.
func (m *RouteMap[H]) Reset() {
	m.root.drain()
	m.root = newNode[H]()
	m.plainRoutes = make(map[string]HandlerGroup[H])
	m.staticPaths = make(map[string]struct{})
}
