package routemap_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/routemap/core/handler"
	"github.com/dmitrymomot/routemap/core/routemap"
)

func httpScope(method, path string) *handler.Scope {
	return &handler.Scope{Type: handler.ScopeHTTP, Method: method, Path: path}
}

func wsScope(path string) *handler.Scope {
	return &handler.Scope{Type: handler.ScopeWebsocket, Path: path}
}

func TestResolvePlainRoutes(t *testing.T) {
	t.Parallel()

	m := routemap.New[string]()

	paths := []string{"/", "/users", "/users/profile", "/api/v1/posts"}
	for _, path := range paths {
		require.NoError(t, m.AddRoute(routemap.Route[string]{
			Path: path,
			Kind: routemap.KindHTTP,
			Handlers: map[string]string{
				http.MethodGet: "GET " + path,
			},
		}))
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			h, err := m.Resolve(httpScope(http.MethodGet, path))
			require.NoError(t, err)
			assert.Equal(t, "GET "+path, h)
		})
	}
}

func TestResolveTrailingSeparatorVariants(t *testing.T) {
	t.Parallel()

	m := routemap.New[string]()
	require.NoError(t, m.AddRoute(routemap.Route[string]{
		Path:     "/articles",
		Kind:     routemap.KindHTTP,
		Handlers: map[string]string{http.MethodGet: "list"},
	}))

	for _, path := range []string{"/articles", "/articles/", "//articles/"} {
		h, err := m.Resolve(httpScope(http.MethodGet, path))
		require.NoError(t, err, "path %q", path)
		assert.Equal(t, "list", h)
	}
}

func TestResolveParameterRoute(t *testing.T) {
	t.Parallel()

	m := routemap.New[string]()
	require.NoError(t, m.AddRoute(routemap.Route[string]{
		Path:     "/articles/{id:str}",
		Params:   []routemap.ParamDef{{Name: "id", Full: "id:str"}},
		Kind:     routemap.KindHTTP,
		Handlers: map[string]string{http.MethodGet: "article"},
	}))

	scope := httpScope(http.MethodGet, "/articles/42")
	h, err := m.Resolve(scope)
	require.NoError(t, err)
	assert.Equal(t, "article", h)
	assert.Equal(t, map[string]string{"id": "42"}, scope.PathParams)
}

func TestResolveNestedParameters(t *testing.T) {
	t.Parallel()

	m := routemap.New[string]()
	require.NoError(t, m.AddRoute(routemap.Route[string]{
		Path: "/users/{userID:str}/posts/{postID:str}",
		Params: []routemap.ParamDef{
			{Name: "userID", Full: "userID:str"},
			{Name: "postID", Full: "postID:str"},
		},
		Kind:     routemap.KindHTTP,
		Handlers: map[string]string{http.MethodGet: "post"},
	}))

	scope := httpScope(http.MethodGet, "/users/john/posts/hello-world")
	h, err := m.Resolve(scope)
	require.NoError(t, err)
	assert.Equal(t, "post", h)
	assert.Equal(t, map[string]string{"userID": "john", "postID": "hello-world"}, scope.PathParams)
}

func TestLiteralWinsOverPlaceholder(t *testing.T) {
	t.Parallel()

	m := routemap.New[string]()
	require.NoError(t, m.AddRoutes(
		routemap.Route[string]{
			Path:     "/users/{id:str}",
			Params:   []routemap.ParamDef{{Name: "id", Full: "id:str"}},
			Kind:     routemap.KindHTTP,
			Handlers: map[string]string{http.MethodGet: "by-id"},
		},
		routemap.Route[string]{
			Path:     "/users/me/{id:str}",
			Params:   []routemap.ParamDef{{Name: "id", Full: "id:str"}},
			Kind:     routemap.KindHTTP,
			Handlers: map[string]string{http.MethodGet: "me"},
		},
	))

	scope := httpScope(http.MethodGet, "/users/me/7")
	h, err := m.Resolve(scope)
	require.NoError(t, err)
	assert.Equal(t, "me", h)
	assert.Equal(t, map[string]string{"id": "7"}, scope.PathParams)

	scope = httpScope(http.MethodGet, "/users/jane")
	h, err = m.Resolve(scope)
	require.NoError(t, err)
	assert.Equal(t, "by-id", h)
	assert.Equal(t, map[string]string{"id": "jane"}, scope.PathParams)
}

func TestMethodDispatch(t *testing.T) {
	t.Parallel()

	m := routemap.New[string]()
	require.NoError(t, m.AddRoutes(
		routemap.Route[string]{
			Path:     "/x",
			Kind:     routemap.KindHTTP,
			Handlers: map[string]string{http.MethodGet: "get-x"},
		},
		routemap.Route[string]{
			Path:     "/x",
			Kind:     routemap.KindHTTP,
			Handlers: map[string]string{http.MethodPost: "post-x"},
		},
	))

	h, err := m.Resolve(httpScope(http.MethodGet, "/x"))
	require.NoError(t, err)
	assert.Equal(t, "get-x", h)

	h, err = m.Resolve(httpScope(http.MethodPost, "/x"))
	require.NoError(t, err)
	assert.Equal(t, "post-x", h)

	// A matched path with a missing method is method-not-allowed, not not-found.
	_, err = m.Resolve(httpScope(http.MethodDelete, "/x"))
	assert.ErrorIs(t, err, routemap.ErrMethodNotAllowed)
	assert.NotErrorIs(t, err, routemap.ErrNotFound)
}

func TestGetAnswersHead(t *testing.T) {
	t.Parallel()

	m := routemap.New[string]()
	require.NoError(t, m.AddRoute(routemap.Route[string]{
		Path:     "/reports",
		Kind:     routemap.KindHTTP,
		Handlers: map[string]string{http.MethodGet: "reports"},
	}))

	h, err := m.Resolve(httpScope(http.MethodHead, "/reports"))
	require.NoError(t, err)
	assert.Equal(t, "reports", h)
}

func TestExplicitHeadOverridesGetAlias(t *testing.T) {
	t.Parallel()

	m := routemap.New[string]()
	require.NoError(t, m.AddRoute(routemap.Route[string]{
		Path: "/reports",
		Kind: routemap.KindHTTP,
		Handlers: map[string]string{
			http.MethodGet:  "get-reports",
			http.MethodHead: "head-reports",
		},
	}))

	h, err := m.Resolve(httpScope(http.MethodHead, "/reports"))
	require.NoError(t, err)
	assert.Equal(t, "head-reports", h)
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	m := routemap.New[string]()
	require.NoError(t, m.AddRoute(routemap.Route[string]{
		Path:     "/known",
		Kind:     routemap.KindHTTP,
		Handlers: map[string]string{http.MethodGet: "known"},
	}))

	_, err := m.Resolve(httpScope(http.MethodGet, "/unknown"))
	assert.ErrorIs(t, err, routemap.ErrNotFound)

	_, err = m.Resolve(httpScope(http.MethodGet, "/known/deeper"))
	assert.ErrorIs(t, err, routemap.ErrNotFound)
}

func TestWebsocketDispatch(t *testing.T) {
	t.Parallel()

	m := routemap.New[string]()
	require.NoError(t, m.AddRoute(routemap.Route[string]{
		Path:    "/ws",
		Kind:    routemap.KindWebsocket,
		Handler: "ws-handler",
	}))

	h, err := m.Resolve(wsScope("/ws"))
	require.NoError(t, err)
	assert.Equal(t, "ws-handler", h)

	// An HTTP scope hitting a websocket-only entry misses on the method key.
	_, err = m.Resolve(httpScope(http.MethodGet, "/ws"))
	assert.ErrorIs(t, err, routemap.ErrMethodNotAllowed)
}

func TestNonHTTPMissIsNotFound(t *testing.T) {
	t.Parallel()

	m := routemap.New[string]()
	require.NoError(t, m.AddRoute(routemap.Route[string]{
		Path:     "/http-only",
		Kind:     routemap.KindHTTP,
		Handlers: map[string]string{http.MethodGet: "get"},
	}))

	_, err := m.Resolve(wsScope("/http-only"))
	assert.ErrorIs(t, err, routemap.ErrNotFound)
}

func TestCatchallRoute(t *testing.T) {
	t.Parallel()

	m := routemap.New[string]()
	require.NoError(t, m.AddRoute(routemap.Route[string]{
		Path:    "/app",
		Kind:    routemap.KindCatchall,
		Handler: "catchall",
	}))

	// A catch-all serves every method and protocol.
	for _, scope := range []*handler.Scope{
		httpScope(http.MethodGet, "/app"),
		httpScope(http.MethodDelete, "/app"),
		wsScope("/app"),
	} {
		h, err := m.Resolve(scope)
		require.NoError(t, err)
		assert.Equal(t, "catchall", h)
	}
}

func TestCatchallConflictsWithMethodRoute(t *testing.T) {
	t.Parallel()

	m := routemap.New[string]()
	require.NoError(t, m.AddRoute(routemap.Route[string]{
		Path:    "/ws",
		Kind:    routemap.KindCatchall,
		Handler: "catchall",
	}))

	err := m.AddRoute(routemap.Route[string]{
		Path:     "/ws",
		Kind:     routemap.KindHTTP,
		Handlers: map[string]string{http.MethodGet: "get"},
	})
	assert.ErrorIs(t, err, routemap.ErrCatchallConflict)
}

func TestCatchallReRegistrationReplacesHandler(t *testing.T) {
	t.Parallel()

	m := routemap.New[string]()
	require.NoError(t, m.AddRoute(routemap.Route[string]{
		Path:    "/app",
		Kind:    routemap.KindCatchall,
		Handler: "first",
	}))
	require.NoError(t, m.AddRoute(routemap.Route[string]{
		Path:    "/app",
		Kind:    routemap.KindCatchall,
		Handler: "second",
	}))

	h, err := m.Resolve(httpScope(http.MethodGet, "/app"))
	require.NoError(t, err)
	assert.Equal(t, "second", h)
}

func TestConflictingParamSetsFail(t *testing.T) {
	t.Parallel()

	m := routemap.New[string]()
	require.NoError(t, m.AddRoute(routemap.Route[string]{
		Path:     "/items/{id:int}",
		Params:   []routemap.ParamDef{{Name: "id", Full: "id:int"}},
		Kind:     routemap.KindHTTP,
		Handlers: map[string]string{http.MethodGet: "get"},
	}))

	err := m.AddRoute(routemap.Route[string]{
		Path:     "/items/{id:str}",
		Params:   []routemap.ParamDef{{Name: "id", Full: "id:str"}},
		Kind:     routemap.KindHTTP,
		Handlers: map[string]string{http.MethodPost: "post"},
	})
	assert.ErrorIs(t, err, routemap.ErrConflictingParams)
}

func TestUnknownRouteKind(t *testing.T) {
	t.Parallel()

	m := routemap.New[string]()
	err := m.AddRoute(routemap.Route[string]{
		Path: "/x",
		Kind: routemap.RouteKind(42),
	})
	assert.ErrorIs(t, err, routemap.ErrUnknownRouteKind)
}

func TestStaticPathResolution(t *testing.T) {
	t.Parallel()

	m := routemap.New[string]()
	m.AddStaticPath("/assets")
	require.NoError(t, m.AddRoute(routemap.Route[string]{
		Path:    "/assets",
		Kind:    routemap.KindCatchall,
		Handler: "files",
	}))

	scope := httpScope(http.MethodGet, "/assets/app.js")
	h, err := m.Resolve(scope)
	require.NoError(t, err)
	assert.Equal(t, "files", h)
	assert.Equal(t, "/app.js", scope.Path, "static prefix must be stripped")

	// Deeper sub-paths are served by the same handler.
	scope = httpScope(http.MethodGet, "/assets/css/site.css")
	h, err = m.Resolve(scope)
	require.NoError(t, err)
	assert.Equal(t, "files", h)
	assert.Equal(t, "/css/site.css", scope.Path)
}

func TestStaticRootPathIsNotRewritten(t *testing.T) {
	t.Parallel()

	m := routemap.New[string]()
	m.AddStaticPath("/")
	require.NoError(t, m.AddRoute(routemap.Route[string]{
		Path:    "/",
		Kind:    routemap.KindCatchall,
		Handler: "root-files",
	}))

	scope := httpScope(http.MethodGet, "/site.css")
	h, err := m.Resolve(scope)
	require.NoError(t, err)
	assert.Equal(t, "root-files", h)
	assert.Equal(t, "/site.css", scope.Path)
}

func TestStaticPathConstraints(t *testing.T) {
	t.Parallel()

	t.Run("requires catch-all kind", func(t *testing.T) {
		t.Parallel()

		m := routemap.New[string]()
		m.AddStaticPath("/assets")
		err := m.AddRoute(routemap.Route[string]{
			Path:     "/assets",
			Kind:     routemap.KindHTTP,
			Handlers: map[string]string{http.MethodGet: "get"},
		})
		assert.ErrorIs(t, err, routemap.ErrImproperlyConfigured)
	})

	t.Run("rejects path parameters", func(t *testing.T) {
		t.Parallel()

		m := routemap.New[string]()
		m.AddStaticPath("/assets/{v:str}")
		err := m.AddRoute(routemap.Route[string]{
			Path:    "/assets/{v:str}",
			Params:  []routemap.ParamDef{{Name: "v", Full: "v:str"}},
			Kind:    routemap.KindCatchall,
			Handler: "files",
		})
		assert.ErrorIs(t, err, routemap.ErrImproperlyConfigured)
	})
}

func TestStaticReDeclarationIsIdempotent(t *testing.T) {
	t.Parallel()

	m := routemap.New[string]()
	m.AddStaticPath("/assets")
	require.NoError(t, m.AddRoute(routemap.Route[string]{
		Path:    "/assets",
		Kind:    routemap.KindCatchall,
		Handler: "files",
	}))

	// Re-declaring the same static mount is tolerated and keeps the
	// original handler.
	require.NoError(t, m.AddRoute(routemap.Route[string]{
		Path:    "/assets",
		Kind:    routemap.KindCatchall,
		Handler: "other-files",
	}))

	scope := httpScope(http.MethodGet, "/assets/app.js")
	h, err := m.Resolve(scope)
	require.NoError(t, err)
	assert.Equal(t, "files", h)
}

func TestParameterRouteBesideStaticMount(t *testing.T) {
	t.Parallel()

	m := routemap.New[string]()
	m.AddStaticPath("/assets")
	require.NoError(t, m.AddRoutes(
		routemap.Route[string]{
			Path:    "/assets",
			Kind:    routemap.KindCatchall,
			Handler: "files",
		},
		routemap.Route[string]{
			Path:     "/assets/{id:str}",
			Params:   []routemap.ParamDef{{Name: "id", Full: "id:str"}},
			Kind:     routemap.KindHTTP,
			Handlers: map[string]string{http.MethodGet: "by-id"},
		},
	))

	// A placeholder child at the same depth wins over the static fallback.
	scope := httpScope(http.MethodGet, "/assets/42")
	h, err := m.Resolve(scope)
	require.NoError(t, err)
	assert.Equal(t, "by-id", h)
	assert.Equal(t, "/assets/42", scope.Path, "no rewrite without a static match")

	// The walk is greedy: once the placeholder consumed a segment there is
	// no backtracking into the static fallback.
	_, err = m.Resolve(httpScope(http.MethodGet, "/assets/css/site.css"))
	assert.ErrorIs(t, err, routemap.ErrNotFound)
}

func TestStaticPathSet(t *testing.T) {
	t.Parallel()

	m := routemap.New[string]()

	assert.False(t, m.IsStaticPath("/assets"))
	m.AddStaticPath("/assets/")
	assert.True(t, m.IsStaticPath("/assets"), "membership is checked on normalized paths")
	assert.True(t, m.RemoveStaticPath("/assets"))
	assert.False(t, m.RemoveStaticPath("/assets"))
	assert.False(t, m.IsStaticPath("/assets"))
}

func TestMiddlewareBuilderWrapsStoredHandlers(t *testing.T) {
	t.Parallel()

	m := routemap.New[string](
		routemap.WithMiddlewareBuilder[string](func(route routemap.Route[string], h string) string {
			return "wrapped(" + h + ")"
		}),
	)

	require.NoError(t, m.AddRoute(routemap.Route[string]{
		Path:     "/x",
		Kind:     routemap.KindHTTP,
		Handlers: map[string]string{http.MethodGet: "get-x"},
	}))

	h, err := m.Resolve(httpScope(http.MethodGet, "/x"))
	require.NoError(t, err)
	assert.Equal(t, "wrapped(get-x)", h)
}

func TestCustomParamParser(t *testing.T) {
	t.Parallel()

	m := routemap.New[string](
		routemap.WithParamParser[string](func(defs []routemap.ParamDef, values []string) (any, error) {
			parsed := make(map[string]any, len(defs))
			for i, def := range defs {
				parsed[def.Name] = "parsed:" + values[i]
			}
			return parsed, nil
		}),
	)

	require.NoError(t, m.AddRoute(routemap.Route[string]{
		Path:     "/items/{id:str}",
		Params:   []routemap.ParamDef{{Name: "id", Full: "id:str"}},
		Kind:     routemap.KindHTTP,
		Handlers: map[string]string{http.MethodGet: "item"},
	}))

	scope := httpScope(http.MethodGet, "/items/9")
	_, err := m.Resolve(scope)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": "parsed:9"}, scope.PathParams)
}
