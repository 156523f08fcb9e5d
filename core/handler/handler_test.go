package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/routemap/core/handler"
)

func TestChainOrder(t *testing.T) {
	t.Parallel()

	var order []string

	tag := func(name string) handler.Middleware {
		return func(next handler.Handler) handler.Handler {
			return func(w http.ResponseWriter, r *http.Request, s *handler.Scope) error {
				order = append(order, name)
				return next(w, r, s)
			}
		}
	}

	h := handler.Chain(func(w http.ResponseWriter, r *http.Request, s *handler.Scope) error {
		order = append(order, "handler")
		return nil
	}, tag("first"), tag("second"), tag("third"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, h(httptest.NewRecorder(), req, &handler.Scope{Type: handler.ScopeHTTP, Method: http.MethodGet, Path: "/"}))

	assert.Equal(t, []string{"first", "second", "third", "handler"}, order)
}

func TestChainWithoutMiddlewares(t *testing.T) {
	t.Parallel()

	called := false
	h := handler.Chain(func(w http.ResponseWriter, r *http.Request, s *handler.Scope) error {
		called = true
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, h(httptest.NewRecorder(), req, &handler.Scope{Type: handler.ScopeHTTP, Method: http.MethodGet, Path: "/"}))
	assert.True(t, called)
}

func TestChainShortCircuit(t *testing.T) {
	t.Parallel()

	blocker := func(next handler.Handler) handler.Handler {
		return func(w http.ResponseWriter, r *http.Request, s *handler.Scope) error {
			w.WriteHeader(http.StatusForbidden)
			return nil
		}
	}

	reached := false
	h := handler.Chain(func(w http.ResponseWriter, r *http.Request, s *handler.Scope) error {
		reached = true
		return nil
	}, blocker)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, h(rec, req, &handler.Scope{Type: handler.ScopeHTTP, Method: http.MethodGet, Path: "/"}))

	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
