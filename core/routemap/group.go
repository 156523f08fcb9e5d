package routemap

import (
	"fmt"
	"slices"
)

// websocketKey is the dispatch-table key for websocket handlers. Any
// non-HTTP scope resolves through it.
const websocketKey = "websocket"

// HandlerGroup is the bundle of handler(s) and metadata reachable at one
// trie node or plain-route entry. Exactly one of the three variants below
// lives at any entry; conflicting declarations are rejected at build time.
type HandlerGroup[H any] interface {
	// ParamDefs returns the parameter definitions recorded for the entry.
	ParamDefs() []ParamDef

	handlerGroup()
}

// StaticGroup serves any sub-path beneath Path with a single handler. The
// recorded path is stripped from matched request paths so the handler sees a
// path relative to the asset root.
type StaticGroup[H any] struct {
	Path    string
	Handler H
}

// CatchallGroup holds one handler that services every method and protocol.
type CatchallGroup[H any] struct {
	Params  []ParamDef
	Handler H
}

// DispatchGroup holds a per-method/per-protocol dispatch table keyed by
// upper-case HTTP method or the websocket key.
type DispatchGroup[H any] struct {
	Params   []ParamDef
	Handlers map[string]H
}

func (g *StaticGroup[H]) ParamDefs() []ParamDef   { return nil }
func (g *CatchallGroup[H]) ParamDefs() []ParamDef { return g.Params }
func (g *DispatchGroup[H]) ParamDefs() []ParamDef { return g.Params }

func (*StaticGroup[H]) handlerGroup()   {}
func (*CatchallGroup[H]) handlerGroup() {}
func (*DispatchGroup[H]) handlerGroup() {}

// mergeGroups resolves two declarations terminating at the same entry. It
// mutates and returns the existing group for compatible unions and fails for
// structural conflicts. Declaration order only matters for overwriting within
// compatible unions, never for resolving genuine conflicts.
func mergeGroups[H any](existing, incoming HandlerGroup[H]) (HandlerGroup[H], error) {
	switch cur := existing.(type) {
	case *StaticGroup[H]:
		// Re-declaring the same static mount is idempotent.
		if _, ok := incoming.(*StaticGroup[H]); ok {
			return cur, nil
		}
		return nil, ErrStaticConflict

	case *CatchallGroup[H]:
		switch in := incoming.(type) {
		case *StaticGroup[H]:
			return nil, ErrStaticConflict
		case *CatchallGroup[H]:
			if !slices.Equal(cur.Params, in.Params) {
				return nil, ErrConflictingParams
			}
			// A catch-all serves every scope, so only one can be meaningful;
			// re-registration replaces the handler.
			cur.Handler = in.Handler
			return cur, nil
		case *DispatchGroup[H]:
			return nil, ErrCatchallConflict
		}

	case *DispatchGroup[H]:
		switch in := incoming.(type) {
		case *StaticGroup[H]:
			return nil, ErrStaticConflict
		case *CatchallGroup[H]:
			return nil, ErrCatchallConflict
		case *DispatchGroup[H]:
			if !slices.Equal(cur.Params, in.Params) {
				return nil, ErrConflictingParams
			}
			for key, h := range in.Handlers {
				cur.Handlers[key] = h
			}
			return cur, nil
		}
	}

	return nil, fmt.Errorf("%w: cannot merge %T into %T", ErrUnknownRouteKind, incoming, existing)
}
