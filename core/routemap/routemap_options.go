package routemap

import "log/slog"

// Option configures a RouteMap during creation.
type Option[H any] func(*RouteMap[H])

// WithMiddlewareBuilder sets the collaborator that wraps every handler before
// it is stored.
func WithMiddlewareBuilder[H any](build MiddlewareBuilder[H]) Option[H] {
	return func(m *RouteMap[H]) {
		if build != nil {
			m.wrap = build
		}
	}
}

// WithParamParser sets the collaborator that converts collected raw parameter
// values into the parsed object attached to the scope.
func WithParamParser[H any](parse ParamParser) Option[H] {
	return func(m *RouteMap[H]) {
		if parse != nil {
			m.parseParams = parse
		}
	}
}

// WithLogger sets a custom logger for route registration.
func WithLogger[H any](logger *slog.Logger) Option[H] {
	return func(m *RouteMap[H]) {
		if logger != nil {
			m.logger = logger
		}
	}
}
