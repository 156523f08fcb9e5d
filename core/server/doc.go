// Package server hosts a RouteMap behind net/http. It provides two pieces:
// the Dispatcher, an http.Handler that builds a connection scope from each
// request, resolves it through the routing core and invokes the resolved
// handler; and the Server, a thin wrapper around http.Server with graceful
// shutdown, functional options, and environment-driven configuration.
//
//	routes := routemap.New[handler.Handler](
//		routemap.WithParamParser[handler.Handler](params.Parse),
//	)
//	// ... register routes ...
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	return srv.Start(ctx, server.NewDispatcher(routes))
//
// Websocket upgrade requests are detected on the way in and resolved as
// websocket scopes; the response writer handed to handlers supports
// http.Hijacker so upgrade libraries can take over the connection.
package server
