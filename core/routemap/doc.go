// Package routemap provides a request-path router built on a prefix tree of
// path segments. Route declarations are ingested during a build phase and
// resolved to handlers in better-than-linear time at request time.
//
// # Features
//
//   - Plain-route table: parameter-free, non-static paths resolve with a
//     single map lookup instead of a trie descent
//   - Placeholder segments: a declared parameter position matches any literal
//     value, collected positionally during traversal
//   - Static-prefix mounts: anything below a registered static path resolves
//     to one catch-all handler, with the prefix stripped from the scope path
//   - Per-method/per-protocol dispatch with distinct not-found and
//     method-not-allowed outcomes
//   - Conflict detection when two declarations collide on the same position
//   - Opaque handlers via a type parameter; the router never calls them
//
// # Basic Usage
//
//	routes := routemap.New[handler.Handler]()
//
//	err := routes.AddRoutes(
//		routemap.Route[handler.Handler]{
//			Path: "/articles",
//			Kind: routemap.KindHTTP,
//			Handlers: map[string]handler.Handler{
//				http.MethodGet:  listArticles,
//				http.MethodPost: createArticle,
//			},
//		},
//		routemap.Route[handler.Handler]{
//			Path:   "/articles/{id:int}",
//			Params: []routemap.ParamDef{{Name: "id", Full: "id:int"}},
//			Kind:   routemap.KindHTTP,
//			Handlers: map[string]handler.Handler{
//				http.MethodGet: getArticle,
//			},
//		},
//	)
//
// # Static Paths
//
// Register the prefix first, then declare a catch-all route for it:
//
//	routes.AddStaticPath("/assets")
//	routes.AddRoute(routemap.Route[handler.Handler]{
//		Path:    "/assets",
//		Kind:    routemap.KindCatchall,
//		Handler: static.FS(assetsFS),
//	})
//
// Resolving "/assets/app.js" yields the catch-all handler with the scope path
// rewritten to "/app.js".
//
// # Concurrency
//
// All mutation happens single-threaded during the build phase. Once routes
// are registered, Resolve is read-only and safe for unbounded concurrent
// callers. No operation blocks or performs I/O.
package routemap
