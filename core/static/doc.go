// Package static provides an asset-serving handler designed to sit behind a
// static-path mount in the routing core. The router strips the mount prefix
// from the scope path before the handler runs, so the handler serves files
// relative to its filesystem root.
//
//	//go:embed assets/*
//	var assetsFS embed.FS
//
//	routes.AddStaticPath("/assets")
//	routes.AddRoute(routemap.Route[handler.Handler]{
//		Path:    "/assets",
//		Kind:    routemap.KindCatchall,
//		Handler: static.FS(assetsFS, static.WithSubFS("assets")),
//	})
//
// Directory listing is disabled: a directory is only served when it contains
// an index.html.
package static
