package routemap

import "strings"

// NormalizePath returns the canonical form of a path: surrounding whitespace
// trimmed, runs of slashes collapsed, a leading slash enforced, and a single
// trailing slash stripped unless the whole path is the root. The empty path
// normalizes to "/". Normalizing an already-normalized path is a no-op.
func NormalizePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return "/"
	}
	if path[0] != '/' {
		path = "/" + path
	}
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}
	return path
}

// splitPath splits a normalized path into its non-empty segments. The root
// path yields no segments.
func splitPath(path string) []string {
	if path == "/" {
		return nil
	}
	segments := make([]string, 0, strings.Count(path, "/"))
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
