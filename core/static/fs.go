package static

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/dmitrymomot/routemap/core/handler"
)

// fsConfig holds configuration for fs.FS serving.
type fsConfig struct {
	fs      fs.FS
	subPath string
}

// FSOption configures FS serving behavior.
type FSOption func(*fsConfig)

// WithSubFS serves files from a subdirectory within the fs.FS. Useful with
// embed.FS, where files keep their source-tree prefix.
func WithSubFS(path string) FSOption {
	return func(c *fsConfig) {
		c.subPath = path
	}
}

// FS creates a handler that serves files from an fs.FS (including embed.FS).
//
// The handler reads the request path from the scope, not the request URL:
// when mounted under a static path the router has already stripped the mount
// prefix into the scope path, so "/assets/app.js" under the mount "/assets"
// serves the file "app.js".
//
// Panics at startup if the sub-path from WithSubFS is invalid or the
// filesystem root is not accessible.
func FS(fsys fs.FS, opts ...FSOption) handler.Handler {
	config := &fsConfig{fs: fsys}

	for _, opt := range opts {
		opt(config)
	}

	if config.subPath != "" {
		sub, err := fs.Sub(fsys, config.subPath)
		if err != nil {
			panic("static.FS: invalid sub-path '" + config.subPath + "': " + err.Error())
		}
		config.fs = sub
	}

	// Fail fast on an inaccessible filesystem rather than 500 per request.
	if _, err := config.fs.Open("."); err != nil {
		panic("static.FS: filesystem is not accessible: " + err.Error())
	}

	fileServer := http.FileServer(neuteredFileSystem{fs: http.FS(config.fs)})

	return func(w http.ResponseWriter, r *http.Request, s *handler.Scope) error {
		r2 := r.Clone(r.Context())
		r2.URL.Path = s.Path
		if r2.URL.Path == "" || r2.URL.Path[0] != '/' {
			r2.URL.Path = "/" + r2.URL.Path
		}
		fileServer.ServeHTTP(w, r2)
		return nil
	}
}

// neuteredFileSystem wraps http.FileSystem to disable directory listing.
// Directories are only accessible when they contain an index.html file.
type neuteredFileSystem struct {
	fs http.FileSystem
}

func (nfs neuteredFileSystem) Open(path string) (http.File, error) {
	f, err := nfs.fs.Open(path)
	if err != nil {
		return nil, err
	}

	s, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if s.IsDir() {
		index := strings.TrimSuffix(path, "/") + "/index.html"
		if path == "/" || path == "" {
			index = "/index.html"
		}

		if _, err := nfs.fs.Open(index); err != nil {
			_ = f.Close()
			return nil, fs.ErrNotExist
		}
	}

	return f, nil
}
