package static

import (
	"io/fs"
	"net/http"

	"github.com/dmitrymomot/koreannum/core/handler"
)

type fsConfig struct {
	stripPrefix  string
	subPath      string
	cacheControl string
}

// FSOption configures FS.
type FSOption func(*fsConfig)

// WithFSStripPrefix removes prefix from the URL path before the file lookup,
// so "/static/app.css" with prefix "/static" serves "app.css".
func WithFSStripPrefix(prefix string) FSOption {
	return func(c *fsConfig) {
		c.stripPrefix = prefix
	}
}

// WithSubFS serves only the given directory of the filesystem.
// The path uses forward slashes regardless of OS.
func WithSubFS(path string) FSOption {
	return func(c *fsConfig) {
		c.subPath = path
	}
}

// WithCacheControl sets the Cache-Control header on every response.
func WithCacheControl(value string) FSOption {
	return func(c *fsConfig) {
		c.cacheControl = value
	}
}

// FS creates a handler serving files from fsys, typically an embed.FS.
// Directory listings are disabled; a directory is served only through its
// index.html. Range requests and conditional headers are handled by
// http.FileServer.
//
// Panics at startup if the sub-path is invalid or the root cannot be opened.
//
//	r.Get("/static/", static.FS[*web.Context](assets,
//		static.WithSubFS("static"),
//		static.WithFSStripPrefix("/static"),
//	))
func FS[C handler.Context](fsys fs.FS, opts ...FSOption) handler.HandlerFunc[C] {
	cfg := &fsConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.subPath != "" {
		sub, err := fs.Sub(fsys, cfg.subPath)
		if err != nil {
			panic("static.FS: invalid sub-path '" + cfg.subPath + "': " + err.Error())
		}
		fsys = sub
	}

	if _, err := fsys.Open("."); err != nil {
		panic("static.FS: filesystem is not accessible: " + err.Error())
	}

	fileServer := http.FileServer(neuteredFileSystem{fs: http.FS(fsys)})
	if cfg.stripPrefix != "" {
		fileServer = http.StripPrefix(cfg.stripPrefix, fileServer)
	}

	return func(ctx C) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			if cfg.cacheControl != "" {
				w.Header().Set("Cache-Control", cfg.cacheControl)
			}
			fileServer.ServeHTTP(w, r)
			return nil
		}
	}
}
