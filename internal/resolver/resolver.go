package resolver

import (
	"errors"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var (
	// ErrNotFound means the request must be answered with a plain 404 and
	// the message "File not found". No other fallback applies.
	ErrNotFound = errors.New("file not found")

	// ErrDelegate means the resolver makes no decision for this path and
	// the default file serving behavior applies: directory handling for
	// index-less directories and not-found handling for missing paths
	// without an .html extension.
	ErrDelegate = errors.New("delegated to default file serving")
)

// indexPages are probed in order inside a requested directory. index.html
// wins when both exist.
var indexPages = []string{"index.html", "index.htm"}

// Resolution is the outcome of mapping a request path to a file on disk.
type Resolution struct {
	// Path is the filesystem path of the file to serve.
	Path string

	// SPAFallback is true when Path is the fallback index.html rather
	// than the requested resource.
	SPAFallback bool
}

// Resolver maps decoded request paths to files below RootDir. SPARoot
// holds the index.html served in place of missing .html resources, so
// client side routers can take over the path. It is configured
// explicitly instead of being read from the process working directory,
// and may differ from RootDir.
//
// A Resolver holds no mutable state and is safe for concurrent use. For
// an unchanged filesystem, Resolve always returns the same outcome for
// the same path.
type Resolver struct {
	RootDir string
	SPARoot string
}

// Resolve maps a decoded URL path to a concrete file. The caller is
// responsible for percent-decoding and for normalizing traversal out of
// the root; Resolve joins the cleaned path below RootDir.
func (rv *Resolver) Resolve(urlPath string) (Resolution, error) {
	fullPath := filepath.Join(rv.RootDir, filepath.FromSlash(path.Clean("/"+urlPath)))

	fi, err := os.Stat(fullPath)
	if err == nil && fi.IsDir() {
		indexPath, ok := rv.indexPage(fullPath)
		if !ok {
			return Resolution{}, ErrDelegate
		}

		return Resolution{Path: indexPath}, nil
	}

	if err != nil {
		if !strings.HasSuffix(urlPath, ".html") {
			return Resolution{}, ErrDelegate
		}

		fallback := filepath.Join(rv.SPARoot, "index.html")
		if _, err := os.Stat(fallback); err != nil {
			return Resolution{}, ErrNotFound
		}

		return Resolution{Path: fallback, SPAFallback: true}, nil
	}

	return Resolution{Path: fullPath}, nil
}

func (rv *Resolver) indexPage(dir string) (string, bool) {
	for _, page := range indexPages {
		indexPath := filepath.Join(dir, page)
		if _, err := os.Stat(indexPath); err == nil {
			return indexPath, true
		}
	}

	return "", false
}
