// Based on https://golang.org/src/net/http/fs.go

package httpfs

import (
	"errors"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gitlab.com/gitlab-org/labkit/log"
)

var errInvalidChar = errors.New("http: invalid character in file path")

// fileSystemPath implements the http.FileSystem interface restricted to
// a single root directory. It backs the default file server that handles
// requests the path resolver delegates: index-less directories and
// missing paths without an .html extension.
type fileSystemPath struct {
	root string
}

// NewFileSystemPath creates an http.FileSystem that only opens files
// below root.
func NewFileSystemPath(root string) (http.FileSystem, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	return &fileSystemPath{root: absRoot}, nil
}

// Open a file by name if it is located inside the root directory
func (p *fileSystemPath) Open(name string) (http.File, error) {
	// taken from http.Dir#open https://golang.org/src/net/http/fs.go?s=2108:2152#L70
	if filepath.Separator != '/' && strings.ContainsRune(name, filepath.Separator) {
		return nil, errInvalidChar
	}

	absPath := filepath.Join(p.root, filepath.FromSlash(path.Clean("/"+name)))
	if absPath != p.root && !strings.HasPrefix(absPath, p.root+string(filepath.Separator)) {
		log.WithError(os.ErrPermission).Errorf("requested filepath %q not inside root path %q", absPath, p.root)

		// os.ErrPermission is converted to http.StatusForbidden
		// https://github.com/golang/go/blob/release-branch.go1.15/src/net/http/fs.go#L635
		return nil, os.ErrPermission
	}

	return os.Open(absPath)
}
