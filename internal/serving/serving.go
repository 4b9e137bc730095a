package serving

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gitlab.com/tachyons/spa-pages/internal/config"
	"gitlab.com/tachyons/spa-pages/internal/httperrors"
	"gitlab.com/tachyons/spa-pages/internal/httpfs"
	"gitlab.com/tachyons/spa-pages/internal/logging"
	"gitlab.com/tachyons/spa-pages/internal/resolver"
	"gitlab.com/tachyons/spa-pages/internal/ssi"
	"gitlab.com/tachyons/spa-pages/metrics"
)

// FileServer resolves request paths against the serving root and writes
// the resulting file, expanding include directives in HTML documents
// before transmission. Outcomes the resolver does not decide are handed
// to a default file server restricted to the root directory.
type FileServer struct {
	resolver *resolver.Resolver
	fallback http.Handler
}

// New builds a FileServer for the configured root directories.
func New(cfg *config.Config) (*FileServer, error) {
	fs, err := httpfs.NewFileSystemPath(cfg.General.RootDir)
	if err != nil {
		return nil, err
	}

	return &FileServer{
		resolver: &resolver.Resolver{
			RootDir: cfg.General.RootDir,
			SPARoot: cfg.General.SPARoot,
		},
		fallback: http.FileServer(fs),
	}, nil
}

func (s *FileServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res, err := s.resolver.Resolve(r.URL.Path)
	switch {
	case errors.Is(err, resolver.ErrDelegate):
		metrics.RequestsServed.WithLabelValues("delegated").Inc()
		s.fallback.ServeHTTP(w, r)
		return
	case errors.Is(err, resolver.ErrNotFound):
		metrics.RequestsServed.WithLabelValues("not_found").Inc()
		httperrors.Serve404(w)
		return
	}

	if err := s.serveFile(w, r, res); err != nil {
		// An open failure of the resolved file is answered like a missing
		// file, without retrying. serveFile only fails before headers are
		// written, so responding here is safe.
		logging.LogRequest(r).WithError(err).Debug("could not open resolved file")
		metrics.RequestsServed.WithLabelValues("not_found").Inc()
		httperrors.Serve404(w)
		return
	}

	if res.SPAFallback {
		metrics.RequestsServed.WithLabelValues("fallback").Inc()
	} else {
		metrics.RequestsServed.WithLabelValues("file").Inc()
	}
}

// serveFile writes the resolved file to the client. It returns an error
// only while the response can still be replaced, before any header is
// written. Once the body hand-off has started a failed write means the
// client went away; it is logged and never answered again.
func (s *FileServer) serveFile(w http.ResponseWriter, r *http.Request, res resolver.Resolution) error {
	file, err := os.Open(res.Path)
	if err != nil {
		return err
	}
	defer file.Close()

	fi, err := file.Stat()
	if err != nil {
		return err
	}

	contentType, err := detectContentType(res.Path)
	if err != nil {
		return err
	}

	metrics.ServedFileSize.Observe(float64(fi.Size()))

	if isHTML(contentType) {
		return s.serveExpandedHTML(w, r, file, res.Path, contentType)
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.FormatInt(fi.Size(), 10))
	w.WriteHeader(http.StatusOK)

	if r.Method != http.MethodHead {
		if _, err := io.CopyN(w, file, fi.Size()); err != nil {
			logging.LogRequest(r).WithError(err).Debug("could not write response body")
		}
	}

	return nil
}

// serveExpandedHTML reads the document fully, expands include directives
// relative to the document's directory and only then writes headers, so
// Content-Length always reflects the final byte count.
func (s *FileServer) serveExpandedHTML(w http.ResponseWriter, r *http.Request, file *os.File, fullPath, contentType string) error {
	content, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	expanded := []byte(ssi.Expand(string(content), filepath.Dir(fullPath)))

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(expanded)))
	w.WriteHeader(http.StatusOK)

	if r.Method != http.MethodHead {
		if _, err := w.Write(expanded); err != nil {
			logging.LogRequest(r).WithError(err).Debug("could not write response body")
		}
	}

	return nil
}

func isHTML(contentType string) bool {
	return strings.HasPrefix(contentType, "text/html")
}
