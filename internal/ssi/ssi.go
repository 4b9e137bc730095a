// Package ssi implements the restricted server side include form
// supported for served HTML documents:
//
//	<!-- #include virtual="fragment.html" -->
//
// Only the literal file include is handled. Expressions, conditionals and
// variables are not part of the syntax.
package ssi

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"

	"gitlab.com/tachyons/spa-pages/metrics"
)

// directiveRe detects the literal tag syntax only: optional whitespace
// around #include and before -->, a value without double quotes. It is
// not a general HTML parser and does not handle nested comments or
// directives split across chunks.
var directiveRe = regexp.MustCompile(`<!--\s*#include\s+virtual="([^"]+)"\s*-->`)

// Expand replaces every include directive in content with the referenced
// file read relative to baseDir. Expansion is a single pass over the
// document: directives inside included files are inserted as literal
// text, which keeps the work bounded and makes circular includes
// harmless.
//
// Expansion never fails the request. A missing or irregular include file
// becomes a "File not found" comment, a failed read becomes a comment
// carrying the error text. All bytes outside matched directives are
// preserved exactly.
func Expand(content, baseDir string) string {
	return directiveRe.ReplaceAllStringFunc(content, func(directive string) string {
		value := directiveRe.FindStringSubmatch(directive)[1]
		if decoded, err := url.PathUnescape(value); err == nil {
			value = decoded
		}

		includePath := filepath.Join(baseDir, filepath.FromSlash(value))

		fi, err := os.Stat(includePath)
		if err != nil || !fi.Mode().IsRegular() {
			metrics.IncludeFailures.WithLabelValues("missing").Inc()
			return fmt.Sprintf("<!-- File not found: %s -->", includePath)
		}

		included, err := os.ReadFile(includePath)
		if err != nil {
			metrics.IncludeFailures.WithLabelValues("read_error").Inc()
			return fmt.Sprintf("<!-- Error including %s: %s -->", includePath, err)
		}

		metrics.IncludesExpanded.Inc()

		return string(included)
	})
}
