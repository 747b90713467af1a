package webarchive

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// writeResource maps a sub-resource onto a file below outdir and writes its
// payload verbatim. The file name mirrors the resource's URL path, minus
// the main document's own path prefix. It returns the slash-separated path
// relative to outdir, or ok=false when the resource is skipped.
func (x *Extractor) writeResource(res Resource, u, mainURL *url.URL, outdir string) (rel string, ok bool, err error) {
	if !strings.HasPrefix(u.Path, "/") {
		x.logf("skipping resource %q: no local path", res.URL)
		return "", false, nil
	}

	rel = strings.TrimPrefix(u.Path, mainURL.EscapedPath())
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" || strings.HasSuffix(rel, "/") {
		// A path without a basename is how archives represent directory
		// listings; there is no file to write.
		x.logf("skipping resource %q: empty file name", res.URL)
		return "", false, nil
	}

	rel = path.Clean(rel)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		fresh := uuid.New().String()
		x.logf("resource %q would escape the output directory, writing as %s", res.URL, fresh)
		rel = fresh
	}

	dest := filepath.Join(outdir, filepath.FromSlash(rel))
	if needsFreshName(dest, outdir) {
		fresh := uuid.New().String()
		x.logf("path collision for %q, writing as %s", res.URL, fresh)
		rel = fresh
		dest = filepath.Join(outdir, fresh)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", false, err
	}
	if err := os.WriteFile(dest, res.Data, 0644); err != nil {
		return "", false, err
	}
	return rel, true, nil
}

// needsFreshName reports whether dest cannot be written under its own name:
// something already exists there, or a needed parent directory exists as a
// plain file.
func needsFreshName(dest, outdir string) bool {
	if _, err := os.Stat(dest); err == nil {
		return true
	}
	for dir := filepath.Dir(dest); len(dir) > len(outdir); dir = filepath.Dir(dir) {
		if fi, err := os.Stat(dir); err == nil && !fi.IsDir() {
			return true
		}
	}
	return false
}
