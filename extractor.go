package webarchive

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// MainDocumentName is the file each (sub-)archive's rewritten main document
// is written to.
const MainDocumentName = "webpage.html"

// Options is a bit set of extraction switches. Future options are additive.
type Options uint32

const (
	// IgnoreJavaScriptFiles drops sub-resources with a JavaScript MIME
	// type and blanks their references in the document.
	IgnoreJavaScriptFiles Options = 1 << iota
)

// None selects the default behavior: every sub-resource is persisted.
const None Options = 0

// An Extractor materializes webarchive files into directory trees suitable
// for offline viewing. The zero value is ready to use; an Extractor holds
// no state across calls. Logf, if non-nil, receives a notice for each
// resource that is skipped, ignored, renamed or not found in the document.
type Extractor struct {
	Options Options
	Logf    func(format string, args ...interface{})
}

func (x *Extractor) logf(format string, args ...interface{}) {
	if x.Logf != nil {
		x.Logf(format, args...)
	}
}

// Extract reads the webarchive at inputFile and writes its contents below
// outputDir, which must already exist. The main document lands in
// webpage.html, re-encoded as UTF-8, with references to the extracted
// resources rewritten to relative paths.
func (x *Extractor) Extract(inputFile, outputDir string) error {
	if err := checkOutputDir(outputDir); err != nil {
		return err
	}
	archive, err := Open(inputFile)
	if err != nil {
		return err
	}
	return x.extract(archive, outputDir)
}

// ExtractArchive writes an already-parsed archive below outputDir.
func (x *Extractor) ExtractArchive(archive *Archive, outputDir string) error {
	if err := checkOutputDir(outputDir); err != nil {
		return err
	}
	return x.extract(archive, outputDir)
}

func checkOutputDir(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return ErrOutputDirectoryMissing
	}
	return nil
}

func (x *Extractor) extract(archive *Archive, dir string) error {
	mainURL, err := url.Parse(archive.MainResource.URL)
	if err != nil {
		return &InvalidFileError{fmt.Errorf("main resource URL %q: %v", archive.MainResource.URL, err)}
	}

	doc, err := decodeText(archive.MainResource.Data, archive.MainResource.TextEncodingName)
	if err != nil {
		return err
	}

	for _, res := range archive.Subresources {
		if err := x.processSubresource(res, mainURL, dir, &doc); err != nil {
			return err
		}
	}

	for i, sub := range archive.SubframeArchives {
		name := fmt.Sprintf("subframe_%d", i+1)
		subdir := filepath.Join(dir, name)
		if err := os.MkdirAll(subdir, 0755); err != nil {
			return err
		}
		if err := x.extract(sub, subdir); err != nil {
			return err
		}
		subURL, err := url.Parse(sub.MainResource.URL)
		if err != nil {
			x.logf("could not parse subframe URL %q: %v", sub.MainResource.URL, err)
			continue
		}
		if !rewriteURL(&doc, urlCandidates(subURL, mainURL), name+"/"+MainDocumentName) {
			x.logf("could not find subframe URL %q in the document", sub.MainResource.URL)
		}
	}

	return os.WriteFile(filepath.Join(dir, MainDocumentName), []byte(doc), 0644)
}

func (x *Extractor) processSubresource(res Resource, mainURL *url.URL, dir string, doc *string) error {
	u, err := url.Parse(res.URL)
	if err != nil {
		x.logf("skipping resource %q: %v", res.URL, err)
		return nil
	}

	if x.Options&IgnoreJavaScriptFiles != 0 && javaScriptMIMETypes[res.MIMEType] {
		x.logf("ignoring javascript resource %q", res.URL)
		blankURL(doc, resourceCandidates(u, mainURL))
		return nil
	}

	rel, ok, err := x.writeResource(res, u, mainURL, dir)
	if err != nil || !ok {
		return err
	}
	if !rewriteURL(doc, resourceCandidates(u, mainURL), rel) {
		x.logf("could not find resource URL %q in the document", res.URL)
	}
	return nil
}
