package webarchive

import (
	"fmt"
	"io"
	"os"

	"github.com/Sicos1977/WebArchiveExtractor/bplist"
)

// The well-known keys of a Safari webarchive plist.
const (
	keyMainResource     = "WebMainResource"
	keySubresources     = "WebSubresources"
	keySubframeArchives = "WebSubframeArchives"

	keyResourceURL          = "WebResourceURL"
	keyResourceData         = "WebResourceData"
	keyResourceMIMEType     = "WebResourceMIMEType"
	keyResourceTextEncoding = "WebResourceTextEncodingName"
	keyResourceFrameName    = "WebResourceFrameName"
)

// A Resource is one archived HTTP response: the main document, a
// sub-resource, or a sub-frame's main document.
type Resource struct {
	URL              string
	Data             []byte
	MIMEType         string
	TextEncodingName string
	FrameName        string
}

// An Archive is the typed view over a decoded webarchive plist. Safari
// archives seen in practice nest one level deep, but nothing here depends
// on that.
type Archive struct {
	MainResource     Resource
	Subresources     []Resource
	SubframeArchives []*Archive
}

// Open reads and parses the webarchive file at path.
func Open(path string) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read decodes a webarchive from r and builds its typed view.
func Read(r io.ReadSeeker) (*Archive, error) {
	root, err := bplist.Decode(r)
	if err != nil {
		return nil, &InvalidFileError{err}
	}
	return ParseArchive(root)
}

// ParseArchive builds the typed view over a decoded plist value. The root
// must be a dictionary holding at least WebMainResource; WebSubresources
// and WebSubframeArchives are optional. Unknown keys are ignored.
func ParseArchive(root bplist.Value) (*Archive, error) {
	dict, ok := root.(*bplist.Dictionary)
	if !ok {
		return nil, &InvalidFileError{fmt.Errorf("root is %s, expected dictionary", root.TypeName())}
	}
	return parseArchiveDict(dict)
}

func parseArchiveDict(dict *bplist.Dictionary) (*Archive, error) {
	main, ok := dict.Get(keyMainResource).(*bplist.Dictionary)
	if !ok {
		return nil, ErrMissingResource
	}

	a := &Archive{MainResource: resourceFromDict(main)}
	if a.MainResource.URL == "" {
		return nil, fmt.Errorf("webarchive: main resource has no %s: %w", keyResourceURL, ErrMissingResource)
	}

	if subs, ok := dict.Get(keySubresources).(bplist.Array); ok {
		for _, v := range subs {
			if d, ok := v.(*bplist.Dictionary); ok {
				a.Subresources = append(a.Subresources, resourceFromDict(d))
			}
		}
	}

	if frames, ok := dict.Get(keySubframeArchives).(bplist.Array); ok {
		for _, v := range frames {
			d, ok := v.(*bplist.Dictionary)
			if !ok {
				continue
			}
			sub, err := parseArchiveDict(d)
			if err != nil {
				return nil, err
			}
			a.SubframeArchives = append(a.SubframeArchives, sub)
		}
	}
	return a, nil
}

func resourceFromDict(dict *bplist.Dictionary) Resource {
	res := Resource{TextEncodingName: "UTF-8"}
	dict.Range(func(_ int, key string, v bplist.Value) {
		switch key {
		case keyResourceURL:
			if s, ok := bplist.StringValue(v); ok {
				res.URL = s
			}
		case keyResourceData:
			if d, ok := v.(bplist.Data); ok {
				res.Data = []byte(d)
			}
		case keyResourceMIMEType:
			if s, ok := bplist.StringValue(v); ok {
				res.MIMEType = s
			}
		case keyResourceTextEncoding:
			if s, ok := bplist.StringValue(v); ok && s != "" {
				res.TextEncodingName = s
			}
		case keyResourceFrameName:
			if s, ok := bplist.StringValue(v); ok {
				res.FrameName = s
			}
		}
	})
	return res
}
