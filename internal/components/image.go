package components

import (
	"os"
	"path/filepath"
	"strings"
)

// Image is the optimized image wrapper.
type Image struct {
	Src      string
	Fallback string
	Alt      string
	Width    int
	Height   int
	Priority bool
}

// Loading returns the loading attribute value.
func (i Image) Loading() string {
	if i.Priority {
		return "eager"
	}
	return "lazy"
}

// FetchPriority returns the fetchpriority attribute value.
func (i Image) FetchPriority() string {
	if i.Priority {
		return "high"
	}
	return "auto"
}

// ImageResolver checks local image sources against the images directory.
// URLPrefix is the path the directory is served under.
type ImageResolver struct {
	Dir       string
	URLPrefix string
}

// Resolve swaps a local source that does not exist on disk for the fallback.
// Without a fallback the original source is kept and the browser shows its
// broken-image affordance. Remote sources are never checked.
func (r ImageResolver) Resolve(img Image) Image {
	if r.Dir == "" || img.Src == "" || img.Fallback == "" {
		return img
	}
	rel, ok := strings.CutPrefix(img.Src, strings.TrimSuffix(r.URLPrefix, "/")+"/")
	if !ok {
		return img
	}
	path := filepath.Join(r.Dir, filepath.FromSlash(rel))
	if _, err := os.Stat(path); err != nil {
		img.Src = img.Fallback
		img.Fallback = ""
	}
	return img
}
