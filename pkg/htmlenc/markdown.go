package htmlenc

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	md     goldmark.Markdown // cached markdown processor
	mdOnce sync.Once
)

func initMarkdown() {
	mdOnce.Do(func() {
		md = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
}

// Markdown converts markdown to HTML and sanitizes the result. The
// converter understands GitHub Flavored Markdown (tables, strikethrough,
// autolinks). Raw HTML in the source is dropped by both the converter and
// the sanitizer, so untrusted markdown cannot inject markup. Links gain
// rel="nofollow".
func Markdown(s string) (string, error) {
	initPolicies()
	initMarkdown()

	var buf bytes.Buffer
	if err := md.Convert([]byte(s), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return markdownPolicy.Sanitize(buf.String()), nil
}
