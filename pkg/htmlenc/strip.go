package htmlenc

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy   *bluemonday.Policy
	safePolicy     *bluemonday.Policy
	markdownPolicy *bluemonday.Policy
	initOnce       sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// StrictPolicy strips ALL HTML, returns plain text
		strictPolicy = bluemonday.StrictPolicy()

		// SafePolicy allows basic formatting for user-generated content
		safePolicy = bluemonday.NewPolicy()
		safePolicy.AllowStandardURLs()
		safePolicy.AllowElements(
			"p", "br",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		safePolicy.AllowAttrs("href").OnElements("a")
		safePolicy.RequireNoFollowOnLinks(true)

		// MarkdownPolicy covers the wider element set a markdown renderer
		// emits: headings, images, tables, horizontal rules
		markdownPolicy = bluemonday.UGCPolicy()
		markdownPolicy.RequireNoFollowOnLinks(true)
	})
}

// StripTags removes all HTML markup and returns the text content.
// Script and style elements are removed along with their contents.
// Use when plain text is needed from HTML input.
func StripTags(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// Sanitize allows safe formatting tags (p, a, strong, em, lists, code).
// Use for user-generated content that needs basic HTML formatting.
// Strips all dangerous elements and attributes including scripts, event
// handlers, and javascript: URLs. Links gain rel="nofollow".
func Sanitize(s string) string {
	initPolicies()
	return safePolicy.Sanitize(s)
}

// SanitizeCustom applies a custom bluemonday policy.
// Returns input unchanged if policy is nil.
func SanitizeCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
