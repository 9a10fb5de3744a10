package htmlenc

import "html"

// Escape replaces the characters with special meaning in HTML (& < > " ')
// with their entity equivalents, making s safe to interpolate into HTML
// text or attribute values.
func Escape(s string) string {
	return html.EscapeString(s)
}
