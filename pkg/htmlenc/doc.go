// Package htmlenc provides HTML escaping, entity encoding, and sanitization.
//
// The package covers three distinct needs: escaping text for safe
// interpolation into HTML, encoding and decoding named character entities,
// and sanitizing untrusted HTML with bluemonday policies. A markdown
// renderer built on goldmark rounds out the set for user-generated content
// pipelines.
//
// # Escaping
//
// Escape replaces the five characters with special meaning in HTML:
//
//	htmlenc.Escape(`<b>"quoted" & 'raw'</b>`)
//	// "&lt;b&gt;&#34;quoted&#34; &amp; &#39;raw&#39;&lt;/b&gt;"
//
// EncodeEntities goes further and also encodes the Latin-1 supplement by
// entity name, which keeps output readable in ASCII-only contexts:
//
//	htmlenc.EncodeEntities("café © 2024")
//	// "caf&eacute; &copy; 2024"
//
// DecodeEntities reverses both, and understands the full HTML5 entity set
// including numeric references:
//
//	htmlenc.DecodeEntities("caf&eacute; &copy; &#8364;")
//	// "café © €"
//
// # Sanitization
//
// StripTags removes all markup and returns plain text. Sanitize keeps a
// small formatting subset (paragraphs, emphasis, lists, code, blockquotes,
// and nofollow links) suitable for user-generated content:
//
//	htmlenc.StripTags(`<p>Hello <b>world</b></p>`) // "Hello world"
//	htmlenc.Sanitize(`<p onclick="x()">Hi</p>`)    // "<p>Hi</p>"
//
// SanitizeCustom accepts a caller-built bluemonday policy for anything the
// built-in policies do not cover.
//
// # Markdown
//
// Markdown converts markdown to HTML and sanitizes the result, so untrusted
// markdown cannot smuggle raw HTML through the renderer:
//
//	out, err := htmlenc.Markdown("**bold** [link](https://example.com)")
//	// `<p><strong>bold</strong> <a href="https://example.com" rel="nofollow">link</a></p>`
//
// All functions are safe for concurrent use.
package htmlenc
