package htmlenc

import (
	"html"
	"strings"
)

// latin1Entities maps the Latin-1 supplement (U+00A0..U+00FF) to HTML
// entity names, without the surrounding & and ;.
var latin1Entities = map[rune]string{
	' ': "nbsp", '¡': "iexcl", '¢': "cent", '£': "pound",
	'¤': "curren", '¥': "yen", '¦': "brvbar", '§': "sect",
	'¨': "uml", '©': "copy", 'ª': "ordf", '«': "laquo",
	'¬': "not", '­': "shy", '®': "reg", '¯': "macr",
	'°': "deg", '±': "plusmn", '²': "sup2", '³': "sup3",
	'´': "acute", 'µ': "micro", '¶': "para", '·': "middot",
	'¸': "cedil", '¹': "sup1", 'º': "ordm", '»': "raquo",
	'¼': "frac14", '½': "frac12", '¾': "frac34", '¿': "iquest",
	'À': "Agrave", 'Á': "Aacute", 'Â': "Acirc", 'Ã': "Atilde",
	'Ä': "Auml", 'Å': "Aring", 'Æ': "AElig", 'Ç': "Ccedil",
	'È': "Egrave", 'É': "Eacute", 'Ê': "Ecirc", 'Ë': "Euml",
	'Ì': "Igrave", 'Í': "Iacute", 'Î': "Icirc", 'Ï': "Iuml",
	'Ð': "ETH", 'Ñ': "Ntilde", 'Ò': "Ograve", 'Ó': "Oacute",
	'Ô': "Ocirc", 'Õ': "Otilde", 'Ö': "Ouml", '×': "times",
	'Ø': "Oslash", 'Ù': "Ugrave", 'Ú': "Uacute", 'Û': "Ucirc",
	'Ü': "Uuml", 'Ý': "Yacute", 'Þ': "THORN", 'ß': "szlig",
	'à': "agrave", 'á': "aacute", 'â': "acirc", 'ã': "atilde",
	'ä': "auml", 'å': "aring", 'æ': "aelig", 'ç': "ccedil",
	'è': "egrave", 'é': "eacute", 'ê': "ecirc", 'ë': "euml",
	'ì': "igrave", 'í': "iacute", 'î': "icirc", 'ï': "iuml",
	'ð': "eth", 'ñ': "ntilde", 'ò': "ograve", 'ó': "oacute",
	'ô': "ocirc", 'õ': "otilde", 'ö': "ouml", '÷': "divide",
	'ø': "oslash", 'ù': "ugrave", 'ú': "uacute", 'û': "ucirc",
	'ü': "uuml", 'ý': "yacute", 'þ': "thorn", 'ÿ': "yuml",
}

// EncodeEntities encodes s using named HTML entities. It covers the five
// characters Escape handles plus the full Latin-1 supplement, so accented
// text survives transport through ASCII-only channels:
//
//	EncodeEntities("résumé & café") // "r&eacute;sum&eacute; &amp; caf&eacute;"
//
// DecodeEntities inverts the encoding exactly for any input.
func EncodeEntities(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#39;")
		default:
			if name, ok := latin1Entities[r]; ok {
				b.WriteByte('&')
				b.WriteString(name)
				b.WriteByte(';')
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// DecodeEntities decodes named and numeric HTML entities in s. Unknown or
// malformed entities are left as-is. It decodes everything EncodeEntities
// produces and the rest of the HTML5 entity set besides.
func DecodeEntities(s string) string {
	return html.UnescapeString(s)
}
