package slug

// Option configures slug generation.
type Option func(*config)

type config struct {
	maxLength    int
	minLength    int
	separator    string
	lowercase    bool
	stripChars   string
	replacements map[string]string
	suffixLength int
	reserved     []string
}

func defaultConfig() config {
	return config{
		separator: "-",
		lowercase: true,
	}
}

// MaxLength caps the slug at n runes. Truncation never leaves a dangling
// separator, and a random suffix added by WithSuffix survives the cut.
// Zero or negative values disable the cap.
func MaxLength(n int) Option {
	return func(c *config) { c.maxLength = n }
}

// MinLength pads slugs shorter than n runes with a random 6-character
// suffix. The suffix is added once; MaxLength still applies afterwards.
// Zero or negative values disable the check.
func MinLength(n int) Option {
	return func(c *config) { c.minLength = n }
}

// Separator sets the string inserted between words. The default is "-".
// Multi-character separators are allowed, and the empty string joins words
// directly.
func Separator(sep string) Option {
	return func(c *config) { c.separator = sep }
}

// Lowercase controls case folding. It is on by default; passing false
// preserves the input's case and widens random suffixes to mixed case.
func Lowercase(enabled bool) Option {
	return func(c *config) { c.lowercase = enabled }
}

// StripChars removes every occurrence of the given characters from the
// input before slugification.
func StripChars(chars string) Option {
	return func(c *config) { c.stripChars = chars }
}

// CustomReplace applies literal string replacements to the input before
// any other processing, so "&" can become "and" instead of a separator.
func CustomReplace(replacements map[string]string) Option {
	return func(c *config) { c.replacements = replacements }
}

// WithSuffix appends a random alphanumeric suffix of length n, separated
// from the base slug. Useful for collision resistance on non-unique input.
func WithSuffix(length int) Option {
	return func(c *config) { c.suffixLength = length }
}

// ReservedSlugs lists slugs that must not be produced as-is. Matching is
// case-insensitive; a reserved result gains a random suffix.
func ReservedSlugs(slugs ...string) Option {
	return func(c *config) { c.reserved = slugs }
}
