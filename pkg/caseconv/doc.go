// Package caseconv converts strings between naming and casing conventions.
//
// This package provides the usual identifier conversions (camel, pascal,
// snake, kebab, screaming snake) plus word-level capitalization helpers.
// The conversions are deliberately simple character pipelines with fixed,
// locale-neutral rules; none of them consult a dictionary or a locale.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/strutil/pkg/caseconv"
//
//	caseconv.ToCamelCase("hello_world-test")  // "helloWorldTest"
//	caseconv.ToPascalCase("hello world")      // "HelloWorld"
//	caseconv.ToSnakeCase("HelloWorld")        // "hello_world"
//	caseconv.ToTitleCase("hello wORLD")       // "Hello World"
//	caseconv.CapitalizeWords("hello wORLD")   // "Hello WORLD"
//
// # Conversion Rules
//
// ToCamelCase and ToPascalCase lowercase the whole input before
// re-capitalizing word starts, so interior acronyms flatten:
//
//	caseconv.ToCamelCase("HTTPServer") // "httpserver"
//
// ToSnakeCase works character by character: it lowers the first rune,
// breaks before each later uppercase rune, and turns every remaining
// character outside [a-z0-9_] into an underscore. Spaced input therefore
// gains a double underscore:
//
//	caseconv.ToSnakeCase("Hello World") // "hello__world"
//
// ToKebabCase collapses every run of word characters into a single hyphen
// and keeps the rest, which makes it lossy:
//
//	caseconv.ToKebabCase("hello world") // "- -"
//
// # Title Casing
//
// ToTitleCase applies Unicode title casing (word starts uppercased, the
// rest lowered). CapitalizeWords only uppercases word starts and leaves
// every other character alone, matching the behavior of classic ucwords
// helpers. CapitalizeDelimited does the same for a custom delimiter and
// touches nothing but the first character of each piece.
package caseconv
