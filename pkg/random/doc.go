// Package random generates random string material from crypto/rand.
//
// Hex produces hex-encoded random bytes, the usual shape for tokens,
// nonces, and cache-busting suffixes:
//
//	token, err := random.Hex(16) // "3c9f0a1b7e42d8f6"
//	if err != nil {
//		// entropy source failed
//	}
//
// The length argument counts output characters, not bytes. Each byte
// encodes to two characters, so odd lengths round down: Hex(15) returns
// 14 characters.
//
// UUID returns a random RFC 4122 version 4 UUID:
//
//	id, err := random.UUID() // "f47ac10b-58cc-4372-a567-0e02b2c3d479"
//
// Both functions fail only when the system entropy source does, reported
// as [ErrInsufficientEntropy].
package random
