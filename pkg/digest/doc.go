// Package digest computes lowercase hex digests of strings.
//
// Hex selects the algorithm by name at runtime, which suits configuration
// driven call sites. The fixed-algorithm helpers (MD5, SHA1, SHA256,
// SHA512) skip the lookup:
//
//	sum, err := digest.Hex("payload", "sha256")
//	if err != nil {
//		// unknown algorithm
//	}
//
//	etag := digest.SHA256("payload")
//
// Algorithm names are case-insensitive; Algorithms lists the supported
// set. MD5 and SHA1 are provided for checksums, cache keys, and
// interoperability with existing data. They are not suitable for
// passwords or signatures.
package digest
