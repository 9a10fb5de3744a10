package digest

import "errors"

// ErrUnsupportedAlgorithm indicates the requested hash algorithm is not
// one of the supported set.
var ErrUnsupportedAlgorithm = errors.New("digest: unsupported algorithm")
