package htmlenc

import "errors"

// ErrRenderFailed indicates markdown conversion failed.
var ErrRenderFailed = errors.New("htmlenc: failed to render markdown")
