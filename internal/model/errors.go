package model

import "errors"

// ErrUnsupported reports that the node does not expose an optional query
// capability. Callers degrade to an empty result instead of failing.
var ErrUnsupported = errors.New("query capability not supported by node")
