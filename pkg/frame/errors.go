package frame

import "errors"

// ErrRaggedFrame is returned by Validate when columns disagree on length.
var ErrRaggedFrame = errors.New("frame: columns have different lengths")
