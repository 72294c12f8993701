package template

import "errors"

// ErrHelper is returned (wrapped) when a registered helper rejects its
// arguments. It is the only error class a render can produce: resolution
// misses of any kind degrade to empty output or literal pass-through.
var ErrHelper = errors.New("helper execution failed")
