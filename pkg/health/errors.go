package health

import "errors"

// ErrCheckTimeout is reported when a check does not finish before the readiness timeout.
var ErrCheckTimeout = errors.New("health: check timeout")
