package trace

import "errors"

var ErrConflict = errors.New("rule conflict")
