package model

import "errors"

// ErrUnknownOrdering indicates an ordering name that OrderingFor does not know.
var ErrUnknownOrdering = errors.New("unknown team ordering")
