package userstore

import "errors"

// ErrQuery wraps driver failures other than "no rows" and unique violations.
var ErrQuery = errors.New("userstore: query failed")
