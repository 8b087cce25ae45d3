package app

import "errors"

var (
	ErrUnknownStore  = errors.New("unknown store kind")
	ErrMissingSecret = errors.New("COOKIE_SECRETS must be set outside development")
)
