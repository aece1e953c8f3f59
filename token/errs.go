package token

import "errors"

var (
	ErrBadUTF8    = errors.New("bad utf8")
	ErrUnexpected = errors.New("unexpected")
)
