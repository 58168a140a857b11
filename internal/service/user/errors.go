package user

import "errors"

var ErrUnauthenticated = errors.New("unauthenticated")
