package maybe

import "errors"

var errEmpty = errors.New("empty")
