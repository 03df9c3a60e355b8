package services

import "errors"

var ErrUnknownEnum = errors.New("unknown enum")
