package proto

import (
	"github.com/pkg/errors"
)

var (
	ErrDecode          = errors.New("decode failed")
	ErrEncode          = errors.New("encode failed")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfBounds     = errors.New("out of bounds")
	ErrUsage           = errors.New("usage error")
)
