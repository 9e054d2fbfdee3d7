package doubleset

import (
	"github.com/pkg/errors"
)

var (
	ErrParse      = errors.New("malformed double set")
	ErrValidation = errors.New("invalid double set member")
	ErrType       = errors.New("operand is not a double set")
)
