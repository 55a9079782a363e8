package pipeline

import (
	"github.com/pkg/errors"

	"layerfx/pkg/effect"
)

var (
	ErrMissingArgument       = effect.ErrMissingArgument
	ErrInvalidArgument       = effect.ErrInvalidArgument
	ErrUnrecognizedDirective = errors.New("unrecognized directive")
	ErrMissingInput          = errors.New("input needed")
	ErrReadInput             = errors.New("read input failed")
	ErrDecode                = errors.New("decode failed")
	ErrEncode                = errors.New("encode failed")
	ErrWrite                 = errors.New("write failed")
)
