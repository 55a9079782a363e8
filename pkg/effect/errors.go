package effect

import "github.com/pkg/errors"

var (
	ErrUnknownEffect   = errors.New("unknown effect")
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidArgument = errors.New("invalid argument")
)
