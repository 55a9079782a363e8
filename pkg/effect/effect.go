package effect

import (
	"image"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Effect is one step of a layer's effect chain. The set of effects is closed:
// Pass, Blur, Contrast and Invert.
type Effect interface {
	Name() string
	String() string
	// Apply returns the transformed buffer. The returned image may be img itself.
	Apply(img image.Image) image.Image

	effect()
}

type builder struct {
	arity int
	build func(args []string) (Effect, error)
}

var names = []string{"pass", "blur", "contrast", "invert"}

var builders = map[string]builder{
	"pass": {0, func([]string) (Effect, error) { return Pass{}, nil }},
	"blur": {1, func(args []string) (Effect, error) {
		r, err := parseFloat("blur", args[0])
		return Blur{Radius: r}, err
	}},
	"contrast": {1, func(args []string) (Effect, error) {
		a, err := parseFloat("contrast", args[0])
		return Contrast{Amount: a}, err
	}},
	"invert": {0, func([]string) (Effect, error) { return Invert{}, nil }},
}

// Names lists the known effect names in a stable order.
func Names() []string {
	return append([]string(nil), names...)
}

// Arity reports how many argument tokens the named effect consumes.
func Arity(name string) (int, bool) {
	b, ok := builders[name]
	return b.arity, ok
}

// New builds the named effect from its argument tokens.
func New(name string, args ...string) (Effect, error) {
	b, ok := builders[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownEffect, "%q", name)
	}

	if len(args) < b.arity {
		return nil, errors.Wrapf(ErrMissingArgument, "%s needs an argument", name)
	}

	e, err := b.build(args)
	if err != nil {
		return nil, err
	}

	return e, nil
}

func parseFloat(name, in string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(in), 32)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Wrapf(ErrInvalidArgument, "%s argument must be a finite f32, got %q", name, in)
	}
	return float32(v), nil
}
