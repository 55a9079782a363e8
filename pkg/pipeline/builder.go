package pipeline

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"layerfx/pkg/effect"
)

type tokens struct {
	list []string
	pos  int
}

func (t *tokens) next() (string, bool) {
	if t.pos >= len(t.list) {
		return "", false
	}
	tok := strings.TrimSpace(t.list[t.pos])
	t.pos++
	return tok, true
}

// arg consumes the token following directive.
func (t *tokens) arg(directive string) (string, error) {
	tok, ok := t.next()
	if !ok {
		return "", errors.Wrapf(ErrMissingArgument, "%s needs an argument", directive)
	}
	return tok, nil
}

// Build turns directive tokens, program name excluded, into a configuration
// and the ordered layers. There is always at least one layer; effect
// directives append to the last one.
//
// An input path given with -i wins over -pipe regardless of token order.
func Build(args []string) (*Config, []*Layer, error) {
	cfg := DefaultConfig()
	layers := []*Layer{NewLayer()}
	t := &tokens{list: args}

	var inputPath string
	var hasInputPath bool

	for {
		tok, ok := t.next()
		if !ok {
			break
		}

		switch tok {
		case "-i":
			p, err := t.arg(tok)
			if err != nil {
				return nil, nil, err
			}
			inputPath, hasInputPath = p, true
		case "-o":
			p, err := t.arg(tok)
			if err != nil {
				return nil, nil, err
			}
			cfg.Output = Output{Kind: OutputPath, Path: p}
		case "-pipe":
			cfg.Input = Input{Kind: InputPipe}
		case "-dump":
			cfg.Output = Output{Kind: OutputDump}
		case "-layer":
			layers = append(layers, NewLayer())
		default:
			e, err := buildEffect(tok, t)
			if err != nil {
				return nil, nil, err
			}
			cur, _ := lo.Last(layers)
			cur.Append(e)
		}
	}

	if hasInputPath {
		cfg.Input = Input{Kind: InputPath, Path: inputPath}
	}

	return cfg, layers, nil
}

func buildEffect(directive string, t *tokens) (effect.Effect, error) {
	name := strings.TrimPrefix(directive, "-")
	n, known := effect.Arity(name)
	if !known || name == directive {
		return nil, errors.Wrapf(ErrUnrecognizedDirective, "%q", directive)
	}

	args := make([]string, n)
	for i := range args {
		a, err := t.arg(directive)
		if err != nil {
			return nil, err
		}
		args[i] = a
	}

	return effect.New(name, args...)
}
