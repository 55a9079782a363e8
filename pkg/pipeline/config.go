package pipeline

import "fmt"

type InputKind int

const (
	// InputPath reads from Input.Path; an empty path means no input was given.
	InputPath InputKind = iota
	InputPipe
)

type Input struct {
	Kind InputKind
	Path string
}

func (i Input) String() string {
	if i.Kind == InputPipe {
		return "pipe"
	}
	if i.Path == "" {
		return "path(none)"
	}
	return fmt.Sprintf("path(%s)", i.Path)
}

type OutputKind int

const (
	OutputDump OutputKind = iota
	OutputPath
)

type Output struct {
	Kind OutputKind
	Path string
}

func (o Output) String() string {
	if o.Kind == OutputDump {
		return "dump"
	}
	return fmt.Sprintf("path(%s)", o.Path)
}

// Config is where the image comes from and where the result goes.
type Config struct {
	Input  Input
	Output Output
}

// DefaultConfig has no input and dumps to standard output.
func DefaultConfig() *Config {
	return &Config{
		Input:  Input{Kind: InputPath},
		Output: Output{Kind: OutputDump},
	}
}
