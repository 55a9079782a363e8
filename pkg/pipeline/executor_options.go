package pipeline

import (
	"io"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type Option func(e *Executor)

func WithLogger(logger *zap.Logger) Option {
	return func(e *Executor) {
		e.logger = logger
	}
}

// WithFs sets the filesystem used for input and output paths.
func WithFs(fs afero.Fs) Option {
	return func(e *Executor) {
		e.fs = fs
	}
}

// WithStdio replaces the streams used by pipe input and dump output.
func WithStdio(in io.Reader, out io.Writer) Option {
	return func(e *Executor) {
		e.stdin = in
		e.stdout = out
	}
}

func WithHTTPClient(client *resty.Client) Option {
	return func(e *Executor) {
		e.client = client
	}
}

// WithProgress draws a byte progress bar on w while input is read.
func WithProgress(w io.Writer) Option {
	return func(e *Executor) {
		e.progress = w
	}
}
