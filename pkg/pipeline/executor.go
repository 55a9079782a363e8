package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"layerfx/pkg/codec"
)

func NewExecutor(opts ...Option) *Executor {
	e := &Executor{
		fs:     afero.NewOsFs(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		client: resty.New(),
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Executor loads the source image, runs the effect chains and emits the result.
type Executor struct {
	fs       afero.Fs
	stdin    io.Reader
	stdout   io.Writer
	client   *resty.Client
	progress io.Writer
	logger   *zap.Logger
}

// Run loads the source into the first layer, processes every layer in
// declaration order and emits the first layer's buffer.
func (e *Executor) Run(ctx context.Context, cfg *Config, layers []*Layer) error {
	if len(layers) == 0 {
		return errors.New("at least one layer required")
	}

	log := e.logger.With(zap.String("run", xid.New().String()))

	bs, err := e.read(ctx, cfg.Input, log)
	if err != nil {
		return err
	}

	img, format, err := codec.Decode(bs)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecode, cfg.Input, err)
	}

	log.With(
		zap.String("format", format),
		zap.Int("w", img.Bounds().Dx()),
		zap.Int("h", img.Bounds().Dy()),
	).Info("decoded")

	layers[0].Image = img

	for i, l := range layers {
		ll := log.With(zap.Int("layer", i))
		ll.With(zap.Strings("effects", l.Names())).Info("layer")
		l.Process(ll)
	}

	// Layers past the first are processed but never composited or emitted.
	return e.emit(layers[0].Image, cfg.Output, log)
}
