package pipeline

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"

	"github.com/rs/xid"
	"go.uber.org/zap"

	"layerfx/pkg/codec"
)

func (e *Executor) emit(img image.Image, out Output, log *zap.Logger) error {
	if out.Kind == OutputPath {
		return e.save(img, out.Path, log)
	}

	// encode fully before touching stdout so a failure writes nothing
	var buf bytes.Buffer
	if err := codec.PNG(&buf, img); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	if _, err := e.stdout.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w: stdout: %w", ErrWrite, err)
	}

	log.With(zap.String("to", "stdout"), zap.Int("bytes", buf.Len())).Info("written")
	return nil
}

// save encodes into a temporary sibling of path and renames it into place.
func (e *Executor) save(img image.Image, path string, log *zap.Logger) error {
	enc, err := codec.EncoderFor(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncode, path, err)
	}

	tmp := filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s.tmp", xid.New().String()))

	f, err := e.fs.Create(tmp)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}

	if err := enc(f, img); err != nil {
		_ = f.Close()
		_ = e.fs.Remove(tmp)
		return fmt.Errorf("%w: %s: %w", ErrEncode, path, err)
	}

	if err := f.Close(); err != nil {
		_ = e.fs.Remove(tmp)
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}

	if err := e.fs.Rename(tmp, path); err != nil {
		_ = e.fs.Remove(tmp)
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}

	log.With(zap.String("to", path)).Info("written")
	return nil
}
