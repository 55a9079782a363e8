package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/inhies/go-bytesize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func isRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

func (e *Executor) read(ctx context.Context, in Input, log *zap.Logger) ([]byte, error) {
	switch {
	case in.Kind == InputPipe:
		return e.readPipe(log), nil
	case in.Path == "":
		return nil, ErrMissingInput
	case isRemote(in.Path):
		return e.fetch(ctx, in.Path, log)
	}

	bs, err := afero.ReadFile(e.fs, in.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	return bs, nil
}

// readPipe reads stdin to EOF. A failed read keeps whatever arrived before it.
func (e *Executor) readPipe(log *zap.Logger) []byte {
	var buf bytes.Buffer
	w, done := e.withProgress(&buf, -1, "reading stdin")

	n, err := io.Copy(w, e.stdin)
	done()
	if err == nil {
		logRead(log, n)
	}

	return buf.Bytes()
}

func (e *Executor) fetch(ctx context.Context, url string, log *zap.Logger) ([]byte, error) {
	resp, err := e.client.R().SetContext(ctx).SetDoNotParseResponse(true).Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	if resp.IsError() {
		return nil, fmt.Errorf("%w: %s: %s", ErrReadInput, url, resp.Status())
	}

	var buf bytes.Buffer
	w, done := e.withProgress(&buf, resp.RawResponse.ContentLength, fmt.Sprintf("downloading %s", url))

	n, err := io.Copy(w, resp.RawBody())
	done()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadInput, url, err)
	}

	logRead(log.With(zap.String("url", url)), n)
	return buf.Bytes(), nil
}

func (e *Executor) withProgress(w io.Writer, total int64, desc string) (io.Writer, func()) {
	if e.progress == nil {
		return w, func() {}
	}

	bar := progressbar.NewOptions64(
		total,
		progressbar.OptionSetWriter(e.progress),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
	)

	return io.MultiWriter(w, bar), func() {
		_ = bar.Finish()
	}
}

func logRead(log *zap.Logger, n int64) {
	log.With(
		zap.Int64("bytes", n),
		zap.String("size", bytesize.New(float64(n)).String()),
	).Info("read")
}
