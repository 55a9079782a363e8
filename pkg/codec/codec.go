// Package codec is the image codec boundary: decoding with format detection and
// picking an encoder for an output destination.
package codec

import (
	"bytes"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	_ "golang.org/x/image/webp"

	"layerfx/pkg/bitmap"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

// Encoder writes img to w in one fixed format.
type Encoder func(w io.Writer, img image.Image) error

// PNG is the encoder used for dumped output.
func PNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}

// RGB565 writes the raw framebuffer bytes of img.
func RGB565(w io.Writer, img image.Image) error {
	return bitmap.Write(w, img)
}

// EncoderFor picks an encoder from the extension of path.
func EncoderFor(path string) (Encoder, error) {
	ext := filepath.Ext(path)
	if strings.EqualFold(ext, ".rgb565") {
		return RGB565, nil
	}

	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "extension %q", ext)
	}

	return func(w io.Writer, img image.Image) error {
		return imaging.Encode(w, img, f)
	}, nil
}

// Decode parses bs, detecting the format from its signature. The detected
// format name is returned alongside the image.
func Decode(bs []byte) (image.Image, string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(bs))
	if err != nil {
		return nil, "", err
	}

	img, err := imaging.Decode(bytes.NewReader(bs))
	if err != nil {
		return nil, format, err
	}

	return img, format, nil
}
