package effect

import (
	"image"

	"github.com/disintegration/imaging"
)

// Invert complements the color channels and keeps alpha.
type Invert struct{}

func (Invert) Name() string {
	return "invert"
}

func (Invert) String() string {
	return "Invert"
}

// Apply inverts an *image.NRGBA in place; any other buffer is first copied into one.
func (Invert) Apply(img image.Image) image.Image {
	dst, ok := img.(*image.NRGBA)
	if !ok {
		dst = imaging.Clone(img)
	}

	for y := 0; y < dst.Rect.Dy(); y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+dst.Rect.Dx()*4]
		for i := 0; i < len(row); i += 4 {
			row[i] = 255 - row[i]
			row[i+1] = 255 - row[i+1]
			row[i+2] = 255 - row[i+2]
		}
	}

	return dst
}

func (Invert) effect() {}
