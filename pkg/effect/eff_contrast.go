package effect

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Contrast adjusts contrast by Amount percent, clamped to [-100, 100] by the primitive.
type Contrast struct {
	Amount float32
}

func (Contrast) Name() string {
	return "contrast"
}

func (c Contrast) String() string {
	return fmt.Sprintf("Contrast(%g)", c.Amount)
}

func (c Contrast) Apply(img image.Image) image.Image {
	return imaging.AdjustContrast(img, float64(c.Amount))
}

func (Contrast) effect() {}
