package effect

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Blur is a gaussian blur. Radius is the sigma handed to the blur primitive;
// zero or negative values are left to its semantics (a plain copy).
type Blur struct {
	Radius float32
}

func (Blur) Name() string {
	return "blur"
}

func (b Blur) String() string {
	return fmt.Sprintf("Blur(%g)", b.Radius)
}

func (b Blur) Apply(img image.Image) image.Image {
	return imaging.Blur(img, float64(b.Radius))
}

func (Blur) effect() {}
