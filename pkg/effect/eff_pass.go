package effect

import "image"

// Pass leaves the buffer untouched.
type Pass struct{}

func (Pass) Name() string {
	return "pass"
}

func (Pass) String() string {
	return "Pass"
}

func (Pass) Apply(img image.Image) image.Image {
	return img
}

func (Pass) effect() {}
