package bitmap

import (
	"encoding/binary"
	"image"
	"image/color"
	"io"
)

// RGB565 is the framebuffer format of small serial displays. Each pixel takes
// two bytes, 5 bits red, 6 bits green and 5 bits blue, with no alpha:
//
//	bit 76543210  76543210
//	    RRRRRGGG  GGGBBBBB
//	   high byte  low byte
type RGB565 uint16

// Model converts any color to RGB565.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	return Pack(c)
})

// Pack keeps the highest 5 or 6 bits of each 16 bit channel.
func Pack(c color.Color) RGB565 {
	r, g, b, _ := c.RGBA()
	return RGB565((r & 0xF800) | ((g & 0xFC00) >> 5) | ((b & 0xF800) >> 11))
}

// RGBA widens each channel back to 16 bits by repeating its bit pattern, so
// all-zero and all-one channels map to 0 and 0xFFFF. Alpha is always opaque.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	rBits := uint32(c & 0xF800)
	gBits := uint32(c & 0x7E0)
	bBits := uint32(c & 0x1F)
	r = rBits | rBits>>5 | rBits>>10 | rBits>>15
	g = gBits<<5 | gBits>>1 | gBits>>7
	b = bBits<<11 | bBits<<6 | bBits<<1 | bBits>>4
	a = 0xFFFF
	return
}

// Encode returns the pixels of src row by row, little endian.
func Encode(src image.Image) []byte {
	b := src.Bounds()
	out := make([]byte, 0, 2*b.Dx()*b.Dy())

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out = binary.LittleEndian.AppendUint16(out, uint16(Pack(src.At(x, y))))
		}
	}

	return out
}

// Write encodes src to w.
func Write(w io.Writer, src image.Image) error {
	_, err := w.Write(Encode(src))
	return err
}
