package pipeline

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"layerfx/pkg/effect"
)

func TestNewLayer(t *testing.T) {
	l := NewLayer()
	assert.Equal(t, image.Rect(0, 0, 1, 1), l.Image.Bounds())
	assert.Empty(t, l.Effects)
	assert.Empty(t, l.Names())
}

func TestLayerAppendKeepsOrder(t *testing.T) {
	l := NewLayer()
	l.Append(effect.Invert{})
	l.Append(effect.Blur{Radius: 1})
	l.Append(effect.Pass{})

	assert.Equal(t, []string{"invert", "blur", "pass"}, l.Names())
}

func TestLayerProcessIsSequential(t *testing.T) {
	l := &Layer{Image: imaging.New(3, 3, color.NRGBA{R: 40, G: 80, B: 120, A: 255})}
	l.Append(effect.Invert{})
	l.Append(effect.Pass{})
	l.Append(effect.Invert{})
	l.Append(effect.Invert{})

	l.Process(zap.NewNop())

	assert.Equal(t, color.NRGBA{R: 215, G: 175, B: 135, A: 255}, l.Image.(*image.NRGBA).NRGBAAt(1, 1))
}

func TestConfigStrings(t *testing.T) {
	assert.Equal(t, "pipe", Input{Kind: InputPipe}.String())
	assert.Equal(t, "path(none)", Input{}.String())
	assert.Equal(t, "path(a.png)", Input{Path: "a.png"}.String())
	assert.Equal(t, "dump", Output{}.String())
	assert.Equal(t, "path(b.png)", Output{Kind: OutputPath, Path: "b.png"}.String())
}
