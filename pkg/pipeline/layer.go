package pipeline

import (
	"image"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"layerfx/pkg/effect"
)

// Layer is an image buffer plus the ordered effects applied to it.
type Layer struct {
	Image   image.Image
	Effects []effect.Effect
}

// NewLayer returns a layer holding a 1x1 placeholder buffer and no effects.
func NewLayer() *Layer {
	return &Layer{
		Image: image.NewNRGBA(image.Rect(0, 0, 1, 1)),
	}
}

func (l *Layer) Append(e effect.Effect) {
	l.Effects = append(l.Effects, e)
}

func (l *Layer) Names() []string {
	return lo.Map(l.Effects, func(e effect.Effect, _ int) string {
		return e.Name()
	})
}

// Process replaces the buffer with the output of each effect in turn.
func (l *Layer) Process(log *zap.Logger) {
	for _, e := range l.Effects {
		log.With(zap.Stringer("effect", e)).Info("apply")
		l.Image = e.Apply(l.Image)
	}
}
