package generate

import (
	"math"

	"pixkit/pkg/raster"
)

// NewGradient renders three phase-shifted sinusoids: red follows x, green
// follows y and blue follows x+y.
func NewGradient(opts ...Option) *raster.RGB {
	return render(newOptions(opts), Gradient.String(), GradientAt)
}

func GradientAt(x, y int) raster.Color {
	// rounded before the sum so x*0.01 + y*0.01 is never fused
	fx := float32(float32(x) * 0.01)
	fy := float32(float32(y) * 0.01)

	return raster.Color{
		R: wave(fx),
		G: wave(fy),
		B: wave(fx + fy),
	}
}

func wave(v float32) uint8 {
	s := float32(math.Sin(float64(v)))
	return toUint8(0.5 * s * 255)
}
