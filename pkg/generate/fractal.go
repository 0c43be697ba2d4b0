package generate

import (
	"math"

	"pixkit/pkg/raster"
)

const (
	// MaxIterations caps the escape-time loop and is the green value of
	// points that never escape.
	MaxIterations = 255
	escapeRadius  = 2.0
	julia         = complex64(complex(-0.4, 0.6))
)

// NewFractal renders the Julia set of z² + (-0.4+0.6i) over [-1.5, 1.5]².
// Pixel rows map to the real axis and pixel columns to the imaginary one.
func NewFractal(opts ...Option) *raster.RGB {
	o := newOptions(opts)

	scaleX := float32(3.0) / float32(o.width)
	scaleY := float32(3.0) / float32(o.height)

	return render(o, Fractal.String(), func(x, y int) raster.Color {
		fx, fy := float32(x), float32(y)

		cx := float32(fy*scaleX) - 1.5
		cy := float32(fx*scaleY) - 1.5

		return raster.Color{
			R: toUint8(0.3 * fx),
			G: EscapeTime(cx, cy),
			B: toUint8(0.3 * fy),
		}
	})
}

// EscapeTime iterates z ← z² + c from z = cx + cy·i and returns the number
// of iterations taken before |z| exceeds 2, capped at MaxIterations.
func EscapeTime(cx, cy float32) uint8 {
	zr, zi := cx, cy
	cr, ci := real(julia), imag(julia)

	n := 0
	for n < MaxIterations && norm(zr, zi) <= escapeRadius {
		// explicit conversions keep each product rounded, no fused multiply-add
		re := float32(zr*zr) - float32(zi*zi)
		im := float32(zr*zi) + float32(zi*zr)
		zr, zi = re+cr, im+ci
		n++
	}

	return uint8(n)
}

func norm(re, im float32) float32 {
	return float32(math.Hypot(float64(re), float64(im)))
}
