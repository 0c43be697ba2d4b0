package virtual

import (
	"image"

	"go.uber.org/zap"

	"pixkit/pkg/pixel"
	"pixkit/pkg/proto"
)

// New returns pixel ops that only log and record what they are asked to do.
// Images pass through unchanged. Crop and the quarter turns return blank
// images of the resulting size, and Crop still checks its bounds.
func New(logger *zap.Logger) *Mocker {
	return &Mocker{l: logger}
}

var _ proto.PixelOps = (*Mocker)(nil)

type Mocker struct {
	l     *zap.Logger
	calls []string
}

// Calls returns the names of the operations invoked so far, in order.
func (m *Mocker) Calls() []string {
	return append([]string(nil), m.calls...)
}

func (m *Mocker) record(name string, img image.Image, fields ...zap.Field) {
	m.calls = append(m.calls, name)
	m.l.With(fields...).With(
		zap.Int("w", img.Bounds().Dx()),
		zap.Int("h", img.Bounds().Dy()),
	).Info(name)
}

func (m *Mocker) Blur(img image.Image, sigma float64) image.Image {
	m.record("blur", img, zap.Float64("sigma", sigma))
	return img
}

func (m *Mocker) Brighten(img image.Image, delta int) image.Image {
	m.record("brighten", img, zap.Int("delta", delta))
	return img
}

func (m *Mocker) Crop(img image.Image, rect image.Rectangle) (image.Image, error) {
	m.record("crop", img, zap.Stringer("rect", rect))

	b := img.Bounds()
	if err := pixel.CheckCrop(b.Size(), rect); err != nil {
		return nil, err
	}

	return image.NewNRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy())), nil
}

func (m *Mocker) Rotate90(img image.Image) image.Image {
	m.record("rotate90", img)
	return swapped(img)
}

func (m *Mocker) Rotate180(img image.Image) image.Image {
	m.record("rotate180", img)
	return img
}

func (m *Mocker) Rotate270(img image.Image) image.Image {
	m.record("rotate270", img)
	return swapped(img)
}

func (m *Mocker) Invert(img image.Image) image.Image {
	m.record("invert", img)
	return img
}

func (m *Mocker) Grayscale(img image.Image) image.Image {
	m.record("grayscale", img)
	return img
}

// swapped is a blank stand-in with width and height exchanged.
func swapped(img image.Image) image.Image {
	b := img.Bounds()
	return image.NewNRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
}
