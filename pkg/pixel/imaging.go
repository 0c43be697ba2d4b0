package pixel

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"pixkit/pkg/proto"
)

func New() proto.PixelOps {
	return &Imaging{}
}

// Imaging implements proto.PixelOps with disintegration/imaging. Results are
// always *image.NRGBA with bounds starting at (0,0).
type Imaging struct{}

func (i *Imaging) Blur(img image.Image, sigma float64) image.Image {
	return imaging.Blur(img, sigma)
}

// Brighten adds delta to the red, green and blue channels, clamping to
// [0,255]. Alpha is kept.
func (i *Imaging) Brighten(img image.Image, delta int) image.Image {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: clamp(int(c.R) + delta),
			G: clamp(int(c.G) + delta),
			B: clamp(int(c.B) + delta),
			A: c.A,
		}
	})
}

// Crop cuts rect out of img. rect is relative to the image origin and must
// lie within the image.
func (i *Imaging) Crop(img image.Image, rect image.Rectangle) (image.Image, error) {
	b := img.Bounds()
	if err := CheckCrop(b.Size(), rect); err != nil {
		return nil, err
	}
	return imaging.Crop(img, rect.Add(b.Min)), nil
}

// Rotate90 turns the image a quarter clockwise; imaging counts angles
// counter-clockwise, hence the swapped calls.
func (i *Imaging) Rotate90(img image.Image) image.Image {
	return imaging.Rotate270(img)
}

func (i *Imaging) Rotate180(img image.Image) image.Image {
	return imaging.Rotate180(img)
}

func (i *Imaging) Rotate270(img image.Image) image.Image {
	return imaging.Rotate90(img)
}

func (i *Imaging) Invert(img image.Image) image.Image {
	return imaging.Invert(img)
}

// Grayscale returns a single-channel *image.Gray when the result is opaque,
// otherwise the *image.NRGBA imaging produces.
func (i *Imaging) Grayscale(img image.Image) image.Image {
	dst := imaging.Grayscale(img)
	if !dst.Opaque() {
		return dst
	}

	gray := image.NewGray(dst.Rect)
	for y := 0; y < dst.Rect.Dy(); y++ {
		src := dst.Pix[y*dst.Stride : y*dst.Stride+dst.Rect.Dx()*4]
		row := gray.Pix[y*gray.Stride : y*gray.Stride+dst.Rect.Dx()]
		for x := range row {
			row[x] = src[x*4]
		}
	}
	return gray
}

// CheckCrop reports proto.ErrOutOfBounds unless rect fits in an image of
// the given size.
func CheckCrop(size image.Point, rect image.Rectangle) error {
	if rect.Min.X < 0 || rect.Min.Y < 0 || rect.Max.X > size.X || rect.Max.Y > size.Y {
		return errors.Wrapf(
			proto.ErrOutOfBounds,
			"crop %dx%d+%d+%d exceeds image %dx%d",
			rect.Dx(), rect.Dy(), rect.Min.X, rect.Min.Y, size.X, size.Y,
		)
	}
	return nil
}

func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
