package pixel

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixkit/pkg/proto"
)

// corners builds a w×h image with distinct colors in its four corners.
func corners(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 50, G: 50, B: 50, A: 255})
		}
	}
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(w-1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, h-1, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(w-1, h-1, color.NRGBA{R: 255, G: 255, A: 255})
	return img
}

func nrgba(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestBrighten(t *testing.T) {
	ops := New()
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 250, G: 100, B: 5, A: 200})

	up := ops.Brighten(src, 10)
	assert.Equal(t, color.NRGBA{R: 255, G: 110, B: 15, A: 200}, nrgba(up, 0, 0))

	down := ops.Brighten(src, -10)
	assert.Equal(t, color.NRGBA{R: 240, G: 90, B: 0, A: 200}, nrgba(down, 0, 0))

	assert.Equal(t, color.NRGBA{R: 250, G: 100, B: 5, A: 200}, src.NRGBAAt(0, 0), "source must be untouched")
}

func TestCrop(t *testing.T) {
	ops := New()
	src := corners(6, 4)

	out, err := ops.Crop(src, image.Rect(1, 1, 6, 4))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 5, 3), out.Bounds())
	assert.Equal(t, color.NRGBA{R: 255, G: 255, A: 255}, nrgba(out, 4, 2))

	_, err = ops.Crop(src, image.Rect(1, 0, 7, 4))
	assert.ErrorIs(t, err, proto.ErrOutOfBounds)

	_, err = ops.Crop(src, image.Rect(0, 2, 6, 5))
	assert.ErrorIs(t, err, proto.ErrOutOfBounds)
}

func TestCropOffsetBounds(t *testing.T) {
	ops := New()
	src := corners(6, 4).SubImage(image.Rect(2, 2, 6, 4))

	out, err := ops.Crop(src, image.Rect(0, 0, 4, 2))
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, A: 255}, nrgba(out, 3, 1))

	_, err = ops.Crop(src, image.Rect(0, 0, 5, 2))
	assert.ErrorIs(t, err, proto.ErrOutOfBounds)
}

func TestRotate(t *testing.T) {
	ops := New()
	src := corners(4, 2)
	red := color.NRGBA{R: 255, A: 255}

	// clockwise: the top-left corner moves to the top-right
	r90 := ops.Rotate90(src)
	assert.Equal(t, image.Rect(0, 0, 2, 4), r90.Bounds())
	assert.Equal(t, red, nrgba(r90, 1, 0))

	r180 := ops.Rotate180(src)
	assert.Equal(t, image.Rect(0, 0, 4, 2), r180.Bounds())
	assert.Equal(t, red, nrgba(r180, 3, 1))

	r270 := ops.Rotate270(src)
	assert.Equal(t, image.Rect(0, 0, 2, 4), r270.Bounds())
	assert.Equal(t, red, nrgba(r270, 0, 3))
}

func TestInvertGrayscale(t *testing.T) {
	ops := New()
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 200, B: 255, A: 255})

	assert.Equal(t, color.NRGBA{R: 245, G: 55, B: 0, A: 255}, nrgba(ops.Invert(src), 0, 0))

	g := nrgba(ops.Grayscale(src), 0, 0)
	assert.Equal(t, g.R, g.G)
	assert.Equal(t, g.G, g.B)
}

func TestGrayscaleSingleChannel(t *testing.T) {
	ops := New()
	src := corners(3, 2)

	out := ops.Grayscale(src)
	gray, ok := out.(*image.Gray)
	require.True(t, ok, "opaque input must give *image.Gray, got %T", out)
	assert.Equal(t, image.Rect(0, 0, 3, 2), gray.Bounds())

	ref := imaging.Grayscale(src)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, ref.NRGBAAt(x, y).R, gray.GrayAt(x, y).Y, "pixel (%d,%d)", x, y)
		}
	}

	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 128})
	assert.IsType(t, &image.NRGBA{}, ops.Grayscale(src), "alpha is kept")
}

func TestBlur(t *testing.T) {
	ops := New()
	src := corners(8, 8)

	out := ops.Blur(src, 1.5)
	assert.Equal(t, src.Bounds(), out.Bounds())
	assert.NotEqual(t, src.NRGBAAt(0, 0), nrgba(out, 0, 0))
}
