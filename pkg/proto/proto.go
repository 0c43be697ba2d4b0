package proto

import (
	"image"
	"io"
)

// Codec moves images between bytes, files and memory.
type Codec interface {
	Decode(r io.Reader) (image.Image, string, error)
	Encode(w io.Writer, img image.Image, format string) error

	Load(path string) (image.Image, error)
	Save(img image.Image, path string) error
}

// PixelOps is the set of whole-image transformations the pipeline delegates to.
// Every method returns a new image and leaves its input untouched.
// Rotations are clockwise.
type PixelOps interface {
	Blur(img image.Image, sigma float64) image.Image
	Brighten(img image.Image, delta int) image.Image
	Crop(img image.Image, rect image.Rectangle) (image.Image, error)

	Rotate90(img image.Image) image.Image
	Rotate180(img image.Image) image.Image
	Rotate270(img image.Image) image.Image

	Invert(img image.Image) image.Image
	Grayscale(img image.Image) image.Image
}
