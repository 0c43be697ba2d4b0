package raster

import (
	"image"
	"image/color"
)

func NewRGB(r image.Rectangle) *RGB {
	return &RGB{
		Pix:    make([]byte, 3*r.Dx()*r.Dy()),
		Stride: 3 * r.Dx(),
		Rect:   r,
	}
}

// RGB is an in-memory image of opaque 8-bit RGB pixels, three bytes per
// pixel in row-major order. It implements the draw.Image interface.
type RGB struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

// Bounds implements the image.Image interface.
func (p *RGB) Bounds() image.Rectangle {
	return p.Rect
}

// ColorModel implements the image.Image interface.
func (p *RGB) ColorModel() color.Model {
	return Model
}

// At implements the image.Image interface.
func (p *RGB) At(x, y int) color.Color {
	return p.RGBAt(x, y)
}

func (p *RGB) RGBAt(x, y int) Color {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Color{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	return Color{R: s[0], G: s[1], B: s[2]}
}

// Set implements the draw.Image interface.
func (p *RGB) Set(x, y int, c color.Color) {
	p.SetRGB(x, y, Model.Convert(c).(Color))
}

func (p *RGB) SetRGB(x, y int, c Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	s[0] = c.R
	s[1] = c.G
	s[2] = c.B
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *RGB) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

// Opaque reports true: the format has no alpha channel.
func (p *RGB) Opaque() bool {
	return true
}

// Color is a 24-bit RGB color without alpha.
type Color struct {
	R, G, B uint8
}

// RGBA implements the color.Color interface. Each 8-bit channel is widened
// to 16 bits by duplicating the byte, alpha is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 0xFFFF
	return
}

// Model converts any color to Color by dropping alpha. Colors are taken as
// they are stored, premultiplied values are not un-multiplied.
var Model = color.ModelFunc(rgbModel)

func rgbModel(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}
