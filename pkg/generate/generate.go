package generate

import (
	"fmt"
	"image"
	"io"
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"

	"pixkit/pkg/proto"
	"pixkit/pkg/raster"
)

const (
	// Size is the default width and height of generated images.
	Size = 800
	// MaxSize bounds the width and height accepted from users, about 800MB
	// of pixels at the limit.
	MaxSize = 16384
)

type Mode int

const (
	Gradient Mode = iota
	Fractal
)

func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gradient", "generate":
		return Gradient, nil
	case "fractal":
		return Fractal, nil
	}
	return 0, errors.Wrapf(proto.ErrInvalidArgument, "unknown generation mode %q", name)
}

func (m Mode) String() string {
	switch m {
	case Gradient:
		return "gradient"
	case Fractal:
		return "fractal"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

func (m Mode) Generate(opts ...Option) *raster.RGB {
	if m == Fractal {
		return NewFractal(opts...)
	}
	return NewGradient(opts...)
}

type Option func(o *options)

type options struct {
	width    int
	height   int
	progress io.Writer
}

// CheckSize reports proto.ErrInvalidArgument unless 0 < n <= MaxSize.
func CheckSize(n int) error {
	if n <= 0 || n > MaxSize {
		return errors.Wrapf(proto.ErrInvalidArgument, "size must be between 1 and %d, got %d", MaxSize, n)
	}
	return nil
}

func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 {
			o.width = width
		}
		if height > 0 {
			o.height = height
		}
	}
}

// WithProgress renders a row counter to w while the image is generated.
func WithProgress(w io.Writer) Option {
	return func(o *options) {
		o.progress = w
	}
}

func newOptions(opts []Option) *options {
	o := &options{width: Size, height: Size}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// render fills a new image row by row with px.
func render(o *options, name string, px func(x, y int) raster.Color) *raster.RGB {
	img := raster.NewRGB(image.Rect(0, 0, o.width, o.height))

	var bar *progressbar.ProgressBar
	if o.progress != nil {
		bar = progressbar.NewOptions(o.height,
			progressbar.OptionSetWriter(o.progress),
			progressbar.OptionSetDescription(fmt.Sprintf("Rendering %s %dx%d", name, o.width, o.height)),
			progressbar.OptionClearOnFinish(),
		)
	}

	for y := 0; y < o.height; y++ {
		for x := 0; x < o.width; x++ {
			img.SetRGB(x, y, px(x, y))
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}

	return img
}

// toUint8 truncates toward zero and saturates to [0, 255]. NaN becomes 0.
func toUint8(v float32) uint8 {
	switch {
	case math.IsNaN(float64(v)), v <= 0:
		return 0
	case v >= math.MaxUint8:
		return math.MaxUint8
	}
	return uint8(v)
}
