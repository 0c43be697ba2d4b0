package pipeline

import (
	"fmt"
	"image"

	"github.com/samber/lo"

	"pixkit/pkg/proto"
)

// Stage names, in the order the pipeline runs them.
const (
	StageBlur      = "blur"
	StageBrighten  = "brighten"
	StageCrop      = "crop"
	StageRotate    = "rotate"
	StageInvert    = "invert"
	StageGrayscale = "grayscale"
)

// quarterTurns are the rotation angles, clockwise degrees, that rotate.
// Any other angle leaves the image as it is.
var quarterTurns = []int{90, 180, 270}

type Stage interface {
	Name() string
	Apply(img image.Image) (image.Image, error)
}

type stage struct {
	name string
	fn   func(img image.Image) (image.Image, error)
}

func (s stage) Name() string {
	return s.name
}

func (s stage) Apply(img image.Image) (image.Image, error) {
	return s.fn(img)
}

func infallible(name string, fn func(img image.Image) image.Image) Stage {
	return stage{
		name: name,
		fn: func(img image.Image) (image.Image, error) {
			return fn(img), nil
		},
	}
}

// Stages builds the stages req selects, in pipeline order.
func Stages(ops proto.PixelOps, req Request) []Stage {
	var ss []Stage

	if req.Blur != nil {
		sigma := *req.Blur
		ss = append(ss, infallible(StageBlur, func(img image.Image) image.Image {
			return ops.Blur(img, sigma)
		}))
	}

	if req.Brighten != nil {
		delta := *req.Brighten
		ss = append(ss, infallible(StageBrighten, func(img image.Image) image.Image {
			return ops.Brighten(img, delta)
		}))
	}

	if req.Crop != nil {
		rect := req.Crop.Rectangle()
		ss = append(ss, stage{
			name: StageCrop,
			fn: func(img image.Image) (image.Image, error) {
				return ops.Crop(img, rect)
			},
		})
	}

	if req.Rotate != nil {
		degrees := *req.Rotate
		ss = append(ss, infallible(StageRotate, func(img image.Image) image.Image {
			return rotate(ops, img, degrees)
		}))
	}

	if req.Invert {
		ss = append(ss, infallible(StageInvert, ops.Invert))
	}

	if req.Grayscale {
		ss = append(ss, infallible(StageGrayscale, ops.Grayscale))
	}

	return ss
}

// Plan returns the names of the stages req selects, in pipeline order.
// A rotation by an angle other than 90, 180 or 270 is listed but is a no-op.
func Plan(req Request) []string {
	return lo.Map(Stages(nopOps{}, req), func(s Stage, _ int) string {
		return s.Name()
	})
}

func rotate(ops proto.PixelOps, img image.Image, degrees int) image.Image {
	switch degrees {
	case 90:
		return ops.Rotate90(img)
	case 180:
		return ops.Rotate180(img)
	case 270:
		return ops.Rotate270(img)
	}
	return img
}

// Rotates reports whether a rotation by degrees changes the image.
func Rotates(degrees int) bool {
	return lo.Contains(quarterTurns, degrees)
}

func describe(req Request, name string) string {
	switch name {
	case StageBlur:
		return fmt.Sprintf("sigma=%v", *req.Blur)
	case StageBrighten:
		return fmt.Sprintf("delta=%d", *req.Brighten)
	case StageCrop:
		return fmt.Sprintf("rect=%s", req.Crop)
	case StageRotate:
		return fmt.Sprintf("degrees=%d", *req.Rotate)
	}
	return ""
}

// nopOps lets Plan build stages without touching pixels.
type nopOps struct{}

func (nopOps) Blur(img image.Image, _ float64) image.Image { return img }
func (nopOps) Brighten(img image.Image, _ int) image.Image { return img }
func (nopOps) Rotate90(img image.Image) image.Image { return img }
func (nopOps) Rotate180(img image.Image) image.Image { return img }
func (nopOps) Rotate270(img image.Image) image.Image { return img }
func (nopOps) Invert(img image.Image) image.Image { return img }
func (nopOps) Grayscale(img image.Image) image.Image { return img }
func (nopOps) Crop(img image.Image, _ image.Rectangle) (image.Image, error) {
	return img, nil
}
