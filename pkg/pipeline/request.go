package pipeline

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"pixkit/pkg/proto"
)

// Request selects the transformations to apply. Nil pointers and false
// flags are skipped. The order of the fields has no effect on the order in
// which the stages run.
type Request struct {
	Blur      *float64
	Brighten  *int
	Crop      *Rect
	Rotate    *int
	Invert    bool
	Grayscale bool
}

func (r Request) Validate() error {
	if r.Blur != nil && !(*r.Blur > 0) {
		return errors.Wrapf(proto.ErrInvalidArgument, "blur sigma must be greater than 0, got %v", *r.Blur)
	}
	return nil
}

// Empty reports whether the request selects no transformation at all.
func (r Request) Empty() bool {
	return len(Plan(r)) == 0
}

// Rect is a crop rectangle: the top-left corner and the size, in pixels.
type Rect struct {
	X, Y          uint32
	Width, Height uint32
}

// ParseRect parses "x,y,width,height".
func ParseRect(s string) (Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Rect{}, errors.Wrapf(proto.ErrInvalidArgument, "invalid crop value: %s", s)
	}

	names := [4]string{"x", "y", "width", "height"}
	var vals [4]uint32
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return Rect{}, errors.Wrapf(proto.ErrInvalidArgument, "invalid %s value: %s", names[i], part)
		}
		vals[i] = uint32(v)
	}

	return Rect{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}

func (r Rect) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", r.X, r.Y, r.Width, r.Height)
}

// Rectangle converts r to image coordinates. Values past the int range
// cannot occur for uint32 fields on 64-bit platforms.
func (r Rect) Rectangle() image.Rectangle {
	x, y := int(r.X), int(r.Y)
	return image.Rect(x, y, x+int(r.Width), y+int(r.Height))
}
