package cli

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	flag "github.com/spf13/pflag"

	"pixkit/pkg/codec"
	"pixkit/pkg/generate"
	"pixkit/pkg/pipeline"
	"pixkit/pkg/proto"
)

var transformFlags = []string{"blur", "brighten", "crop", "rotate", "invert", "grayscale"}

type flags struct {
	blur      float64
	brighten  int
	crop      string
	rotate    int
	invert    bool
	grayscale bool

	debug    bool
	dryRun   bool
	quality  int
	size     int
	progress bool

	autoOrient bool
}

func (f *flags) registerTransform(fs *flag.FlagSet) {
	fs.Float64VarP(&f.blur, "blur", "u", 0, "gaussian blur sigma, greater than 0")
	fs.IntVarP(&f.brighten, "brighten", "b", 0, "add to every color channel, may be negative")
	fs.StringVarP(&f.crop, "crop", "c", "", "crop to x,y,width,height")
	fs.IntVarP(&f.rotate, "rotate", "r", 0, "rotate clockwise by 90, 180 or 270 degrees, other angles are ignored")
	fs.BoolVarP(&f.invert, "invert", "i", false, "invert colors")
	fs.BoolVarP(&f.grayscale, "grayscale", "g", false, "convert to grayscale")
}

func (f *flags) registerGlobal(fs *flag.FlagSet, env Env) {
	fs.BoolVar(&f.debug, "debug", env.envBool("PIXKIT_DEBUG", false), "set debug")
	fs.BoolVar(&f.dryRun, "dry-run", false, "log what would be done without writing the output")
	fs.BoolVar(&f.autoOrient, "auto-orient", false, "apply the EXIF orientation of jpeg input before transforming")
	fs.IntVar(&f.quality, "quality", env.envInt("PIXKIT_JPEG_QUALITY", codec.DefaultJPEGQuality), "jpeg output quality, 1 to 100")
}

func (f *flags) registerGenerate(fs *flag.FlagSet, env Env) {
	fs.IntVar(&f.size, "size", env.envInt("PIXKIT_SIZE", generate.Size), "width and height of the generated image")
	fs.BoolVar(&f.progress, "progress", false, "show a progress bar while generating")
}

func (f *flags) config() Config {
	return Config{
		Debug:    f.debug,
		DryRun:   f.dryRun,
		Quality:  f.quality,
		Size:     f.size,
		Progress: f.progress,

		AutoOrient: f.autoOrient,
	}
}

// request builds the transformation request from the flags that were set.
func (f *flags) request(fs *flag.FlagSet) (pipeline.Request, error) {
	var req pipeline.Request

	if fs.Changed("blur") {
		req.Blur = lo.ToPtr(f.blur)
	}
	if fs.Changed("brighten") {
		req.Brighten = lo.ToPtr(f.brighten)
	}
	if fs.Changed("crop") {
		rect, err := pipeline.ParseRect(f.crop)
		if err != nil {
			return pipeline.Request{}, err
		}
		req.Crop = &rect
	}
	if fs.Changed("rotate") {
		req.Rotate = lo.ToPtr(f.rotate)
	}
	req.Invert = f.invert
	req.Grayscale = f.grayscale

	return req, req.Validate()
}

// rejectTransform fails with a usage error when any transformation flag was
// given to a command that does not transform.
func rejectTransform(fs *flag.FlagSet, command string) error {
	set := lo.Filter(transformFlags, func(name string, _ int) bool {
		return fs.Changed(name)
	})
	if len(set) == 0 {
		return nil
	}

	names := lo.Map(set, func(name string, _ int) string {
		return "--" + name
	})
	return fmt.Errorf("%w: %s cannot be used with %s", proto.ErrUsage, strings.Join(names, ", "), command)
}
