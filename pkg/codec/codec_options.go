package codec

const DefaultJPEGQuality = 95

type Option func(c *Codec)

// WithJPEGQuality sets the quality of JPEG output, 1 to 100. Other values
// keep the default.
func WithJPEGQuality(quality int) Option {
	return func(c *Codec) {
		if quality >= 1 && quality <= 100 {
			c.quality = quality
		}
	}
}

// WithAutoOrientation makes Decode apply the EXIF orientation tag of JPEG
// input. It is off by default, pixel coordinates then refer to the stored
// image.
func WithAutoOrientation(enabled bool) Option {
	return func(c *Codec) {
		c.autoOrient = enabled
	}
}
