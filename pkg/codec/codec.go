package codec

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/inhies/go-bytesize"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"

	"pixkit/pkg/proto"
)

func New(fs afero.Fs, logger *zap.Logger, opts ...Option) *Codec {
	c := &Codec{
		fs:  fs,
		log: logger,
		// options
		quality: DefaultJPEGQuality,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

var _ proto.Codec = (*Codec)(nil)

// Codec reads and writes images through an afero file system. The format of
// a file is taken from its extension when saving and from its content when
// loading.
type Codec struct {
	fs  afero.Fs
	log *zap.Logger
	// options
	quality    int
	autoOrient bool
}

// Decode reads a whole image from r. The EXIF orientation is only applied
// with WithAutoOrientation.
func (c *Codec) Decode(r io.Reader) (image.Image, string, error) {
	bs, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", proto.ErrDecode, err)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(bs))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", proto.ErrDecode, err)
	}

	img, err := imaging.Decode(bytes.NewReader(bs), imaging.AutoOrientation(c.autoOrient))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", proto.ErrDecode, err)
	}

	return img, format, nil
}

// Encode writes img to w. format is a file extension such as "png" or "jpg".
func (c *Codec) Encode(w io.Writer, img image.Image, format string) error {
	f, err := imaging.FormatFromExtension(format)
	if err != nil {
		return fmt.Errorf("%w: %v", proto.ErrEncode, err)
	}

	if err := imaging.Encode(w, img, f, imaging.JPEGQuality(c.quality)); err != nil {
		return fmt.Errorf("%w: %s: %v", proto.ErrEncode, f, err)
	}

	return nil
}

func (c *Codec) Load(path string) (image.Image, error) {
	bs, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", proto.ErrDecode, path, err)
	}

	img, format, err := c.Decode(bytes.NewReader(bs))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	c.log.With(
		zap.String("path", path),
		zap.String("format", format),
		zap.String("size", bytesize.New(float64(len(bs))).String()),
		zap.Int("w", img.Bounds().Dx()),
		zap.Int("h", img.Bounds().Dy()),
	).Debug("loaded")

	return img, nil
}

// Save encodes img in the format named by the extension of path. The file
// only appears once it has been written completely; on failure nothing is
// left behind.
func (c *Codec) Save(img image.Image, path string) error {
	var buf bytes.Buffer
	if err := c.Encode(&buf, img, filepath.Ext(path)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if exists, err := afero.DirExists(c.fs, dir); err != nil {
		return fmt.Errorf("%w: %s: %v", proto.ErrEncode, path, err)
	} else if !exists {
		return fmt.Errorf("%w: %s: directory %s does not exist", proto.ErrEncode, path, dir)
	}

	tmp := tempName(dir)
	if err := afero.WriteFile(c.fs, tmp, buf.Bytes(), 0644); err != nil {
		_ = c.fs.Remove(tmp)
		return fmt.Errorf("%w: %s: %v", proto.ErrEncode, path, err)
	}

	if err := c.fs.Rename(tmp, path); err != nil {
		_ = c.fs.Remove(tmp)
		return fmt.Errorf("%w: %s: %v", proto.ErrEncode, path, err)
	}

	c.log.With(
		zap.String("path", path),
		zap.String("size", bytesize.New(float64(buf.Len())).String()),
		zap.Int("w", img.Bounds().Dx()),
		zap.Int("h", img.Bounds().Dy()),
	).Info("saved")

	return nil
}
