package codec

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pixkit/pkg/generate"
	"pixkit/pkg/proto"
	"pixkit/pkg/raster"
)

func newTestCodec(t *testing.T, opts ...Option) (*Codec, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/work", 0755))
	return New(fs, zap.NewNop(), opts...), fs
}

// toRGB draws img onto a new RGB image so pixel bytes can be compared.
func toRGB(img image.Image) *raster.RGB {
	dst := raster.NewRGB(img.Bounds())
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}

func TestSaveLoadRoundTrip(t *testing.T) {
	c, fs := newTestCodec(t)
	src := generate.NewGradient()

	require.NoError(t, c.Save(src, "/work/gradient.png"))

	bs, err := afero.ReadFile(fs, "/work/gradient.png")
	require.NoError(t, err)
	// IHDR color type 2: truecolor without alpha
	assert.Equal(t, byte(2), bs[25])

	img, err := c.Load("/work/gradient.png")
	require.NoError(t, err)
	require.Equal(t, src.Bounds(), img.Bounds())

	got := toRGB(img)
	assert.True(t, bytes.Equal(src.Pix, got.Pix), "png round trip must be lossless")
	assert.Equal(t, raster.Color{R: 107, G: 107, B: 115}, got.RGBAt(100, 100))
}

func TestSaveLeavesOnlyTarget(t *testing.T) {
	c, fs := newTestCodec(t)

	require.NoError(t, c.Save(generate.NewFractal(generate.WithSize(16, 16)), "/work/out.jpg"))

	names, err := afero.ReadDir(fs, "/work")
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, "out.jpg", names[0].Name())
}

func TestSaveFailures(t *testing.T) {
	c, fs := newTestCodec(t)
	img := generate.NewGradient(generate.WithSize(4, 4))

	err := c.Save(img, "/work/out.xyz")
	assert.ErrorIs(t, err, proto.ErrEncode)

	err = c.Save(img, "/missing/out.png")
	assert.ErrorIs(t, err, proto.ErrEncode)

	names, err := afero.ReadDir(fs, "/work")
	require.NoError(t, err)
	assert.Empty(t, names)

	ro := New(afero.NewReadOnlyFs(fs), zap.NewNop())
	err = ro.Save(img, "/work/out.png")
	assert.ErrorIs(t, err, proto.ErrEncode)

	exists, err := afero.Exists(fs, "/work/out.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLoadFailures(t *testing.T) {
	c, fs := newTestCodec(t)

	_, err := c.Load("/work/missing.png")
	assert.ErrorIs(t, err, proto.ErrDecode)

	require.NoError(t, afero.WriteFile(fs, "/work/junk.png", []byte("not an image"), 0644))
	_, err = c.Load("/work/junk.png")
	assert.ErrorIs(t, err, proto.ErrDecode)
}

func TestDecodeFormat(t *testing.T) {
	c, _ := newTestCodec(t)
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(1, 1, color.NRGBA{R: 9, G: 8, B: 7, A: 255})

	for _, ext := range []string{"png", ".bmp", "gif", "tiff", "jpg"} {
		var buf bytes.Buffer
		require.NoError(t, c.Encode(&buf, src, ext), ext)

		img, format, err := c.Decode(&buf)
		require.NoError(t, err, ext)
		assert.NotEmpty(t, format)
		assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds(), ext)
	}
}

func TestJPEGQuality(t *testing.T) {
	img := generate.NewFractal(generate.WithSize(64, 64))

	low, _ := newTestCodec(t, WithJPEGQuality(10))
	high, _ := newTestCodec(t, WithJPEGQuality(100))

	var lb, hb bytes.Buffer
	require.NoError(t, low.Encode(&lb, img, "jpeg"))
	require.NoError(t, high.Encode(&hb, img, "jpeg"))
	assert.Less(t, lb.Len(), hb.Len())

	c, _ := newTestCodec(t, WithJPEGQuality(0))
	assert.Equal(t, DefaultJPEGQuality, c.quality)
}

// rotatedJPEG encodes a w×h JPEG carrying EXIF orientation 6, which asks
// viewers to turn it a quarter clockwise.
func rotatedJPEG(t *testing.T, w, h int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewGray(image.Rect(0, 0, w, h)), nil))
	bs := buf.Bytes()

	app1 := []byte{
		// APP1, length 34
		0xFF, 0xE1, 0x00, 0x22,
		'E', 'x', 'i', 'f', 0x00, 0x00,
		// big endian TIFF header, first IFD at offset 8
		'M', 'M', 0x00, 0x2A, 0x00, 0x00, 0x00, 0x08,
		// one entry: orientation, SHORT, count 1, value 6
		0x00, 0x01,
		0x01, 0x12, 0x00, 0x03, 0x00, 0x00, 0x00, 0x01, 0x00, 0x06, 0x00, 0x00,
		// no next IFD
		0x00, 0x00, 0x00, 0x00,
	}

	out := append([]byte{}, bs[:2]...)
	out = append(out, app1...)
	return append(out, bs[2:]...)
}

func TestDecodeOrientation(t *testing.T) {
	data := rotatedJPEG(t, 4, 2)

	c, fs := newTestCodec(t)
	img, _, err := c.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds(), "stored orientation is kept by default")

	require.NoError(t, afero.WriteFile(fs, "/work/photo.jpg", data, 0644))
	img, err = c.Load("/work/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())

	c, _ = newTestCodec(t, WithAutoOrientation(true))
	img, _, err = c.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 4), img.Bounds())
}
