package imagex

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logifrete/protocolos/internal/common"
)

func encodePNG(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func decodeResult(t *testing.T, uri string) image.Image {
	t.Helper()
	data, mime, err := ParseDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mime)

	img, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	return img
}

func TestCompress_WideImageIsScaledDown(t *testing.T) {
	src := encodePNG(t, 2400, 1800)

	uri, err := Compress(src, DefaultMaxWidth, DefaultQuality)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))

	out := decodeResult(t, uri)
	assert.Equal(t, 1200, out.Bounds().Dx())
	// 1800 * 1200 / 2400
	assert.Equal(t, 900, out.Bounds().Dy())
}

func TestCompress_AspectRatioPreservedWithinRounding(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{name: "landscape", width: 4000, height: 3000, wantW: 1200, wantH: 900},
		{name: "portrait", width: 1500, height: 2000, wantW: 1200, wantH: 1600},
		{name: "odd ratio rounds down", width: 1201, height: 997, wantW: 1200, wantH: 996},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uri, err := Compress(encodePNG(t, tc.width, tc.height), DefaultMaxWidth, DefaultQuality)
			require.NoError(t, err)

			out := decodeResult(t, uri)
			assert.Equal(t, tc.wantW, out.Bounds().Dx())
			assert.Equal(t, tc.wantH, out.Bounds().Dy())
		})
	}
}

func TestCompress_NarrowImageKeepsDimensions(t *testing.T) {
	uri, err := Compress(encodePNG(t, 800, 600), DefaultMaxWidth, DefaultQuality)
	require.NoError(t, err)

	out := decodeResult(t, uri)
	assert.Equal(t, 800, out.Bounds().Dx())
	assert.Equal(t, 600, out.Bounds().Dy())
}

func TestCompress_ExactBoundKeepsDimensions(t *testing.T) {
	uri, err := Compress(encodePNG(t, 1200, 500), DefaultMaxWidth, DefaultQuality)
	require.NoError(t, err)

	out := decodeResult(t, uri)
	assert.Equal(t, 1200, out.Bounds().Dx())
	assert.Equal(t, 500, out.Bounds().Dy())
}

func TestCompress_UnreadableImage(t *testing.T) {
	_, err := Compress(strings.NewReader("definitely not an image"), DefaultMaxWidth, DefaultQuality)
	assert.ErrorIs(t, err, common.ErrDecode)
}

func TestCompressDataURI_Reentrant(t *testing.T) {
	first, err := Compress(encodePNG(t, 2400, 1200), DefaultMaxWidth, DefaultQuality)
	require.NoError(t, err)

	second, err := CompressDataURI(first, DefaultMaxWidth, DefaultQuality)
	require.NoError(t, err)

	out := decodeResult(t, second)
	assert.Equal(t, 1200, out.Bounds().Dx())
	assert.Equal(t, 600, out.Bounds().Dy())
}

func TestCompressDataURI_BadPayload(t *testing.T) {
	_, err := CompressDataURI("data:image/jpeg;base64,%%%%", DefaultMaxWidth, DefaultQuality)
	assert.ErrorIs(t, err, common.ErrDecode)
}
