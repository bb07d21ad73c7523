// Package imagex normalizes captured photos before upload: images wider
// than a bound are scaled down preserving aspect ratio, then re-encoded as
// JPEG at a fixed quality so payloads stay small on flaky mobile links.
package imagex

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	"golang.org/x/image/draw"

	"github.com/logifrete/protocolos/internal/common"

	_ "image/gif"
	_ "image/png"
)

const (
	DefaultMaxWidth = 1200
	DefaultQuality  = 0.7
)

// Compress decodes the image from r, scales it down to at most maxWidth
// pixels wide (height follows proportionally), and re-encodes it as a JPEG
// data URI at the given quality (0–1). Images already within the bound keep
// their dimensions and are only re-encoded.
func Compress(r io.Reader, maxWidth int, quality float64) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDecode, err)
	}

	resized, err := scaleToWidth(src, maxWidth)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	opts := &jpeg.Options{Quality: int(quality * 100)}
	if err := jpeg.Encode(&buf, resized, opts); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrRender, err)
	}

	return EncodeDataURI(buf.Bytes(), "image/jpeg"), nil
}

// CompressDataURI re-runs compression over an already-encoded image, e.g.
// when re-submitting a photo captured in an earlier session.
func CompressDataURI(uri string, maxWidth int, quality float64) (string, error) {
	data, _, err := ParseDataURI(uri)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDecode, err)
	}
	return Compress(bytes.NewReader(data), maxWidth, quality)
}

func scaleToWidth(src image.Image, maxWidth int) (image.Image, error) {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxWidth {
		return src, nil
	}

	newHeight := height * maxWidth / width
	if newHeight < 1 {
		return nil, fmt.Errorf("%w: degenerate target size %dx%d", common.ErrRender, maxWidth, newHeight)
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst, nil
}
