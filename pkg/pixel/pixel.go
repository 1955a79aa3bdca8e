// Package pixel maps interpolated frames to displayable colors.
package pixel

import (
	"fmt"
	"image"
	"image/color"

	"github.com/xaionaro-go/minfi/pkg/frame"
)

// ToUint8 maps a channel value in [0, 1] to [0, 255], clamping values
// outside of the range. NaN maps to 0.
func ToUint8(v float32) uint8 {
	if v != v {
		return 0
	}
	return uint8(frame.Clamp01(v)*255 + 0.5)
}

// Color interprets the first three values of the frame as red, green and
// blue.
func Color(f frame.Frame) (color.RGBA, error) {
	if len(f) < 3 {
		return color.RGBA{}, fmt.Errorf("a color requires at least 3 values, but the frame has %d", len(f))
	}
	return color.RGBA{
		R: ToUint8(f[0]),
		G: ToUint8(f[1]),
		B: ToUint8(f[2]),
		A: 255,
	}, nil
}

// SolidRGBA returns a width x height image filled with Color(f).
func SolidRGBA(f frame.Frame, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	c, err := Color(f)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	px := []byte{c.R, c.G, c.B, c.A}
	for idx := 0; idx < len(img.Pix); idx += len(px) {
		copy(img.Pix[idx:], px)
	}
	return img, nil
}
