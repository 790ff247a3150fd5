// Package imaging turns uploaded image bytes into fixed-shape tensors for
// the classifier.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrInvalidImage reports an upload that could not be decoded as an image.
var ErrInvalidImage = errors.New("invalid image")

// Tensor is a normalized image in NHWC layout with shape [1, Size, Size, 3].
type Tensor struct {
	Size int
	// Data holds RGB values row by row, three floats per pixel.
	Data []float32
}

// At returns the value of channel c (0=R, 1=G, 2=B) at pixel (x, y).
func (t *Tensor) At(x, y, c int) float32 {
	return t.Data[(y*t.Size+x)*3+c]
}

// NHWC expands the tensor into nested slices matching the JSON shape
// [1][Size][Size][3] that serving backends expect.
func (t *Tensor) NHWC() [][][][]float32 {
	rows := make([][][]float32, t.Size)
	for y := 0; y < t.Size; y++ {
		cols := make([][]float32, t.Size)
		for x := 0; x < t.Size; x++ {
			off := (y*t.Size + x) * 3
			cols[x] = t.Data[off : off+3 : off+3]
		}
		rows[y] = cols
	}
	return [][][][]float32{rows}
}

// Normalize decodes arbitrary image bytes and resizes them to exactly
// size x size, ignoring the source aspect ratio. Pixel values are kept in
// their native 0-255 range and multiplied by scale; the reference model was
// trained on unscaled values, so callers normally pass 1.0.
// Decode failures, unsupported formats, and empty payloads return an error
// wrapping ErrInvalidImage with the underlying decode message.
func Normalize(data []byte, size int, scale float32) (*Tensor, error) {
	if size <= 0 {
		return nil, fmt.Errorf("resolution must be positive, got %d", size)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidImage)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	t := &Tensor{
		Size: size,
		Data: make([]float32, size*size*3),
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			src := dst.PixOffset(x, y)
			off := (y*size + x) * 3
			t.Data[off] = float32(dst.Pix[src]) * scale
			t.Data[off+1] = float32(dst.Pix[src+1]) * scale
			t.Data[off+2] = float32(dst.Pix[src+2]) * scale
		}
	}
	return t, nil
}
