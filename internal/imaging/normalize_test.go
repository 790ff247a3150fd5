package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

// encodePNG renders a w x h image filled with the given color.
func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func TestNormalizeShape(t *testing.T) {
	data := encodePNG(t, 64, 48, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	tensor, err := Normalize(data, 150, 1.0)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	if tensor.Size != 150 {
		t.Errorf("expected size 150, got %d", tensor.Size)
	}
	if len(tensor.Data) != 150*150*3 {
		t.Errorf("expected %d values, got %d", 150*150*3, len(tensor.Data))
	}

	nhwc := tensor.NHWC()
	if len(nhwc) != 1 || len(nhwc[0]) != 150 || len(nhwc[0][0]) != 150 || len(nhwc[0][0][0]) != 3 {
		t.Error("NHWC shape is not [1][150][150][3]")
	}
}

func TestNormalizeUniformColor(t *testing.T) {
	data := encodePNG(t, 32, 32, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	tensor, err := Normalize(data, 10, 1.0)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	if r := tensor.At(5, 5, 0); r != 200 {
		t.Errorf("expected R=200, got %f", r)
	}
	if g := tensor.At(5, 5, 1); g != 100 {
		t.Errorf("expected G=100, got %f", g)
	}
	if b := tensor.At(5, 5, 2); b != 50 {
		t.Errorf("expected B=50, got %f", b)
	}
}

// The reference model consumes raw 0-255 values with no scaling, which is
// unusual for CNN input. The scale parameter exists so a retrained model can
// opt into 0-1 input; this test pins both behaviors.
func TestNormalizePixelRange(t *testing.T) {
	data := encodePNG(t, 8, 8, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	raw, err := Normalize(data, 4, 1.0)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if v := raw.At(0, 0, 0); v != 255 {
		t.Errorf("unscaled white pixel should be 255, got %f", v)
	}

	scaled, err := Normalize(data, 4, 1.0/255.0)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if v := scaled.At(0, 0, 0); v < 0.99 || v > 1.01 {
		t.Errorf("scaled white pixel should be ~1.0, got %f", v)
	}
}

func TestNormalizeIgnoresAspectRatio(t *testing.T) {
	// A wide image still yields an exact square tensor.
	data := encodePNG(t, 300, 20, color.RGBA{R: 10, G: 10, B: 10, A: 255})

	tensor, err := Normalize(data, 150, 1.0)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if len(tensor.Data) != 150*150*3 {
		t.Errorf("expected square tensor, got %d values", len(tensor.Data))
	}
}

func TestNormalizeJPEG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("jpeg encode: %v", err)
	}

	if _, err := Normalize(buf.Bytes(), 150, 1.0); err != nil {
		t.Fatalf("Normalize jpeg: %v", err)
	}
}

func TestNormalizeInvalidInputs(t *testing.T) {
	valid := encodePNG(t, 16, 16, color.Black)

	tests := []struct {
		name string
		data []byte
	}{
		{"empty payload", nil},
		{"not an image", []byte("definitely not pixels")},
		{"truncated png", valid[:20]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.data, 150, 1.0)
			if !errors.Is(err, ErrInvalidImage) {
				t.Errorf("expected ErrInvalidImage, got %v", err)
			}
		})
	}
}
