package imaging

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/ytget/ai-image-generator/internal/model"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func TestFitSize(t *testing.T) {
	tests := []struct {
		name          string
		imgW, imgH    int
		areaW, areaH  int
		expectW       int
		expectH       int
		expectedScale float64
	}{
		{"smaller image is never upscaled", 100, 50, 760, 480, 100, 50, 1},
		{"exact fit", 760, 480, 760, 480, 760, 480, 1},
		{"width bound", 1520, 480, 760, 480, 760, 240, 0.5},
		{"height bound", 1024, 1024, 760, 480, 480, 480, 480.0 / 1024.0},
		{"tall image", 500, 1920, 760, 480, 125, 480, 0.25},
		{"degenerate area keeps size", 300, 200, 0, 0, 300, 200, 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w, h, scale := FitSize(test.imgW, test.imgH, test.areaW, test.areaH)
			if w != test.expectW || h != test.expectH {
				t.Errorf("FitSize = %dx%d, expected %dx%d", w, h, test.expectW, test.expectH)
			}
			if math.Abs(scale-test.expectedScale) > 1e-9 {
				t.Errorf("scale = %f, expected %f", scale, test.expectedScale)
			}
		})
	}
}

func TestFitSize_NeverExceedsAreaAndKeepsRatio(t *testing.T) {
	for imgW := 1; imgW <= 3000; imgW += 97 {
		for imgH := 1; imgH <= 3000; imgH += 89 {
			w, h, scale := FitSize(imgW, imgH, 760, 480)

			if scale > 1 {
				t.Fatalf("%dx%d: scale %f > 1", imgW, imgH, scale)
			}
			if w > 760 || h > 480 {
				t.Fatalf("%dx%d: fitted %dx%d exceeds display area", imgW, imgH, w, h)
			}
			if w > imgW || h > imgH {
				t.Fatalf("%dx%d: fitted %dx%d is larger than the source", imgW, imgH, w, h)
			}
			expected := math.Min(math.Min(760/float64(imgW), 480/float64(imgH)), 1)
			if math.Abs(scale-expected) > 1e-12 {
				t.Fatalf("%dx%d: scale %f, expected %f", imgW, imgH, scale, expected)
			}
		}
	}
}

func TestFitSize_InvalidImage(t *testing.T) {
	w, h, scale := FitSize(0, 10, 100, 100)
	if w != 0 || h != 0 || scale != 0 {
		t.Errorf("Expected zero result for empty image, got %dx%d scale %f", w, h, scale)
	}
}

func TestFitImage(t *testing.T) {
	src := testImage(200, 100)

	fitted := FitImage(src, 50, 50)
	if b := fitted.Bounds(); b.Dx() != 50 || b.Dy() != 25 {
		t.Errorf("Expected 50x25, got %dx%d", b.Dx(), b.Dy())
	}

	same := FitImage(src, 800, 600)
	if same != src {
		t.Error("Expected image smaller than the area to be returned unchanged")
	}
}

func TestEncodeDecodeRoundTripKinds(t *testing.T) {
	src := testImage(8, 6)

	for _, kind := range model.SupportedImageKinds {
		data, err := Encode(src, kind)
		if err != nil {
			t.Fatalf("Encode(%s) failed: %v", kind, err)
		}

		img, err := Decode(data, kind)
		if err != nil {
			t.Fatalf("Decode(%s) failed: %v", kind, err)
		}
		if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
			t.Errorf("%s: expected 8x6, got %dx%d", kind, b.Dx(), b.Dy())
		}
	}
}

func TestDecode_Errors(t *testing.T) {
	if _, err := Decode(nil, model.ImageKindPNG); model.KindOf(err) != model.KindDecode {
		t.Errorf("Expected decode error for empty data, got %v", err)
	}

	if _, err := Decode([]byte("<html>not an image</html>"), model.ImageKindPNG); model.KindOf(err) != model.KindDecode {
		t.Errorf("Expected decode error for garbage, got %v", err)
	}

	if _, err := Decode([]byte{1, 2, 3}, model.ImageKind("gif")); model.KindOf(err) != model.KindDecode {
		t.Errorf("Expected decode error for unsupported kind, got %v", err)
	}
}

func TestEncode_UnsupportedKind(t *testing.T) {
	_, err := Encode(testImage(2, 2), model.ImageKind("tiff"))
	if model.KindOf(err) != model.KindFileSave {
		t.Errorf("Expected file save error, got %v", err)
	}
}
