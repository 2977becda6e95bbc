// Package imaging decodes, scales and saves generated images.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/ytget/ai-image-generator/internal/model"
)

// JPEGQuality is used when saving JPEG files
const JPEGQuality = 92

// Decode decodes data as the given kind
func Decode(data []byte, kind model.ImageKind) (image.Image, error) {
	if len(data) == 0 {
		return nil, model.Errorf(model.KindDecode, "invalid image data: empty body")
	}

	r := bytes.NewReader(data)
	var (
		img image.Image
		err error
	)
	switch kind {
	case model.ImageKindPNG:
		img, err = png.Decode(r)
	case model.ImageKindJPEG:
		img, err = jpeg.Decode(r)
	case model.ImageKindBMP:
		img, err = bmp.Decode(r)
	default:
		return nil, model.Errorf(model.KindDecode, "unsupported image format: %s", kind)
	}
	if err != nil {
		return nil, model.NewError(model.KindDecode, "invalid image data", err)
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, model.Errorf(model.KindDecode, "invalid image data: empty image")
	}
	return img, nil
}

// FitSize returns the size at which an imgW×imgH image fits inside an
// areaW×areaH display area. The image is only ever scaled down and keeps its
// aspect ratio: scale = min(areaW/imgW, areaH/imgH, 1).
func FitSize(imgW, imgH, areaW, areaH int) (int, int, float64) {
	if imgW <= 0 || imgH <= 0 {
		return 0, 0, 0
	}
	if areaW <= 0 || areaH <= 0 {
		return imgW, imgH, 1
	}

	scale := math.Min(math.Min(float64(areaW)/float64(imgW), float64(areaH)/float64(imgH)), 1.0)

	w := int(float64(imgW) * scale)
	h := int(float64(imgH) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h, scale
}

// Scale resamples img to w×h with Catmull-Rom interpolation. img is
// returned unchanged when the size already matches.
func Scale(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// FitImage scales img down to fit the display area
func FitImage(img image.Image, areaW, areaH int) image.Image {
	b := img.Bounds()
	w, h, scale := FitSize(b.Dx(), b.Dy(), areaW, areaH)
	if scale >= 1 {
		return img
	}
	return Scale(img, w, h)
}

// Encode writes img into a buffer in the given format
func Encode(img image.Image, kind model.ImageKind) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch kind {
	case model.ImageKindPNG:
		err = png.Encode(&buf, img)
	case model.ImageKindJPEG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality})
	case model.ImageKindBMP:
		err = bmp.Encode(&buf, img)
	default:
		return nil, model.Errorf(model.KindFileSave, "unsupported file format: %s", kind)
	}
	if err != nil {
		return nil, model.NewError(model.KindFileSave, fmt.Sprintf("encode %s", kind), err)
	}
	return buf.Bytes(), nil
}
