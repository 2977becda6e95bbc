package model

import (
	"image"
	"path/filepath"
	"strings"
)

// ImageKind identifies one of the supported raster formats
type ImageKind string

const (
	ImageKindPNG  ImageKind = "png"
	ImageKindJPEG ImageKind = "jpeg"
	ImageKindBMP  ImageKind = "bmp"
)

// DefaultImageKind is assumed when the server does not say otherwise
const DefaultImageKind = ImageKindPNG

// SupportedImageKinds lists the kinds offered when saving, in display order
var SupportedImageKinds = []ImageKind{ImageKindPNG, ImageKindJPEG, ImageKindBMP}

// String returns the string representation of ImageKind
func (k ImageKind) String() string {
	return string(k)
}

// IsSupported reports whether the kind is one of SupportedImageKinds
func (k ImageKind) IsSupported() bool {
	switch k {
	case ImageKindPNG, ImageKindJPEG, ImageKindBMP:
		return true
	}
	return false
}

// Extension returns the canonical file extension without the leading dot
func (k ImageKind) Extension() string {
	switch k {
	case ImageKindPNG:
		return "png"
	case ImageKindJPEG:
		return "jpg"
	case ImageKindBMP:
		return "bmp"
	}
	return ""
}

// Extensions returns every recognised extension (with dot) for the kind
func (k ImageKind) Extensions() []string {
	switch k {
	case ImageKindPNG:
		return []string{".png"}
	case ImageKindJPEG:
		return []string{".jpg", ".jpeg"}
	case ImageKindBMP:
		return []string{".bmp"}
	}
	return nil
}

// MIMEType returns the media type for the kind
func (k ImageKind) MIMEType() string {
	switch k {
	case ImageKindPNG:
		return "image/png"
	case ImageKindJPEG:
		return "image/jpeg"
	case ImageKindBMP:
		return "image/bmp"
	}
	return ""
}

// Label returns the file-type filter label shown in the save dialog
func (k ImageKind) Label() string {
	switch k {
	case ImageKindPNG:
		return "PNG files (*.png)"
	case ImageKindJPEG:
		return "JPEG files (*.jpg;*.jpeg)"
	case ImageKindBMP:
		return "BMP files (*.bmp)"
	}
	return string(k)
}

// ImageKindFromPath returns the kind implied by a recognised image extension.
// ok is false when the path has no extension or an unrecognised one.
func ImageKindFromPath(path string) (ImageKind, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, kind := range SupportedImageKinds {
		for _, candidate := range kind.Extensions() {
			if ext == candidate {
				return kind, true
			}
		}
	}
	return "", false
}

// ImageKindFromLabel maps a save-dialog label back to its kind
func ImageKindFromLabel(label string) (ImageKind, bool) {
	for _, kind := range SupportedImageKinds {
		if kind.Label() == label {
			return kind, true
		}
	}
	return "", false
}

// GeneratedImage is the payload of a successful job. Data holds the bytes exactly
// as received; Decoded is the validated in-memory image.
type GeneratedImage struct {
	Data        []byte
	Kind        ImageKind
	ContentType string
	Width       int
	Height      int
	Decoded     image.Image
}

// Size returns the pixel size of the decoded image
func (g *GeneratedImage) Size() (int, int) {
	if g == nil {
		return 0, 0
	}
	return g.Width, g.Height
}
