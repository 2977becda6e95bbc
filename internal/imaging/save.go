package imaging

import (
	"image"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/ytget/ai-image-generator/internal/model"
)

// File naming
const (
	GeneratedSuffix = "_AI_Generated_"
	TimestampLayout = "20060102_150405"
	FilePermissions = 0644

	maxSuggestedNameRunes = 40
)

var unsafeNameChars = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// ResolveSavePath returns the path and kind a save request resolves to. A path
// that already ends in a recognised image extension is kept and its extension
// decides the format. Any other path gets "_AI_Generated_<timestamp>.<ext>"
// appended, using the selected kind.
func ResolveSavePath(path string, kind model.ImageKind, now time.Time) (string, model.ImageKind, error) {
	if !kind.IsSupported() {
		return "", "", model.Errorf(model.KindFileSave, "unsupported file format: %q", kind)
	}
	if strings.TrimSpace(path) == "" {
		return "", "", model.Errorf(model.KindFileSave, "no file name given")
	}

	if pathKind, ok := model.ImageKindFromPath(path); ok {
		return path, pathKind, nil
	}

	return path + GeneratedSuffix + now.Format(TimestampLayout) + "." + kind.Extension(), kind, nil
}

// Save encodes img and writes it to the path resolved by ResolveSavePath.
// It returns the path actually written.
func Save(img image.Image, path string, kind model.ImageKind, now time.Time) (string, error) {
	if img == nil {
		return "", model.Errorf(model.KindFileSave, "no image to save")
	}

	target, targetKind, err := ResolveSavePath(path, kind, now)
	if err != nil {
		return "", err
	}

	data, err := Encode(img, targetKind)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(target, data, FilePermissions); err != nil {
		return "", model.NewError(model.KindFileSave, "write file", err)
	}
	return target, nil
}

// SuggestFileName builds a default save-dialog file name from the prompt
func SuggestFileName(prompt string, kind model.ImageKind, now time.Time) string {
	base := strings.Trim(unsafeNameChars.ReplaceAllString(strings.ToLower(prompt), "_"), "_")
	if runes := []rune(base); len(runes) > maxSuggestedNameRunes {
		base = strings.TrimRight(string(runes[:maxSuggestedNameRunes]), "_")
	}
	if base == "" {
		base = "image"
	}
	ext := kind.Extension()
	if ext == "" {
		ext = model.DefaultImageKind.Extension()
	}
	return base + GeneratedSuffix + now.Format(TimestampLayout) + "." + ext
}

// SameFile reports whether two paths point at the same cleaned location
func SameFile(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
