// Package clipboard copies generated images to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"golang.design/x/clipboard"

	"github.com/ytget/ai-image-generator/internal/imaging"
	"github.com/ytget/ai-image-generator/internal/model"
)

// ErrNoImage is returned when there is nothing to copy
var ErrNoImage = errors.New("no image to copy")

var (
	initOnce sync.Once
	initErr  error
	writeMu  sync.Mutex
)

// Init prepares the system clipboard. It is safe to call repeatedly; the
// first result is remembered.
func Init() error {
	initOnce.Do(func() {
		initErr = clipboard.Init()
	})
	return initErr
}

// WriteImage places img on the clipboard as PNG
func WriteImage(img image.Image) error {
	if img == nil {
		return ErrNoImage
	}
	data, err := imaging.Encode(img, model.ImageKindPNG)
	if err != nil {
		return err
	}
	return write(clipboard.FmtImage, data)
}

// write performs a mutex-guarded clipboard write to prevent corruption under parallel writes
func write(format clipboard.Format, data []byte) error {
	if err := Init(); err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}

	writeMu.Lock()
	defer writeMu.Unlock()
	clipboard.Write(format, data)
	return nil
}
