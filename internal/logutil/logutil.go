// Package logutil configures the standard logger, optionally with a
// size-rotated log file.
package logutil

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ytget/ai-image-generator/internal/platform"
)

const (
	LogFileName = "ai_image_generator.log"
	MaxSizeMB   = 10
	MaxArchives = 3
)

// NewRotatingWriter returns a writer that appends to path and keeps at most
// archives rotated copies of maxSizeMB each
func NewRotatingWriter(path string, maxSizeMB, archives int) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: archives,
	}
}

// Setup points the standard logger at a rotating file in dir when
// enableFileLogging is set, otherwise at stderr. The returned closer releases
// the file and is never nil.
func Setup(enableFileLogging bool, dir string) io.Closer {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if !enableFileLogging {
		log.SetOutput(os.Stderr)
		return io.NopCloser(nil)
	}

	if dir != "" {
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
			log.SetOutput(os.Stderr)
			return io.NopCloser(nil)
		}
	}

	w := NewRotatingWriter(filepath.Join(dir, LogFileName), MaxSizeMB, MaxArchives)
	log.SetOutput(w)
	return w
}
