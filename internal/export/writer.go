package export

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Writer saves artifacts into an output directory under timestamped
// names: <prefix>_<kind>_<timestamp><ext>.
type Writer struct {
	outputDir string
	prefix    string
	format    Format
	now       func() time.Time
}

// NewWriter creates a writer for outputDir. An empty outputDir writes to
// the working directory.
func NewWriter(outputDir, prefix string, format Format) *Writer {
	return &Writer{
		outputDir: outputDir,
		prefix:    prefix,
		format:    format,
		now:       time.Now,
	}
}

// Filename generates a filename for kind without creating anything.
func (w *Writer) Filename(kind, ext string) string {
	timestamp := w.now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s_%s%s", w.prefix, kind, timestamp, ext)
	if w.outputDir != "" {
		filename = filepath.Join(w.outputDir, filename)
	}
	return filename
}

// SaveImage writes img in the writer's format and returns the path.
func (w *Writer) SaveImage(kind string, img image.Image) (string, error) {
	if err := w.ensureDir(); err != nil {
		return "", err
	}
	filename := w.Filename(kind, w.format.Ext())
	if err := SaveImage(filename, img, w.format); err != nil {
		return "", err
	}
	return filename, nil
}

// Save creates a file for kind with extension ext and fills it with
// write. It returns the path.
func (w *Writer) Save(kind, ext string, write func(io.Writer) error) (string, error) {
	if err := w.ensureDir(); err != nil {
		return "", err
	}
	filename := w.Filename(kind, ext)
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := write(file); err != nil {
		return "", fmt.Errorf("writing %s: %w", filename, err)
	}
	if err := file.Close(); err != nil {
		return "", err
	}
	return filename, nil
}

func (w *Writer) ensureDir() error {
	if w.outputDir == "" {
		return nil
	}
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	return nil
}
