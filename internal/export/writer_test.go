package export

import (
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixedWriter(dir string) *Writer {
	w := NewWriter(dir, "fractool", PNG)
	w.now = func() time.Time { return time.Date(2026, 3, 1, 12, 30, 45, 0, time.UTC) }
	return w
}

func TestWriterFilename(t *testing.T) {
	w := fixedWriter("renders")
	got := w.Filename("tetra", ".obj")
	want := filepath.Join("renders", "fractool_tetra_2026-03-01_12-30-45.obj")
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	w = fixedWriter("")
	if got := w.Filename("fern", ".png"); got != "fractool_fern_2026-03-01_12-30-45.png" {
		t.Errorf("unexpected filename without dir: %s", got)
	}
}

func TestWriterSaveCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	w := fixedWriter(dir)

	path, err := w.Save("tetra", ".obj", func(out io.Writer) error {
		_, err := io.WriteString(out, "v 0 0 0\n")
		return err
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Errorf("expected path under %s, got %s", dir, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "v 0 0 0\n" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestWriterSaveImage(t *testing.T) {
	w := fixedWriter(t.TempDir())
	path, err := w.SaveImage("height", image.NewGray(image.Rect(0, 0, 4, 4)))
	if err != nil {
		t.Fatalf("SaveImage: %v", err)
	}
	if filepath.Ext(path) != ".png" {
		t.Errorf("expected .png extension, got %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("image not written: %v", err)
	}
}
