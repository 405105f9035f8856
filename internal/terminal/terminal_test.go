package terminal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetSizeFallsBackForFiles(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if IsTerminal(f) {
		t.Fatal("a regular file is not a terminal")
	}
	w, h := GetSize(f)
	if w != DefaultWidth || h != DefaultHeight {
		t.Errorf("GetSize = %dx%d; want %dx%d", w, h, DefaultWidth, DefaultHeight)
	}
}
