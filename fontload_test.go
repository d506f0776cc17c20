package ui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestLoadFontDataFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.ttf")
	want := []byte("font bytes")
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatal(err)
	}

	data, source, err := LoadFontData(path)
	if err != nil {
		t.Fatalf("LoadFontData: %v", err)
	}
	if string(data) != string(want) {
		t.Errorf("data = %q, want %q", data, want)
	}
	if source != path {
		t.Errorf("source = %q, want %q", source, path)
	}
}

func TestLoadFontDataFromResourceFS(t *testing.T) {
	old := resourceFS
	defer func() { resourceFS = old }()

	want := []byte("embedded font")
	SetResourceFS(fstest.MapFS{
		"fonts/Default.ttf": &fstest.MapFile{Data: want},
	})

	// Leading slash is stripped for the fs.FS lookup.
	data, source, err := LoadFontData("/fonts/Default.ttf")
	if err != nil {
		t.Fatalf("LoadFontData: %v", err)
	}
	if string(data) != string(want) {
		t.Errorf("data = %q, want %q", data, want)
	}
	if source != "/fonts/Default.ttf" {
		t.Errorf("source = %q, want the requested path", source)
	}
}

func TestLoadFontDataPrefersFileOverResource(t *testing.T) {
	old := resourceFS
	defer func() { resourceFS = old }()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.ttf")
	if err := os.WriteFile(path, []byte("disk"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetResourceFS(fstest.MapFS{
		path[1:]: &fstest.MapFile{Data: []byte("resource")},
	})

	data, _, err := LoadFontData(path)
	if err != nil {
		t.Fatalf("LoadFontData: %v", err)
	}
	if string(data) != "disk" {
		t.Errorf("data = %q, want the filesystem copy", data)
	}
}

func TestLoadFontDataFallsBackToSystemFonts(t *testing.T) {
	old := resourceFS
	defer func() { resourceFS = old }()
	resourceFS = nil

	data, source, err := LoadFontData("/definitely/missing/font.ttf")
	if err != nil {
		// No system fonts on this machine: the error must identify the
		// terminal condition.
		if !errors.Is(err, ErrFontNotFound) {
			t.Fatalf("err = %v, want wrapped ErrFontNotFound", err)
		}
		return
	}

	// A system font answered; the source must be one of the candidates.
	if len(data) == 0 {
		t.Error("fallback returned empty font data")
	}
	for _, candidate := range systemFontCandidates() {
		if source == candidate {
			return
		}
	}
	t.Errorf("source = %q, not a system font candidate", source)
}

func TestLoadFontDataEmptyPath(t *testing.T) {
	old := resourceFS
	defer func() { resourceFS = old }()
	resourceFS = nil

	_, _, err := LoadFontData("")
	if err == nil {
		// System fonts can still answer an empty request path.
		return
	}
	if !errors.Is(err, ErrFontNotFound) {
		t.Errorf("err = %v, want wrapped ErrFontNotFound", err)
	}
}
