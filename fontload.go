package ui

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strings"
)

// ErrFontNotFound is returned by LoadFontData when no candidate source
// yields readable font bytes. Callers recover by baking in degraded mode;
// this never becomes a fatal error.
var ErrFontNotFound = errors.New("no readable font source")

// resourceFS is the bundled resource filesystem (typically an embed.FS
// registered by the application). Looked up by the same path string as
// the filesystem attempt. Set once at startup, read-only afterwards.
var resourceFS fs.FS

// SetResourceFS registers the bundled resource filesystem used as the
// second font lookup source. Call once during startup, before any font
// loading.
func SetResourceFS(fsys fs.FS) {
	resourceFS = fsys
}

// systemFontCandidates returns OS-specific absolute paths tried after the
// requested path fails. Order matters for test reproducibility.
func systemFontCandidates() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			`C:\Windows\Fonts\segoeui.ttf`,
			`C:\Windows\Fonts\arial.ttf`,
		}
	case "darwin":
		return []string{
			"/System/Library/Fonts/SFNS.ttf",
			"/Library/Fonts/Arial.ttf",
		}
	default:
		return []string{
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
		}
	}
}

// LoadFontData resolves a font file, trying in order:
//
//  1. path as a direct filesystem path
//  2. the same path against the bundled resource FS (see SetResourceFS)
//  3. OS-specific system font candidates
//
// The first readable file wins. It returns the font bytes and the source
// that provided them, or ErrFontNotFound (wrapped) when everything fails.
func LoadFontData(path string) ([]byte, string, error) {
	if data, ok := tryReadFile(path); ok {
		return data, path, nil
	}

	if data, ok := tryReadResource(path); ok {
		return data, path, nil
	}

	for _, candidate := range systemFontCandidates() {
		if data, ok := tryReadFile(candidate); ok {
			uiLogger.Info("loaded fallback system font", "path", candidate)
			return data, candidate, nil
		}
	}

	return nil, "", fmt.Errorf("load font %q: %w", path, ErrFontNotFound)
}

func tryReadFile(path string) ([]byte, bool) {
	if path == "" {
		return nil, false
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return data, true
}

func tryReadResource(path string) ([]byte, bool) {
	if resourceFS == nil || path == "" {
		return nil, false
	}
	// fs.FS paths are slash-separated and never rooted.
	clean := strings.TrimPrefix(path, "/")
	data, err := fs.ReadFile(resourceFS, clean)
	if err != nil {
		return nil, false
	}
	return data, true
}
