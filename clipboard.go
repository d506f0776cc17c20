package ui

// ClipboardProvider abstracts system clipboard access. The platform layer
// implements it (backend/opengl ships a GLFW implementation) and
// registers it at startup; text widgets read and write through the
// package-level helpers.
type ClipboardProvider interface {
	// GetText retrieves text from the system clipboard. Returns the empty
	// string when the clipboard is empty or holds non-text data.
	GetText() string

	// SetText copies text to the system clipboard.
	SetText(text string)
}

// Set once during startup, read-only afterwards.
var clipboardProvider ClipboardProvider

// SetClipboardProvider registers the clipboard implementation. Call once
// during application initialization:
//
//	ui.SetClipboardProvider(opengl.NewGLFWClipboard(window))
func SetClipboardProvider(cp ClipboardProvider) {
	clipboardProvider = cp
}

// ClipboardGetText retrieves clipboard text, or "" when no provider is
// registered.
func ClipboardGetText() string {
	if clipboardProvider != nil {
		return clipboardProvider.GetText()
	}
	return ""
}

// ClipboardSetText copies text to the clipboard. No-op without a
// registered provider.
func ClipboardSetText(text string) {
	if clipboardProvider != nil {
		clipboardProvider.SetText(text)
	}
}

// ClipboardAvailable reports whether a clipboard provider is registered.
func ClipboardAvailable() bool {
	return clipboardProvider != nil
}
