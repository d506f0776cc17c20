package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/poorcraft/ui"
)

// GLFWClipboard implements ui.ClipboardProvider on top of the GLFW
// window clipboard.
type GLFWClipboard struct {
	window *glfw.Window
}

// NewGLFWClipboard creates a clipboard provider for the window. Register
// it with ui.SetClipboardProvider during startup.
func NewGLFWClipboard(window *glfw.Window) *GLFWClipboard {
	return &GLFWClipboard{window: window}
}

// GetText retrieves text from the system clipboard.
func (c *GLFWClipboard) GetText() string {
	return c.window.GetClipboardString()
}

// SetText copies text to the system clipboard.
func (c *GLFWClipboard) SetText(text string) {
	c.window.SetClipboardString(text)
}

// GLFWInputAdapter adapts GLFW input to ui.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *ui.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  ui.NewInputState(),
	}

	// Setup callbacks
	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update updates the input state for a new frame.
// Call this at the start of each frame, before glfw.PollEvents.
func (a *GLFWInputAdapter) Update() *ui.InputState {
	a.input.Reset()

	// Update mouse position
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	// Update modifiers
	a.input.ModCtrl = a.window.GetKey(glfw.KeyLeftControl) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightControl) == glfw.Press
	a.input.ModShift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press
	a.input.ModAlt = a.window.GetKey(glfw.KeyLeftAlt) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightAlt) == glfw.Press

	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *ui.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	uiKey := glfwKeyToUIKey(key)
	if uiKey == ui.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(uiKey, true)
	case glfw.Release:
		a.input.SetKey(uiKey, false)
	}
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.input.AddChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	uiButton := glfwMouseButtonToUI(button)
	if uiButton < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(uiButton, true)
	case glfw.Release:
		a.input.SetMouseButton(uiButton, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.WheelX += float32(xoff)
	a.input.WheelY += float32(yoff)
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwKeyToUIKey maps GLFW keys to ui keys.
func glfwKeyToUIKey(key glfw.Key) ui.Key {
	switch key {
	case glfw.KeyTab:
		return ui.KeyTab
	case glfw.KeyLeft:
		return ui.KeyLeft
	case glfw.KeyRight:
		return ui.KeyRight
	case glfw.KeyUp:
		return ui.KeyUp
	case glfw.KeyDown:
		return ui.KeyDown
	case glfw.KeyPageUp:
		return ui.KeyPageUp
	case glfw.KeyPageDown:
		return ui.KeyPageDown
	case glfw.KeyHome:
		return ui.KeyHome
	case glfw.KeyEnd:
		return ui.KeyEnd
	case glfw.KeyDelete:
		return ui.KeyDelete
	case glfw.KeyBackspace:
		return ui.KeyBackspace
	case glfw.KeySpace:
		return ui.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return ui.KeyEnter
	case glfw.KeyEscape:
		return ui.KeyEscape
	case glfw.KeyA:
		return ui.KeyA
	case glfw.KeyC:
		return ui.KeyC
	case glfw.KeyV:
		return ui.KeyV
	case glfw.KeyX:
		return ui.KeyX
	default:
		return ui.KeyNone
	}
}

// glfwMouseButtonToUI maps GLFW mouse buttons to ui pointer buttons.
func glfwMouseButtonToUI(button glfw.MouseButton) ui.PointerButton {
	switch button {
	case glfw.MouseButtonLeft:
		return ui.PointerButtonLeft
	case glfw.MouseButtonRight:
		return ui.PointerButtonRight
	case glfw.MouseButtonMiddle:
		return ui.PointerButtonMiddle
	default:
		return -1
	}
}
