package ui

// PointerButton represents a mouse button.
type PointerButton int

const (
	PointerButtonLeft PointerButton = iota
	PointerButtonRight
	PointerButtonMiddle
	pointerButtonCount
)

// Key represents a keyboard key relevant to UI widgets.
// The platform layer maps its native key codes (e.g. GLFW) to these.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	keyCount
)

// Modifiers is a snapshot of the modifier key state delivered alongside
// key events.
type Modifiers struct {
	Ctrl  bool
	Shift bool
	Alt   bool
}

// InputState holds pointer and keyboard state for the current frame.
// The platform layer (backend/opengl or a test) populates it; widgets
// and viewports only read it. All coordinates are screen-space pixels.
type InputState struct {
	// Pointer position
	MouseX, MouseY float32

	// Pointer buttons - current frame state
	mouseDown     [pointerButtonCount]bool
	mousePressed  [pointerButtonCount]bool // True on the frame the button went down
	mouseReleased [pointerButtonCount]bool // True on the frame the button went up

	// Wheel deltas in lines
	WheelX float32
	WheelY float32

	// Keyboard - current frame state
	keyDown    [keyCount]bool
	keyPressed [keyCount]bool

	// Unicode characters typed this frame
	Chars []rune

	// Modifiers
	ModCtrl  bool
	ModShift bool
	ModAlt   bool
}

// NewInputState creates an empty InputState.
func NewInputState() *InputState {
	return &InputState{
		Chars: make([]rune, 0, 16),
	}
}

// Reset clears per-frame edge state.
// Call at the start of each frame before collecting events.
func (s *InputState) Reset() {
	for i := range s.mousePressed {
		s.mousePressed[i] = false
	}
	for i := range s.mouseReleased {
		s.mouseReleased[i] = false
	}
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
	s.Chars = s.Chars[:0]
	s.WheelX = 0
	s.WheelY = 0
}

// SetMousePos sets the pointer position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton records a button transition, deriving pressed/released edges.
func (s *InputState) SetMouseButton(button PointerButton, down bool) {
	if button < 0 || button >= pointerButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mousePressed[button] = true
	}
	if !down && wasDown {
		s.mouseReleased[button] = true
	}
}

// SetKey records a key transition.
func (s *InputState) SetKey(key Key, down bool) {
	if key < 0 || key >= keyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down
	if down && !wasDown {
		s.keyPressed[key] = true
	}
}

// AddChar appends a typed character for this frame.
func (s *InputState) AddChar(r rune) {
	s.Chars = append(s.Chars, r)
}

// MouseDown reports whether the button is currently held.
func (s *InputState) MouseDown(button PointerButton) bool {
	if button < 0 || button >= pointerButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MousePressed reports whether the button went down this frame.
func (s *InputState) MousePressed(button PointerButton) bool {
	if button < 0 || button >= pointerButtonCount {
		return false
	}
	return s.mousePressed[button]
}

// MouseReleased reports whether the button went up this frame.
func (s *InputState) MouseReleased(button PointerButton) bool {
	if button < 0 || button >= pointerButtonCount {
		return false
	}
	return s.mouseReleased[button]
}

// KeyDown reports whether the key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= keyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed reports whether the key went down this frame.
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= keyCount {
		return false
	}
	return s.keyPressed[key]
}

// Mods returns the current modifier snapshot.
func (s *InputState) Mods() Modifiers {
	return Modifiers{Ctrl: s.ModCtrl, Shift: s.ModShift, Alt: s.ModAlt}
}
