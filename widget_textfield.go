package ui

// cursorBlinkPeriod is the full on/off cycle of the caret in seconds.
const cursorBlinkPeriod = 1.0

// TextField is a single-line text input. It implements KeyHandler and
// CharHandler; the application (or a focus-aware container) routes
// keyboard events to the focused field.
//
// Editing supports cursor movement (left/right/home/end), backspace and
// delete, and clipboard paste/copy/cut via Ctrl+V/C/X through the
// registered ClipboardProvider. There is no selection; Ctrl+C copies the
// whole text.
type TextField struct {
	WidgetBase

	Text     string
	MaxLen   int // 0 means unlimited
	Style    Style
	OnChange func(text string)
	OnSubmit func(text string)

	focused   bool
	cursor    int // rune index into Text
	blinkTime float32
}

// NewTextField creates a text field at the given bounds.
func NewTextField(x, y, width, height float32, text string) *TextField {
	return &TextField{
		WidgetBase: NewWidgetBase(x, y, width, height),
		Text:       text,
		Style:      defaultStyle,
		cursor:     len([]rune(text)),
	}
}

// Focused reports whether the field receives keyboard input.
func (t *TextField) Focused() bool { return t.focused }

// SetFocused sets keyboard focus. Gaining focus places the cursor at the
// end of the text.
func (t *TextField) SetFocused(focused bool) {
	if focused && !t.focused {
		t.cursor = len([]rune(t.Text))
		t.blinkTime = 0
	}
	t.focused = focused
}

// SetText replaces the content and clamps the cursor.
func (t *TextField) SetText(text string) {
	t.Text = text
	if n := len([]rune(text)); t.cursor > n {
		t.cursor = n
	}
}

// Update advances the caret blink timer.
func (t *TextField) Update(dt float32) {
	if t.focused {
		t.blinkTime += dt
	}
}

// Render draws the box, the text clipped to the box and, when focused,
// the blinking caret.
func (t *TextField) Render(dl *DrawList, fonts *FontRenderer) {
	if !t.Visible() {
		return
	}

	bg := t.Style.InputBoxColor
	if t.focused {
		bg = t.Style.InputBoxFocusedColor
	}
	dl.AddRect(t.X, t.Y, t.Width, t.Height, bg)
	dl.AddRectOutline(t.X, t.Y, t.Width, t.Height, t.Style.ButtonBorderColor, 1)

	scale := t.Style.TextScale
	padding := t.Style.ButtonPadding
	innerWidth := (t.Width - 2*padding) / scale

	shown := TruncateText(fonts, t.Text, innerWidth)
	baseline := t.Y + t.Height/2 + fonts.LineHeight()*scale*0.3

	textColor := t.Style.TextColor
	if !t.Enabled() {
		textColor = t.Style.TextDisabledColor
	}
	fonts.DrawText(dl, shown, t.X+padding, baseline, scale, textColor)

	if t.focused && t.blinkOn() {
		runes := []rune(t.Text)
		prefix := string(runes[:t.cursor])
		cursorX := t.X + padding + fonts.Measure(prefix)*scale
		if max := t.X + t.Width - padding; cursorX > max {
			cursorX = max
		}
		dl.AddRect(cursorX, t.Y+4, 1, t.Height-8, t.Style.InputCursorColor)
	}
}

func (t *TextField) blinkOn() bool {
	phase := t.blinkTime / cursorBlinkPeriod
	return phase-float32(int(phase)) < 0.5
}

// OnPointerDown focuses the field when the press lands inside it and
// releases focus otherwise, so a click elsewhere dismisses the caret.
func (t *TextField) OnPointerDown(x, y float32, button PointerButton) {
	if button != PointerButtonLeft {
		return
	}
	t.SetFocused(t.Enabled() && t.IsPointerOver(x, y))
}

// OnCharInput inserts a typed character at the cursor.
func (t *TextField) OnCharInput(r rune) {
	if !t.focused || !t.Enabled() {
		return
	}
	if r < 32 || r == 127 {
		return
	}
	t.insert(string(r))
}

// OnKeyPress handles editing and navigation keys.
func (t *TextField) OnKeyPress(key Key, mods Modifiers) {
	if !t.focused || !t.Enabled() {
		return
	}
	t.blinkTime = 0

	if mods.Ctrl {
		switch key {
		case KeyV:
			t.insert(ClipboardGetText())
		case KeyC:
			ClipboardSetText(t.Text)
		case KeyX:
			ClipboardSetText(t.Text)
			t.SetText("")
			t.cursor = 0
			t.changed()
		case KeyA:
			// No selection model: Ctrl+A jumps to the start like Home.
			t.cursor = 0
		}
		return
	}

	runes := []rune(t.Text)
	switch key {
	case KeyLeft:
		if t.cursor > 0 {
			t.cursor--
		}
	case KeyRight:
		if t.cursor < len(runes) {
			t.cursor++
		}
	case KeyHome:
		t.cursor = 0
	case KeyEnd:
		t.cursor = len(runes)
	case KeyBackspace:
		if t.cursor > 0 {
			t.Text = string(runes[:t.cursor-1]) + string(runes[t.cursor:])
			t.cursor--
			t.changed()
		}
	case KeyDelete:
		if t.cursor < len(runes) {
			t.Text = string(runes[:t.cursor]) + string(runes[t.cursor+1:])
			t.changed()
		}
	case KeyEnter:
		if t.OnSubmit != nil {
			t.OnSubmit(t.Text)
		}
	case KeyEscape:
		t.focused = false
	}
}

func (t *TextField) insert(s string) {
	if s == "" {
		return
	}

	runes := []rune(t.Text)
	inserted := []rune(s)
	if t.MaxLen > 0 {
		room := t.MaxLen - len(runes)
		if room <= 0 {
			return
		}
		if len(inserted) > room {
			inserted = inserted[:room]
		}
	}

	t.Text = string(runes[:t.cursor]) + string(inserted) + string(runes[t.cursor:])
	t.cursor += len(inserted)
	t.changed()
}

func (t *TextField) changed() {
	if t.OnChange != nil {
		t.OnChange(t.Text)
	}
}
