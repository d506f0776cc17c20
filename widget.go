package ui

// Widget is the flat capability interface implemented by every UI element.
// There is no inheritance chain: containers render and hit-test children
// polymorphically through this interface alone.
//
// All coordinates are screen-space pixels unless a container (such as
// ScrollViewport) documents that it delivers translated content-space
// positions to its children.
type Widget interface {
	// Bounds returns the widget's current position and size.
	Bounds() Rect

	// SetPosition moves the widget's top-left corner.
	// Containers use this to transiently offset children while scrolling;
	// the authored position is always restored after the pass.
	SetPosition(x, y float32)

	// Visible reports whether the widget takes part in rendering and
	// hit-testing.
	Visible() bool

	// Render emits the widget's geometry into the draw list.
	Render(dl *DrawList, fonts *FontRenderer)

	// Update advances animations and timers. dt is in seconds.
	Update(dt float32)

	// OnPointerMove is called with the pointer position whenever it moves
	// over (or off) the widget.
	OnPointerMove(x, y float32)

	// OnPointerDown is called when a button is pressed over the widget.
	OnPointerDown(x, y float32, button PointerButton)

	// OnPointerUp is called when a button is released.
	OnPointerUp(x, y float32, button PointerButton)

	// SetHovered sets the hover flag. Containers clear hover on children
	// the pointer has left.
	SetHovered(hovered bool)
}

// KeyHandler is implemented by widgets that accept key presses
// (text fields, focusable lists). Containers type-assert for it.
type KeyHandler interface {
	OnKeyPress(key Key, mods Modifiers)
}

// CharHandler is implemented by widgets that accept typed characters.
type CharHandler interface {
	OnCharInput(r rune)
}

// WidgetBase provides position, size, visibility and hover bookkeeping for
// concrete widgets to embed. Its Render and Update are no-ops so widgets
// only override what they need.
type WidgetBase struct {
	X, Y          float32
	Width, Height float32
	visible       bool
	enabled       bool
	hovered       bool
}

// NewWidgetBase returns a visible, enabled base at the given bounds.
// Negative sizes are clamped to zero.
func NewWidgetBase(x, y, width, height float32) WidgetBase {
	return WidgetBase{
		X:       x,
		Y:       y,
		Width:   maxf(0, width),
		Height:  maxf(0, height),
		visible: true,
		enabled: true,
	}
}

// Bounds returns the widget's rectangle.
func (w *WidgetBase) Bounds() Rect {
	return Rect{X: w.X, Y: w.Y, W: w.Width, H: w.Height}
}

// SetPosition moves the widget.
func (w *WidgetBase) SetPosition(x, y float32) {
	w.X = x
	w.Y = y
}

// SetSize resizes the widget, clamping negative values to zero.
func (w *WidgetBase) SetSize(width, height float32) {
	w.Width = maxf(0, width)
	w.Height = maxf(0, height)
}

// Visible reports the visibility flag.
func (w *WidgetBase) Visible() bool { return w.visible }

// SetVisible sets the visibility flag.
func (w *WidgetBase) SetVisible(visible bool) { w.visible = visible }

// Enabled reports whether the widget accepts interaction.
func (w *WidgetBase) Enabled() bool { return w.enabled }

// SetEnabled sets the interaction flag.
func (w *WidgetBase) SetEnabled(enabled bool) { w.enabled = enabled }

// Hovered reports the hover flag.
func (w *WidgetBase) Hovered() bool { return w.hovered }

// SetHovered sets the hover flag.
func (w *WidgetBase) SetHovered(hovered bool) { w.hovered = hovered }

// IsPointerOver reports whether the point is within the widget's bounds.
func (w *WidgetBase) IsPointerOver(x, y float32) bool {
	return w.Bounds().Contains(x, y)
}

// Render is a no-op; concrete widgets override it.
func (w *WidgetBase) Render(dl *DrawList, fonts *FontRenderer) {}

// Update is a no-op; concrete widgets override it.
func (w *WidgetBase) Update(dt float32) {}

// OnPointerMove updates the hover flag by default.
func (w *WidgetBase) OnPointerMove(x, y float32) {
	w.hovered = w.IsPointerOver(x, y)
}

// OnPointerDown is a no-op; concrete widgets override it.
func (w *WidgetBase) OnPointerDown(x, y float32, button PointerButton) {}

// OnPointerUp is a no-op; concrete widgets override it.
func (w *WidgetBase) OnPointerUp(x, y float32, button PointerButton) {}
