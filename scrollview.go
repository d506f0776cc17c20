package ui

// Scrollbar geometry constants. Fixed for all viewports; tune here.
const (
	// ScrollbarWidth is the width of the track overlay on the right edge.
	ScrollbarWidth float32 = 12

	// ScrollSpeed is the pixel distance scrolled per wheel line.
	ScrollSpeed float32 = 42

	// MinThumbSize is the smallest thumb height regardless of the
	// viewport/content ratio.
	MinThumbSize float32 = 24
)

// extentEpsilon filters sub-pixel content extent jitter in Update.
const extentEpsilon = 0.5

// ScrollViewport owns an ordered list of child widgets placed in a virtual
// content coordinate space and renders only the slice intersecting its
// visible window, clipped to its bounds. Pointer input is mapped between
// screen space and content space; a proportional thumb on the right edge
// supports drag-to-scroll.
//
// Children keep their authored positions: the viewport transiently offsets
// a child's Y by the scroll offset for the duration of its draw call only.
// Child lists and scroll state are mutated from the UI thread only.
//
// The invariant 0 <= scrollOffset <= max(0, contentHeight-viewportHeight)
// holds after every mutation.
type ScrollViewport struct {
	WidgetBase

	children      []Widget
	scrollOffset  float32
	contentHeight float32
	lastExtent    float32

	thumbHovered bool
	dragging     bool
	dragStartY   float32
	dragStartOff float32
}

// NewScrollViewport creates an empty viewport at the given screen bounds.
func NewScrollViewport(x, y, width, height float32) *ScrollViewport {
	v := &ScrollViewport{
		WidgetBase: NewWidgetBase(x, y, width, height),
	}
	v.contentHeight = v.Height
	v.lastExtent = v.Height
	return v
}

// AddChild appends a widget and recomputes the content extent.
// Child positions are authored in the same coordinate space as the
// viewport; a child at the viewport's own Y sits at the top of the
// unscrolled content.
func (v *ScrollViewport) AddChild(child Widget) {
	if child == nil {
		return
	}
	v.children = append(v.children, child)
	v.recalcContentHeight()
}

// ClearChildren removes all children and resets the scroll position.
func (v *ScrollViewport) ClearChildren() {
	v.children = v.children[:0]
	v.scrollOffset = 0
	v.contentHeight = v.Height
	v.lastExtent = v.contentHeight
}

// Children returns the child list. The slice is owned by the viewport;
// callers must not mutate it.
func (v *ScrollViewport) Children() []Widget {
	return v.children
}

// ScrollOffset returns the current scroll position in pixels.
func (v *ScrollViewport) ScrollOffset() float32 {
	return v.scrollOffset
}

// ContentHeight returns the cached content extent.
func (v *ScrollViewport) ContentHeight() float32 {
	return v.contentHeight
}

// SetScrollOffset sets the scroll position, clamped to the valid range.
// Used by screens restoring a saved position.
func (v *ScrollViewport) SetScrollOffset(offset float32) {
	v.scrollOffset = clampf(offset, 0, v.maxOffset())
}

// RequestLayout forces a content extent recomputation. Call after bulk
// repositioning of children (e.g. switching tabs).
func (v *ScrollViewport) RequestLayout() {
	v.recalcContentHeight()
}

// Dragging reports whether the scrollbar thumb is being dragged.
func (v *ScrollViewport) Dragging() bool {
	return v.dragging
}

// Render draws the visible slice of children clipped to the viewport
// bounds, then the scrollbar overlay when content overflows. A zero-area
// viewport skips clipping entirely for the frame (degenerate geometry is
// recovered, never an error).
func (v *ScrollViewport) Render(dl *DrawList, fonts *FontRenderer) {
	if !v.Visible() {
		return
	}

	if v.requiresScrollbar() && v.Width > 0 && v.Height > 0 {
		guard := dl.ClipTo(v.Bounds())
		v.renderChildren(dl, fonts)
		guard.End()
	} else {
		v.renderChildren(dl, fonts)
	}

	if v.requiresScrollbar() {
		v.renderScrollbar(dl)
	}
}

func (v *ScrollViewport) renderChildren(dl *DrawList, fonts *FontRenderer) {
	viewTop := v.Y + v.scrollOffset
	viewBottom := viewTop + v.Height

	for _, child := range v.children {
		if !child.Visible() {
			continue
		}

		b := child.Bounds()
		if b.Y+b.H < viewTop {
			continue
		}
		if b.Y > viewBottom {
			// Children are typically added top to bottom; stop early.
			// Out-of-order children below this point are missed, which
			// is an accepted limitation, not a guaranteed full scan.
			break
		}

		child.SetPosition(b.X, b.Y-v.scrollOffset)
		child.Render(dl, fonts)
		child.SetPosition(b.X, b.Y)
	}
}

func (v *ScrollViewport) renderScrollbar(dl *DrawList) {
	thumbHeight := v.thumbHeight()
	trackX := v.X + v.Width - ScrollbarWidth

	dl.AddRect(trackX, v.Y, ScrollbarWidth, v.Height, RGBAf(0.05, 0.05, 0.08, 0.45))

	thumbY := v.Y + v.normalizedScroll()*(v.Height-thumbHeight)
	var thumbColor uint32
	if v.thumbHovered || v.dragging {
		thumbColor = RGBAf(0.45, 0.75, 0.85, 0.85)
	} else {
		thumbColor = RGBAf(0.35, 0.65, 0.80, 0.85)
	}

	dl.AddRect(trackX+2, thumbY, ScrollbarWidth-4, thumbHeight, thumbColor)
}

// Update advances visible children and recomputes the content extent when
// it drifted more than half a pixel, re-clamping the scroll offset.
func (v *ScrollViewport) Update(dt float32) {
	var maxBottom float32
	for _, child := range v.children {
		if !child.Visible() {
			continue
		}
		child.Update(dt)
		b := child.Bounds()
		if bottom := b.Y + b.H - v.Y; bottom > maxBottom {
			maxBottom = bottom
		}
	}

	newExtent := maxf(v.Height, maxBottom)
	if absf(newExtent-v.lastExtent) > extentEpsilon {
		v.contentHeight = newExtent
		v.SetScrollOffset(v.scrollOffset)
		v.lastExtent = newExtent
	}
}

// OnPointerMove updates thumb hover, advances an in-progress drag, and
// forwards a content-space-translated position to visible children,
// clearing hover on children the pointer has left.
func (v *ScrollViewport) OnPointerMove(x, y float32) {
	v.WidgetBase.OnPointerMove(x, y)

	inside := v.IsPointerOver(x, y)
	v.thumbHovered = inside && v.requiresScrollbar() && v.thumbRect().Contains(x, y)

	if v.dragging {
		dragDelta := y - v.dragStartY
		trackRange := v.Height - v.thumbHeight()
		if trackRange > 0 {
			deltaOffset := dragDelta / trackRange * (v.contentHeight - v.Height)
			v.SetScrollOffset(v.dragStartOff + deltaOffset)
		}
		return
	}

	if !inside {
		return
	}

	contentY := y + v.scrollOffset
	viewTop := v.Y + v.scrollOffset
	viewBottom := viewTop + v.Height

	for _, child := range v.children {
		if !child.Visible() {
			continue
		}
		b := child.Bounds()
		if b.Y+b.H < viewTop || b.Y > viewBottom {
			continue
		}
		if b.Contains(x, contentY) {
			child.OnPointerMove(x, contentY)
		} else {
			child.SetHovered(false)
		}
	}
}

// OnPointerDown begins a thumb drag (consuming the event) when the press
// lands on the thumb hit-region, otherwise forwards the translated press
// to the child under the pointer.
func (v *ScrollViewport) OnPointerDown(x, y float32, button PointerButton) {
	if button == PointerButtonLeft && v.requiresScrollbar() && v.thumbRect().Contains(x, y) {
		v.thumbHovered = true
		v.dragging = true
		v.dragStartY = y
		v.dragStartOff = v.scrollOffset
		return
	}

	if !v.IsPointerOver(x, y) {
		return
	}

	v.forwardToChildren(x, y, button, Widget.OnPointerDown)
}

// OnPointerUp ends a drag unconditionally on the primary button (the
// pointer may be anywhere by then) and forwards the release to children
// under the pointer.
func (v *ScrollViewport) OnPointerUp(x, y float32, button PointerButton) {
	if button == PointerButtonLeft {
		v.dragging = false
	}

	if !v.IsPointerOver(x, y) {
		return
	}

	v.forwardToChildren(x, y, button, Widget.OnPointerUp)
}

func (v *ScrollViewport) forwardToChildren(x, y float32, button PointerButton, deliver func(Widget, float32, float32, PointerButton)) {
	contentY := y + v.scrollOffset
	viewTop := v.Y + v.scrollOffset
	viewBottom := viewTop + v.Height

	for _, child := range v.children {
		if !child.Visible() {
			continue
		}
		b := child.Bounds()
		if b.Y+b.H < viewTop || b.Y > viewBottom {
			continue
		}
		if !b.Contains(x, contentY) {
			continue
		}
		deliver(child, x, contentY, button)
	}
}

// OnScroll adjusts the scroll offset by wheel lines. No-op when content
// fits the viewport.
func (v *ScrollViewport) OnScroll(deltaLines float32) {
	if !v.requiresScrollbar() {
		return
	}
	v.SetScrollOffset(v.scrollOffset - deltaLines*ScrollSpeed)
}

func (v *ScrollViewport) maxOffset() float32 {
	return maxf(0, v.contentHeight-v.Height)
}

func (v *ScrollViewport) requiresScrollbar() bool {
	return v.contentHeight > v.Height+1
}

func (v *ScrollViewport) thumbHeight() float32 {
	if !v.requiresScrollbar() {
		return v.Height
	}
	return maxf(MinThumbSize, v.Height/v.contentHeight*v.Height)
}

func (v *ScrollViewport) thumbRect() Rect {
	thumbHeight := v.thumbHeight()
	return Rect{
		X: v.X + v.Width - ScrollbarWidth,
		Y: v.Y + v.normalizedScroll()*(v.Height-thumbHeight),
		W: ScrollbarWidth,
		H: thumbHeight,
	}
}

func (v *ScrollViewport) normalizedScroll() float32 {
	maxOffset := v.maxOffset()
	if maxOffset <= 0 {
		return 0
	}
	return v.scrollOffset / maxOffset
}

func (v *ScrollViewport) recalcContentHeight() {
	var maxBottom float32
	for _, child := range v.children {
		b := child.Bounds()
		if bottom := b.Y + b.H - v.Y; bottom > maxBottom {
			maxBottom = bottom
		}
	}
	v.contentHeight = maxf(v.Height, maxBottom)
	v.lastExtent = v.contentHeight
	v.SetScrollOffset(v.scrollOffset)
}
