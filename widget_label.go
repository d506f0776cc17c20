package ui

// Label is a non-interactive text widget. It sizes itself to its text
// during rendering so containers can measure it on the next frame.
type Label struct {
	WidgetBase

	Text   string
	Scale  float32
	Color  uint32
	Shadow bool
}

// NewLabel creates a label with its top-left corner at (x, y).
func NewLabel(x, y float32, text string) *Label {
	return &Label{
		WidgetBase: NewWidgetBase(x, y, 0, 0),
		Text:       text,
		Scale:      1.0,
		Color:      defaultStyle.TextColor,
		Shadow:     defaultStyle.ShadowText,
	}
}

// Render draws the label. The baseline sits one line height below the
// widget's top edge, matching how the atlas positions glyph quads.
func (l *Label) Render(dl *DrawList, fonts *FontRenderer) {
	if !l.Visible() || l.Text == "" {
		return
	}

	scale := l.Scale
	if scale <= 0 {
		scale = 1
	}

	l.Width = fonts.Measure(l.Text) * scale
	l.Height = fonts.LineHeight() * scale

	baseline := l.Y + fonts.LineHeight()*scale*0.8
	if l.Shadow {
		fonts.DrawTextShadow(dl, l.Text, l.X, baseline, scale, l.Color)
	} else {
		fonts.DrawText(dl, l.Text, l.X, baseline, scale, l.Color)
	}
}
