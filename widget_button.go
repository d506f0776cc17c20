package ui

// hoverAnimSpeed controls how fast the hover highlight blends in and out,
// in animation units per second.
const hoverAnimSpeed = 8.0

// Button is a clickable widget with a text label and an animated hover
// highlight. OnClick fires when the primary button is released over the
// button after being pressed over it.
type Button struct {
	WidgetBase

	Text    string
	Style   Style
	OnClick func()

	pressed   bool
	hoverAnim float32 // 0 = idle color, 1 = fully hovered
}

// NewButton creates a button at the given bounds.
func NewButton(x, y, width, height float32, text string, onClick func()) *Button {
	return &Button{
		WidgetBase: NewWidgetBase(x, y, width, height),
		Text:       text,
		Style:      defaultStyle,
		OnClick:    onClick,
	}
}

// Update blends the hover highlight toward its target.
func (b *Button) Update(dt float32) {
	target := float32(0)
	if b.Hovered() && b.Enabled() {
		target = 1
	}

	if b.hoverAnim < target {
		b.hoverAnim = minf(target, b.hoverAnim+dt*hoverAnimSpeed)
	} else if b.hoverAnim > target {
		b.hoverAnim = maxf(target, b.hoverAnim-dt*hoverAnimSpeed)
	}
}

// Render draws the background, border and centered label.
func (b *Button) Render(dl *DrawList, fonts *FontRenderer) {
	if !b.Visible() {
		return
	}

	bg := lerpColor(b.Style.ButtonColor, b.Style.ButtonHoveredColor, b.hoverAnim)
	switch {
	case !b.Enabled():
		bg = b.Style.ButtonDisabledColor
	case b.pressed:
		bg = b.Style.ButtonActiveColor
	}

	dl.AddRect(b.X, b.Y, b.Width, b.Height, bg)
	dl.AddRectOutline(b.X, b.Y, b.Width, b.Height, b.Style.ButtonBorderColor, 1)

	if b.Text == "" {
		return
	}

	textColor := b.Style.TextColor
	if !b.Enabled() {
		textColor = b.Style.TextDisabledColor
	}

	scale := b.Style.TextScale
	textWidth := fonts.Measure(b.Text) * scale
	textX := b.X + CenterAxis(b.Width, textWidth)
	baseline := b.Y + b.Height/2 + fonts.LineHeight()*scale*0.3

	if b.Style.ShadowText {
		fonts.DrawTextShadow(dl, b.Text, textX, baseline, scale, textColor)
	} else {
		fonts.DrawText(dl, b.Text, textX, baseline, scale, textColor)
	}
}

// OnPointerDown arms the click.
func (b *Button) OnPointerDown(x, y float32, button PointerButton) {
	if button == PointerButtonLeft && b.Enabled() && b.IsPointerOver(x, y) {
		b.pressed = true
	}
}

// OnPointerUp completes the click if the release lands on the button.
func (b *Button) OnPointerUp(x, y float32, button PointerButton) {
	if button != PointerButtonLeft {
		return
	}
	wasPressed := b.pressed
	b.pressed = false

	if wasPressed && b.Enabled() && b.IsPointerOver(x, y) && b.OnClick != nil {
		b.OnClick()
	}
}
