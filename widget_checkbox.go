package ui

// Checkbox is a toggleable box with a text label to its right.
type Checkbox struct {
	WidgetBase

	Text     string
	Checked  bool
	Style    Style
	OnChange func(checked bool)
}

// NewCheckbox creates a checkbox at the given bounds. The box is drawn
// square at the widget height; the label fills the rest of the width.
func NewCheckbox(x, y, width, height float32, text string, checked bool, onChange func(bool)) *Checkbox {
	return &Checkbox{
		WidgetBase: NewWidgetBase(x, y, width, height),
		Text:       text,
		Checked:    checked,
		Style:      defaultStyle,
		OnChange:   onChange,
	}
}

// Render draws the box, the check mark when set, and the label.
func (c *Checkbox) Render(dl *DrawList, fonts *FontRenderer) {
	if !c.Visible() {
		return
	}

	box := c.Height
	dl.AddRect(c.X, c.Y, box, box, c.Style.CheckboxBoxColor)
	dl.AddRectOutline(c.X, c.Y, box, box, c.Style.ButtonBorderColor, 1)

	if c.Checked {
		inset := box * 0.25
		dl.AddRect(c.X+inset, c.Y+inset, box-2*inset, box-2*inset, c.Style.CheckboxCheckColor)
	}

	if c.Text == "" {
		return
	}

	textColor := c.Style.TextColor
	if !c.Enabled() {
		textColor = c.Style.TextDisabledColor
	}

	scale := c.Style.TextScale
	baseline := c.Y + box/2 + fonts.LineHeight()*scale*0.3
	fonts.DrawText(dl, c.Text, c.X+box+8, baseline, scale, textColor)
}

// OnPointerDown toggles the checkbox.
func (c *Checkbox) OnPointerDown(x, y float32, button PointerButton) {
	if button != PointerButtonLeft || !c.Enabled() || !c.IsPointerOver(x, y) {
		return
	}

	c.Checked = !c.Checked
	if c.OnChange != nil {
		c.OnChange(c.Checked)
	}
}
