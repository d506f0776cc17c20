package ui

// Scale manager constants. 1920x1080 is the reference resolution: at that
// window size the base scale is 1.0.
const (
	referenceWidth  = 1920
	referenceHeight = 1080

	minEffectiveScale float32 = 0.5
	maxEffectiveScale float32 = 3.0

	minUserScale float32 = 0.5
	maxUserScale float32 = 2.0
)

// Discrete font size thresholds for atlas selection.
const (
	fontSize16Threshold float32 = 0.8
	fontSize20Threshold float32 = 1.2
	fontSize24Threshold float32 = 1.8
)

// ScaleManager maps the current window dimensions and a user preference
// multiplier to the effective UI scale every screen sizes itself by.
// Centralizing the math here keeps scaling consistent instead of each
// screen inventing its own factors.
type ScaleManager struct {
	windowWidth  int
	windowHeight int
	baseScale    float32
	userScale    float32
	effective    float32
}

// NewScaleManager creates a scale manager for the given window size and
// user preference multiplier (clamped to [0.5, 2.0]).
func NewScaleManager(windowWidth, windowHeight int, userScale float32) *ScaleManager {
	m := &ScaleManager{
		windowWidth:  windowWidth,
		windowHeight: windowHeight,
		userScale:    clampf(userScale, minUserScale, maxUserScale),
	}
	m.recalculate()
	return m
}

// SetWindowSize updates the window dimensions. Call on resize.
func (m *ScaleManager) SetWindowSize(width, height int) {
	m.windowWidth = width
	m.windowHeight = height
	m.recalculate()
}

// SetUserScale updates the user preference multiplier (clamped).
func (m *ScaleManager) SetUserScale(scale float32) {
	m.userScale = clampf(scale, minUserScale, maxUserScale)
	m.recalculate()
}

func (m *ScaleManager) recalculate() {
	if m.windowWidth <= 0 || m.windowHeight <= 0 {
		m.baseScale = 1
		m.effective = clampf(m.userScale, minEffectiveScale, maxEffectiveScale)
		return
	}

	// Use the limiting axis so UI never overflows the window.
	scaleX := float32(m.windowWidth) / referenceWidth
	scaleY := float32(m.windowHeight) / referenceHeight
	m.baseScale = minf(scaleX, scaleY)
	m.effective = clampf(m.baseScale*m.userScale, minEffectiveScale, maxEffectiveScale)
}

// BaseScale returns the window-derived scale factor.
func (m *ScaleManager) BaseScale() float32 { return m.baseScale }

// UserScale returns the clamped user preference multiplier.
func (m *ScaleManager) UserScale() float32 { return m.userScale }

// EffectiveScale returns baseScale * userScale, clamped to [0.5, 3.0].
func (m *ScaleManager) EffectiveScale() float32 { return m.effective }

// ScaleDimension scales a design-space pixel dimension.
func (m *ScaleManager) ScaleDimension(v float32) float32 {
	return v * m.effective
}

// ScaleWidth returns a fraction of the current window width.
func (m *ScaleManager) ScaleWidth(fraction float32) float32 {
	return float32(m.windowWidth) * fraction
}

// ScaleHeight returns a fraction of the current window height.
func (m *ScaleManager) ScaleHeight(fraction float32) float32 {
	return float32(m.windowHeight) * fraction
}

// FontSize maps the effective scale onto one of the baked atlas sizes
// (16, 20, 24 or 32 px).
func (m *ScaleManager) FontSize() int {
	switch {
	case m.effective < fontSize16Threshold:
		return 16
	case m.effective < fontSize20Threshold:
		return 20
	case m.effective < fontSize24Threshold:
		return 24
	default:
		return 32
	}
}

// TextScale returns the fine-grained residual scale to apply at draw time
// after the discrete atlas size has been selected.
func (m *ScaleManager) TextScale() float32 {
	return m.effective * 20 / float32(m.FontSize())
}
