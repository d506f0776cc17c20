package ui

// atlasSizes are the pixel sizes baked at startup. Screens pick between
// them through SetFontSize; the scale manager's discrete font size
// selection maps directly onto this set.
var atlasSizes = []int{16, 20, 24, 32}

// Default drop-shadow parameters (classic blocky-text look).
const (
	DefaultShadowOffset float32 = 2.0
	DefaultShadowAlpha  float32 = 0.6
)

// FontOption configures a FontRenderer at construction.
type FontOption func(*FontRenderer)

// WithShadow overrides the default drop-shadow offset and opacity used by
// DrawTextShadow.
func WithShadow(offset, alpha float32) FontOption {
	return func(f *FontRenderer) {
		f.shadowOffset = maxf(0, offset)
		f.shadowAlpha = clampf(alpha, 0, 1)
	}
}

// WithAtlasSizes overrides the pixel sizes baked by Init. Sizes must be
// positive; an empty list keeps the defaults.
func WithAtlasSizes(sizes ...int) FontOption {
	return func(f *FontRenderer) {
		if len(sizes) == 0 {
			return
		}
		f.sizes = append([]int(nil), sizes...)
	}
}

// FontRenderer manages glyph atlases baked at several sizes from one font
// file and draws text into a DrawList. It is created once at startup and
// used from the UI thread only.
//
// All failure modes (missing font, malformed data, bake failure) degrade:
// measurement returns 0, drawing is a no-op, and LineHeight falls back to
// the requested size so dependent layout math stays stable.
type FontRenderer struct {
	atlases     map[int]*GlyphAtlas
	sizes       []int
	currentSize int
	degraded    bool
	fallback    bool // true when a system font was substituted

	shadowOffset float32
	shadowAlpha  float32

	quadBuf []GlyphQuad
}

// NewFontRenderer creates a font renderer targeting the given default
// pixel size. Call Init (or InitFromBytes) before first use.
func NewFontRenderer(fontSize int, opts ...FontOption) *FontRenderer {
	f := &FontRenderer{
		atlases:      make(map[int]*GlyphAtlas),
		sizes:        atlasSizes,
		currentSize:  fontSize,
		degraded:     true,
		shadowOffset: DefaultShadowOffset,
		shadowAlpha:  DefaultShadowAlpha,
		quadBuf:      make([]GlyphQuad, 0, 256),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Init resolves the font via LoadFontData and bakes atlases at the
// standard sizes. Failures only downgrade to degraded mode.
//
// The font file is read synchronously; initialize eagerly before the UI
// is first shown to avoid a visible startup stall.
func (f *FontRenderer) Init(fontPath string, uploader TextureUploader) {
	fontBytes, source, err := LoadFontData(fontPath)
	if err != nil {
		uiLogger.Error("font unavailable, text rendering disabled", "path", fontPath, "err", err)
		f.reset()
		return
	}

	f.fallback = source != fontPath
	f.bake(fontBytes, uploader)
}

// InitFromBytes bakes atlases directly from font bytes, skipping source
// resolution. Useful for embedded fonts and tests.
func (f *FontRenderer) InitFromBytes(fontBytes []byte, uploader TextureUploader) {
	f.fallback = false
	f.bake(fontBytes, uploader)
}

func (f *FontRenderer) bake(fontBytes []byte, uploader TextureUploader) {
	requested := f.currentSize
	f.reset()

	baked := 0
	for _, size := range f.sizes {
		atlas := BakeAtlas(fontBytes, float32(size), uploader)
		if atlas.Degraded() {
			uiLogger.Warn("atlas bake failed", "size", size)
			continue
		}
		f.atlases[size] = atlas
		baked++
	}

	if baked == 0 {
		uiLogger.Error("no atlas baked, text rendering disabled")
		return
	}

	f.degraded = false
	f.currentSize = f.closestSize(requested)
	uiLogger.Info("font atlases baked", "sizes", baked, "current", f.currentSize)
}

func (f *FontRenderer) reset() {
	for _, atlas := range f.atlases {
		atlas.Close()
	}
	f.atlases = make(map[int]*GlyphAtlas)
	f.degraded = true
}

// closestSize picks the baked size nearest to the request.
func (f *FontRenderer) closestSize(size int) int {
	if _, ok := f.atlases[size]; ok {
		return size
	}

	closest := f.currentSize
	minDiff := int(^uint(0) >> 1)
	for available := range f.atlases {
		diff := available - size
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			closest = available
		}
	}
	return closest
}

// SetFontSize selects the baked atlas closest to the requested size.
// No-op in degraded mode.
func (f *FontRenderer) SetFontSize(size int) {
	if f.degraded || len(f.atlases) == 0 {
		return
	}
	f.currentSize = f.closestSize(size)
}

// FontSize returns the active atlas size in pixels.
func (f *FontRenderer) FontSize() int { return f.currentSize }

// Degraded reports whether text rendering is disabled.
func (f *FontRenderer) Degraded() bool { return f.degraded }

// UsingFallbackFont reports whether a system font was substituted for the
// requested one.
func (f *FontRenderer) UsingFallbackFont() bool { return f.fallback }

// current returns the active atlas, or nil in degraded mode.
func (f *FontRenderer) current() *GlyphAtlas {
	if f.degraded {
		return nil
	}
	return f.atlases[f.currentSize]
}

// Measure returns the unscaled pixel width of text at the active atlas
// size. 0 in degraded mode. Callers drawing at a scale multiply the
// result themselves; see GlyphAtlas.Measure for the convention.
func (f *FontRenderer) Measure(text string) float32 {
	atlas := f.current()
	if atlas == nil {
		return 0
	}
	return atlas.Measure(text)
}

// LineHeight returns the vertical advance between lines. In degraded mode
// it equals the requested font size exactly, keeping layout spacing
// stable with no visible text.
func (f *FontRenderer) LineHeight() float32 {
	atlas := f.current()
	if atlas == nil {
		return float32(f.currentSize)
	}
	return atlas.LineHeight()
}

// DrawText draws text with its first baseline at (x, y). Degenerate input
// (empty text, degraded renderer, invisible color) emits nothing.
func (f *FontRenderer) DrawText(dl *DrawList, text string, x, y, scale float32, color uint32) {
	atlas := f.current()
	if atlas == nil || text == "" || color&0xFF000000 == 0 {
		return
	}

	f.quadBuf = atlas.AppendQuads(f.quadBuf[:0], text, x, y, scale)
	if len(f.quadBuf) == 0 {
		return
	}

	dl.SetTexture(atlas.Texture())
	dl.AddGlyphQuads(f.quadBuf, color)
	dl.SetTexture(0)
}

// DrawTextShadow draws text with a dark drop shadow. The shadow pass is
// issued first so it renders beneath the true-position pass.
func (f *FontRenderer) DrawTextShadow(dl *DrawList, text string, x, y, scale float32, color uint32) {
	f.DrawTextShadowEx(dl, text, x, y, scale, color, f.shadowOffset, f.shadowAlpha)
}

// DrawTextShadowEx is DrawTextShadow with configurable shadow offset and
// opacity. Negative offsets clamp to zero.
func (f *FontRenderer) DrawTextShadowEx(dl *DrawList, text string, x, y, scale float32, color uint32, shadowOffset, shadowAlpha float32) {
	if f.degraded || text == "" {
		return
	}

	offset := maxf(0, shadowOffset)
	shadow := RGBAf(0, 0, 0, clampf(shadowAlpha, 0, 1))

	f.DrawText(dl, text, x+offset, y+offset, scale, shadow)
	f.DrawText(dl, text, x, y, scale, color)
}

// Close releases all atlas textures.
func (f *FontRenderer) Close() {
	f.reset()
}
