package ui

import (
	"image"
	"image/draw"
	"log/slog"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// uiLogger reports font fallbacks and bake failures. Rendering call sites
// never see these as errors; failures only downgrade to degraded mode.
var uiLogger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Atlas geometry constants. One 512x512 single-channel bitmap per baked
// size holds all printable ASCII glyphs.
const (
	AtlasWidth  = 512
	AtlasHeight = 512
	FirstChar   = 32 // Space
	LastChar    = 126
	CharCount   = LastChar - FirstChar + 1 // 95 printable ASCII characters
)

// GlyphMetrics describes one baked glyph. All values are in atlas pixels
// at the atlas's baked size; callers scale them at draw time.
type GlyphMetrics struct {
	// Atlas-space bounding box of the rasterized glyph.
	X0, Y0, X1, Y1 int

	// Offset from the pen position (baseline origin) to the glyph's
	// top-left corner. YOffset is negative for glyphs above the baseline.
	XOffset, YOffset float32

	// Horizontal advance to the next pen position.
	Advance float32
}

// TextureUploader creates GPU textures from baked atlas bitmaps.
// It is injected so the atlas has no hidden global GPU state and tests
// can bake atlases without a graphics context (pass nil: the atlas works
// for measurement and quad generation, just with texture ID 0).
type TextureUploader interface {
	// UploadAlpha creates a single-channel texture and returns its ID.
	UploadAlpha(width, height int, pixels []byte) uint32

	// DeleteTexture releases a texture created by UploadAlpha.
	DeleteTexture(id uint32)
}

// GlyphAtlas owns one rasterized font bitmap at a single pixel size, its
// GPU texture, and the per-glyph metrics table. Metrics are immutable once
// baked. A degraded atlas (bake or load failure) measures everything as 0
// and emits no quads; it never fails at a call site.
type GlyphAtlas struct {
	pixelSize  float32
	lineHeight float32
	texture    uint32
	uploader   TextureUploader
	metrics    [CharCount]GlyphMetrics
	degraded   bool
}

// BakeAtlas rasterizes all glyphs for ASCII 32-126 from the given font
// bytes at the given pixel size. It fails soft: malformed font data, a
// rasterizer error, or glyphs that cannot fit the fixed atlas all produce
// a degraded atlas rather than an error.
//
// uploader may be nil; the atlas then has no GPU texture but is fully
// usable for measurement and quad generation.
func BakeAtlas(fontBytes []byte, pixelSize float32, uploader TextureUploader) *GlyphAtlas {
	a := &GlyphAtlas{
		pixelSize:  pixelSize,
		lineHeight: pixelSize, // degraded fallback until bake succeeds
		uploader:   uploader,
		degraded:   true,
	}

	if len(fontBytes) == 0 || pixelSize <= 0 {
		return a
	}

	fnt, err := opentype.Parse(fontBytes)
	if err != nil {
		uiLogger.Error("font parse failed, using degraded atlas", "err", err)
		return a
	}

	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(pixelSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		uiLogger.Error("font face creation failed, using degraded atlas", "err", err)
		return a
	}
	defer face.Close()

	bitmap := image.NewAlpha(image.Rect(0, 0, AtlasWidth, AtlasHeight))

	// Shelf packing: glyphs flow left to right, rows advance by the
	// tallest possible glyph for this size.
	penX, penY := 1, 1
	rowHeight := int(pixelSize*1.4) + 2
	baked := 0

	for code := FirstChar; code <= LastChar; code++ {
		r := rune(code)
		dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			// Leave zero metrics; the glyph draws nothing but keeps
			// the table contiguous.
			continue
		}

		gw, gh := dr.Dx(), dr.Dy()
		if penX+gw+1 > AtlasWidth {
			penX = 1
			penY += rowHeight
		}
		if penY+gh+1 > AtlasHeight {
			uiLogger.Error("glyphs do not fit atlas, using degraded atlas",
				"pixelSize", pixelSize, "atlas", AtlasWidth)
			return a
		}

		dst := image.Rect(penX, penY, penX+gw, penY+gh)
		draw.DrawMask(bitmap, dst, image.White, image.Point{}, mask, maskp, draw.Src)

		a.metrics[code-FirstChar] = GlyphMetrics{
			X0:      penX,
			Y0:      penY,
			X1:      penX + gw,
			Y1:      penY + gh,
			XOffset: float32(dr.Min.X),
			YOffset: float32(dr.Min.Y),
			Advance: float32(advance) / 64.0,
		}

		penX += gw + 1
		baked++
	}

	if baked == 0 {
		uiLogger.Error("rasterization produced no glyphs, using degraded atlas",
			"pixelSize", pixelSize)
		return a
	}

	a.degraded = false
	a.lineHeight = pixelSize * 1.2

	if uploader != nil {
		a.texture = uploader.UploadAlpha(AtlasWidth, AtlasHeight, bitmap.Pix)
	}

	return a
}

// Degraded reports whether the atlas failed to bake. Degraded atlases
// measure everything as 0 and emit no quads.
func (a *GlyphAtlas) Degraded() bool { return a.degraded }

// PixelSize returns the size the atlas was baked at.
func (a *GlyphAtlas) PixelSize() float32 { return a.pixelSize }

// Texture returns the GPU texture ID, or 0 if degraded or baked without
// an uploader.
func (a *GlyphAtlas) Texture() uint32 { return a.texture }

// LineHeight returns the vertical advance between text lines: 1.2x the
// baked pixel size, or exactly the pixel size in degraded mode so callers
// still get stable layout spacing without any text.
func (a *GlyphAtlas) LineHeight() float32 { return a.lineHeight }

// HasGlyph reports whether the atlas can render the rune.
func (a *GlyphAtlas) HasGlyph(r rune) bool {
	return !a.degraded && r >= FirstChar && r <= LastChar
}

// Metrics returns the baked metrics for a rune.
func (a *GlyphAtlas) Metrics(r rune) (GlyphMetrics, bool) {
	if !a.HasGlyph(r) {
		return GlyphMetrics{}, false
	}
	return a.metrics[r-FirstChar], true
}

// Measure returns the width of text in pixels at the baked size, summing
// advances over in-range runes. Runes outside ASCII 32-126 (including
// newlines) contribute zero width. Returns 0 for empty text or a degraded
// atlas. The result is unscaled; callers drawing at a scale multiply.
func (a *GlyphAtlas) Measure(text string) float32 {
	if a.degraded || text == "" {
		return 0
	}

	var width float32
	for _, r := range text {
		if r < FirstChar || r > LastChar {
			continue
		}
		width += a.metrics[r-FirstChar].Advance
	}
	return width
}

// AppendQuads lays out text starting at the pen position (x, y), where y
// is the baseline of the first line, and appends one textured quad per
// in-range glyph to dst. '\n' resets X to the origin and advances Y by
// LineHeight*scale. Other out-of-range runes are skipped. A degraded
// atlas appends nothing.
func (a *GlyphAtlas) AppendQuads(dst []GlyphQuad, text string, x, y, scale float32) []GlyphQuad {
	if a.degraded || text == "" {
		return dst
	}
	if scale <= 0 {
		scale = 1
	}

	penX, penY := x, y
	for _, r := range text {
		if r == '\n' {
			penX = x
			penY += a.lineHeight * scale
			continue
		}
		if r < FirstChar || r > LastChar {
			continue
		}

		m := a.metrics[r-FirstChar]
		gw := float32(m.X1-m.X0) * scale
		gh := float32(m.Y1-m.Y0) * scale
		gx := penX + m.XOffset*scale
		gy := penY + m.YOffset*scale

		if gw > 0 && gh > 0 {
			dst = append(dst, GlyphQuad{
				X0: gx, Y0: gy,
				X1: gx + gw, Y1: gy + gh,
				U0: float32(m.X0) / AtlasWidth,
				V0: float32(m.Y0) / AtlasHeight,
				U1: float32(m.X1) / AtlasWidth,
				V1: float32(m.Y1) / AtlasHeight,
			})
		}

		penX += m.Advance * scale
	}
	return dst
}

// Close releases the GPU texture. The atlas remains usable for
// measurement afterwards.
func (a *GlyphAtlas) Close() {
	if a.texture != 0 && a.uploader != nil {
		a.uploader.DeleteTexture(a.texture)
	}
	a.texture = 0
}
