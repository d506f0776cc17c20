package ui

import "testing"

// fixedAtlas builds a baked-looking atlas where every glyph has the same
// advance and a uniform 10x12 bitmap box, so layout math is predictable.
func fixedAtlas(pixelSize, advance float32) *GlyphAtlas {
	a := &GlyphAtlas{
		pixelSize:  pixelSize,
		lineHeight: pixelSize * 1.2,
	}
	for i := range a.metrics {
		a.metrics[i] = GlyphMetrics{
			X0: 1 + i*5, Y0: 1,
			X1: 1 + i*5 + 10, Y1: 13,
			XOffset: 0, YOffset: -10,
			Advance: advance,
		}
	}
	return a
}

func TestMeasureSumsAdvances(t *testing.T) {
	a := fixedAtlas(16, 14)

	if got := a.Measure("WWW"); got != 42 {
		t.Errorf("Measure(\"WWW\") = %v, want 42", got)
	}
	if got := a.Measure(""); got != 0 {
		t.Errorf("Measure(\"\") = %v, want 0", got)
	}
}

func TestMeasureSkipsOutOfRangeRunes(t *testing.T) {
	a := fixedAtlas(16, 14)

	// Tab, newline, and non-ASCII contribute zero width.
	if got := a.Measure("A\tB"); got != 28 {
		t.Errorf("Measure with tab = %v, want 28", got)
	}
	if got := a.Measure("A\nB"); got != 28 {
		t.Errorf("Measure with newline = %v, want 28", got)
	}
	if got := a.Measure("é"); got != 0 {
		t.Errorf("Measure of non-ASCII rune = %v, want 0", got)
	}
}

func TestAppendQuadsAdvancesPen(t *testing.T) {
	a := fixedAtlas(16, 14)

	quads := a.AppendQuads(nil, "AB", 100, 50, 1)
	if len(quads) != 2 {
		t.Fatalf("got %d quads, want 2", len(quads))
	}

	if quads[0].X0 != 100 {
		t.Errorf("first quad X0 = %v, want 100", quads[0].X0)
	}
	if quads[1].X0 != 114 {
		t.Errorf("second quad X0 = %v, want 114 (pen advanced)", quads[1].X0)
	}

	// YOffset -10 places the glyph box above the baseline.
	if quads[0].Y0 != 40 {
		t.Errorf("first quad Y0 = %v, want 40", quads[0].Y0)
	}
}

func TestAppendQuadsScale(t *testing.T) {
	a := fixedAtlas(16, 14)

	ref := a.AppendQuads(nil, "AB", 0, 0, 1)
	scaled := a.AppendQuads(nil, "AB", 0, 0, 2)

	for i := range ref {
		if scaled[i].X0 != ref[i].X0*2 || scaled[i].X1 != ref[i].X1*2 {
			t.Errorf("quad %d X not doubled: ref (%v,%v) scaled (%v,%v)",
				i, ref[i].X0, ref[i].X1, scaled[i].X0, scaled[i].X1)
		}
		// UVs are atlas-space and must not change with draw scale.
		if scaled[i].U0 != ref[i].U0 || scaled[i].V1 != ref[i].V1 {
			t.Errorf("quad %d UVs changed with scale", i)
		}
	}
}

func TestAppendQuadsNewline(t *testing.T) {
	a := fixedAtlas(16, 14)

	quads := a.AppendQuads(nil, "A\nB", 100, 50, 1)
	if len(quads) != 2 {
		t.Fatalf("got %d quads, want 2", len(quads))
	}

	// Second line resets X and drops by the line height (16 * 1.2).
	if quads[1].X0 != 100 {
		t.Errorf("second line X0 = %v, want 100", quads[1].X0)
	}
	wantY := float32(50) + 16*1.2 - 10
	if !floatNear(quads[1].Y0, wantY, 0.001) {
		t.Errorf("second line Y0 = %v, want %v", quads[1].Y0, wantY)
	}
}

func TestBakeAtlasBadFontDegrades(t *testing.T) {
	cases := []struct {
		name  string
		bytes []byte
		size  float32
	}{
		{"nil data", nil, 16},
		{"garbage data", []byte("definitely not a font"), 16},
		{"zero size", []byte{0, 1, 0, 0}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := BakeAtlas(tc.bytes, tc.size, nil)
			if !a.Degraded() {
				t.Fatal("atlas should be degraded")
			}
			if got := a.Measure("hello"); got != 0 {
				t.Errorf("degraded Measure = %v, want 0", got)
			}
			if got := a.AppendQuads(nil, "hello", 0, 0, 1); len(got) != 0 {
				t.Errorf("degraded AppendQuads emitted %d quads, want 0", len(got))
			}
			if got := a.Texture(); got != 0 {
				t.Errorf("degraded Texture = %v, want 0", got)
			}
		})
	}
}

func TestDegradedLineHeightEqualsPixelSize(t *testing.T) {
	a := BakeAtlas(nil, 24, nil)
	if got := a.LineHeight(); got != 24 {
		t.Errorf("degraded LineHeight = %v, want exactly the pixel size 24", got)
	}
}

func TestHasGlyphRange(t *testing.T) {
	a := fixedAtlas(16, 14)

	if !a.HasGlyph(' ') || !a.HasGlyph('~') {
		t.Error("range endpoints should have glyphs")
	}
	if a.HasGlyph('\n') || a.HasGlyph(rune(127)) || a.HasGlyph('é') {
		t.Error("out-of-range runes should not have glyphs")
	}

	degraded := BakeAtlas(nil, 16, nil)
	if degraded.HasGlyph('A') {
		t.Error("degraded atlas should report no glyphs")
	}
}

func floatNear(a, b, tolerance float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}
