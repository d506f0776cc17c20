package ui

import "testing"

// testFontRenderer builds a renderer with synthetic atlases at the
// standard sizes. Each size gets a distinct advance so tests can tell
// which atlas answered.
func testFontRenderer(fontSize int) *FontRenderer {
	f := NewFontRenderer(fontSize)
	for _, size := range atlasSizes {
		f.atlases[size] = fixedAtlas(float32(size), float32(size)/2)
	}
	f.degraded = false
	f.currentSize = f.closestSize(fontSize)
	return f
}

func TestFontRendererDegradedBeforeInit(t *testing.T) {
	f := NewFontRenderer(20)

	if !f.Degraded() {
		t.Fatal("renderer should be degraded before Init")
	}
	if got := f.Measure("hello"); got != 0 {
		t.Errorf("Measure = %v, want 0", got)
	}
	if got := f.LineHeight(); got != 20 {
		t.Errorf("LineHeight = %v, want the requested size 20", got)
	}

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	f.DrawText(dl, "hello", 0, 0, 1, ColorWhite)
	if len(dl.VtxBuffer) != 0 {
		t.Errorf("degraded DrawText emitted %d vertices, want 0", len(dl.VtxBuffer))
	}
}

func TestInitFromBytesBadFontDegrades(t *testing.T) {
	f := NewFontRenderer(20)
	f.InitFromBytes([]byte("not a font"), nil)

	if !f.Degraded() {
		t.Fatal("renderer should be degraded after a failed bake")
	}
	if got := f.Measure("hello"); got != 0 {
		t.Errorf("Measure = %v, want 0", got)
	}
}

func TestSetFontSizePicksClosestAtlas(t *testing.T) {
	f := testFontRenderer(20)

	cases := []struct {
		request int
		want    int
	}{
		{16, 16},
		{20, 20},
		{21, 20},
		{27, 24},
		{30, 32},
		{100, 32},
		{5, 16},
	}
	for _, tc := range cases {
		f.SetFontSize(tc.request)
		if got := f.FontSize(); got != tc.want {
			t.Errorf("SetFontSize(%d): FontSize() = %d, want %d", tc.request, got, tc.want)
		}
	}
}

func TestSetFontSizeNoopWhenDegraded(t *testing.T) {
	f := NewFontRenderer(20)
	f.SetFontSize(32)
	if got := f.FontSize(); got != 20 {
		t.Errorf("FontSize() = %d, want the untouched 20", got)
	}
}

func TestMeasureUsesActiveAtlas(t *testing.T) {
	f := testFontRenderer(20)

	// Advance per glyph is size/2.
	if got := f.Measure("abcd"); got != 40 {
		t.Errorf("Measure at size 20 = %v, want 40", got)
	}

	f.SetFontSize(32)
	if got := f.Measure("abcd"); got != 64 {
		t.Errorf("Measure at size 32 = %v, want 64", got)
	}
}

func TestDrawTextBatchesOnAtlasTexture(t *testing.T) {
	f := testFontRenderer(20)
	f.atlases[20].texture = 7

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	f.DrawText(dl, "AB", 10, 20, 1, ColorWhite)
	dl.Finalize()

	if got := len(dl.VtxBuffer); got != 8 {
		t.Fatalf("got %d vertices, want 8 (4 per glyph)", got)
	}

	found := false
	for _, cmd := range dl.CmdBuffer {
		if cmd.TextureID == 7 && cmd.ElemCount == 12 {
			found = true
		}
	}
	if !found {
		t.Error("no draw command bound to the atlas texture with 12 indices")
	}
}

func TestDrawTextShadowEmitsTwoPasses(t *testing.T) {
	f := testFontRenderer(20)

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	f.DrawTextShadow(dl, "AB", 10, 20, 1, ColorWhite)

	if got := len(dl.VtxBuffer); got != 16 {
		t.Fatalf("got %d vertices, want 16 (shadow pass plus text pass)", got)
	}

	// The shadow pass comes first and sits offset down-right.
	if dl.VtxBuffer[0].Pos[0] != 10+DefaultShadowOffset {
		t.Errorf("shadow X = %v, want %v", dl.VtxBuffer[0].Pos[0], 10+DefaultShadowOffset)
	}
	if dl.VtxBuffer[8].Pos[0] != 10 {
		t.Errorf("text X = %v, want 10", dl.VtxBuffer[8].Pos[0])
	}
}

func TestDrawTextSkipsInvisibleColor(t *testing.T) {
	f := testFontRenderer(20)

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	f.DrawText(dl, "AB", 0, 0, 1, 0x00FFFFFF)
	if len(dl.VtxBuffer) != 0 {
		t.Errorf("transparent text emitted %d vertices, want 0", len(dl.VtxBuffer))
	}
}

func TestWithShadowOption(t *testing.T) {
	f := NewFontRenderer(20, WithShadow(4, 0.5))
	for _, size := range atlasSizes {
		f.atlases[size] = fixedAtlas(float32(size), float32(size)/2)
	}
	f.degraded = false
	f.currentSize = 20

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	f.DrawTextShadow(dl, "A", 10, 20, 1, ColorWhite)
	if got := dl.VtxBuffer[0].Pos[0]; got != 14 {
		t.Errorf("shadow X = %v, want 14 with a 4px offset", got)
	}
}

func TestWithAtlasSizesOption(t *testing.T) {
	f := NewFontRenderer(20, WithAtlasSizes(12, 48))
	if len(f.sizes) != 2 || f.sizes[0] != 12 || f.sizes[1] != 48 {
		t.Errorf("sizes = %v, want [12 48]", f.sizes)
	}

	// An empty list keeps the defaults.
	f = NewFontRenderer(20, WithAtlasSizes())
	if len(f.sizes) != len(atlasSizes) {
		t.Errorf("sizes = %v, want the default set", f.sizes)
	}
}

func TestCloseReturnsToDegraded(t *testing.T) {
	f := testFontRenderer(20)
	f.Close()

	if !f.Degraded() {
		t.Error("renderer should be degraded after Close")
	}
	if got := f.Measure("x"); got != 0 {
		t.Errorf("Measure after Close = %v, want 0", got)
	}
}
