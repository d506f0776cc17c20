/*
Package ui implements the core UI toolkit for the PoorCraft client: a quad-batching
draw list, a TrueType font atlas renderer, a scrollable clipped viewport, a small
widget set, and responsive layout helpers.

# Overview

The toolkit is retained-mode at the widget level and immediate-mode at the draw
level. Screens own widgets (often inside a [ScrollViewport]), and every frame the
driver calls Render, Update, and the pointer/key dispatch methods. Widgets emit
geometry into a [DrawList], which the backend renderer uploads and draws in a
single pass, batched by texture and split by clip rectangle.

# Quick Start

	// Setup (see example/ for the full GLFW driver)
	renderer, _ := opengl.NewRenderer(1280, 720)
	fonts := ui.NewFontRenderer(20)
	fonts.Init("fonts/default.ttf", renderer)

	view := ui.NewScrollViewport(40, 40, 400, 500)
	view.AddChild(ui.NewButton(40, 40, 200, 48, "Singleplayer", onClick))

	// Frame loop
	for !window.ShouldClose() {
	    dl := ui.AcquireDrawList()
	    view.Render(dl, fonts)
	    renderer.Render(dl)
	    ui.ReleaseDrawList(dl)
	    view.Update(deltaTime)
	}

Pointer and key events are delivered in screen space by the platform layer
(backend/opengl has a GLFW adapter); the viewport translates them into content
space for its children.

# Font Failure Semantics

Font loading and atlas baking fail soft. If no font source can be read or the
rasterizer rejects the data, the [FontRenderer] enters a degraded mode where
measurement returns 0, drawing is a no-op, and line height falls back to the
requested pixel size so layout spacing stays stable. No font failure ever
reaches a render call site as an error.
*/
package ui
