// Example demonstrates a scrollable settings-style panel rendered with
// the ui package.
//
// Prerequisites:
//
//	A system TrueType font (the loader falls back to common OS fonts)
//	go run ./example/
//
// The example creates a GLFW window, initializes the OpenGL renderer and
// font atlases, and renders a scrollable list of labels, buttons,
// checkboxes, sliders, and a text field.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/poorcraft/ui"
	"github.com/poorcraft/ui/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "ui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("ui renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)
	ui.SetClipboardProvider(opengl.NewGLFWClipboard(window))

	// Resolution-aware scaling from the window size.
	scale := ui.NewScaleManager(windowWidth, windowHeight, 1.0)

	// Bake font atlases. A missing font degrades text to invisible but
	// everything else still renders, so Init has no error to return.
	fonts := ui.NewFontRenderer(scale.FontSize())
	fonts.Init("fonts/Roboto-Regular.ttf", renderer)
	defer fonts.Close()
	if fonts.Degraded() {
		fmt.Fprintln(os.Stderr, "warning: no usable font found, text will not render")
	}

	viewport, nameField := buildDemoPanel(scale)

	lastTime := glfw.GetTime()

	for !window.ShouldClose() {
		inputAdapter.Update()
		glfw.PollEvents()
		input := inputAdapter.Input()

		now := glfw.GetTime()
		dt := float32(now - lastTime)
		lastTime = now

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		scale.SetWindowSize(w, h)
		fonts.SetFontSize(scale.FontSize())

		// Dispatch pointer events to the viewport tree.
		viewport.OnPointerMove(input.MouseX, input.MouseY)
		if input.MousePressed(ui.PointerButtonLeft) {
			viewport.OnPointerDown(input.MouseX, input.MouseY, ui.PointerButtonLeft)
		}
		if input.MouseReleased(ui.PointerButtonLeft) {
			viewport.OnPointerUp(input.MouseX, input.MouseY, ui.PointerButtonLeft)
		}
		if input.WheelY != 0 && viewport.IsPointerOver(input.MouseX, input.MouseY) {
			viewport.OnScroll(input.WheelY)
		}
		dispatchKeyboard(input, nameField)

		viewport.Update(dt)

		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.10, 0.10, 0.13, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		dl := ui.AcquireDrawList()
		dl.PushClipRect(0, 0, float32(w), float32(h))
		viewport.Render(dl, fonts)
		dl.PopClipRect()

		if err := renderer.Render(dl); err != nil {
			ui.ReleaseDrawList(dl)
			return fmt.Errorf("render: %w", err)
		}
		ui.ReleaseDrawList(dl)

		window.SwapBuffers()
	}

	return nil
}

// editKeys are the keys forwarded to the focused text field each frame.
var editKeys = []ui.Key{
	ui.KeyLeft, ui.KeyRight, ui.KeyHome, ui.KeyEnd,
	ui.KeyBackspace, ui.KeyDelete, ui.KeyEnter, ui.KeyEscape,
	ui.KeyA, ui.KeyC, ui.KeyV, ui.KeyX,
}

// dispatchKeyboard routes this frame's key and character events to the
// text field while it holds focus.
func dispatchKeyboard(input *ui.InputState, field *ui.TextField) {
	if !field.Focused() {
		return
	}
	mods := input.Mods()
	for _, key := range editKeys {
		if input.KeyPressed(key) {
			field.OnKeyPress(key, mods)
		}
	}
	for _, r := range input.Chars {
		field.OnCharInput(r)
	}
}

// buildDemoPanel assembles a scrollable list with more content than fits,
// so the scrollbar and wheel handling are exercised.
func buildDemoPanel(scale *ui.ScaleManager) (*ui.ScrollViewport, *ui.TextField) {
	const (
		panelX = 200
		panelY = 60
		panelW = 400
		panelH = 420
	)

	viewport := ui.NewScrollViewport(panelX, panelY, panelW, panelH)

	y := float32(panelY + 10)
	rowW := float32(panelW) - ui.ScrollbarWidth - 20

	viewport.AddChild(ui.NewLabel(panelX+10, y, "Settings"))
	y += 40

	for i := 1; i <= 8; i++ {
		n := i
		btn := ui.NewButton(panelX+10, y, rowW, 36,
			fmt.Sprintf("Option %d", n), func() {
				fmt.Printf("option %d clicked\n", n)
			})
		viewport.AddChild(btn)
		y += 44
	}

	viewport.AddChild(ui.NewCheckbox(panelX+10, y, rowW, 24,
		"Enable shadows", true, func(on bool) {
			fmt.Printf("shadows: %v\n", on)
		}))
	y += 36

	viewport.AddChild(ui.NewCheckbox(panelX+10, y, rowW, 24,
		"Vertical sync", true, nil))
	y += 36

	viewport.AddChild(ui.NewLabel(panelX+10, y, "Master volume"))
	y += 28

	viewport.AddChild(ui.NewSlider(panelX+10, y, rowW, 24,
		0, 100, 70, func(v float32) {
			fmt.Printf("volume: %.0f\n", v)
		}))
	y += 36

	viewport.AddChild(ui.NewLabel(panelX+10, y, "UI scale"))
	y += 28

	viewport.AddChild(ui.NewSlider(panelX+10, y, rowW, 24,
		0.5, 2.0, scale.UserScale(), func(v float32) {
			scale.SetUserScale(v)
		}))
	y += 36

	viewport.AddChild(ui.NewLabel(panelX+10, y, "Player name"))
	y += 28

	nameField := ui.NewTextField(panelX+10, y, rowW, 30, "Steve")
	nameField.MaxLen = 16
	nameField.OnSubmit = func(name string) {
		fmt.Printf("name: %s\n", name)
	}
	viewport.AddChild(nameField)

	viewport.RequestLayout()
	return viewport, nameField
}
