// Package window implements ui.Frontend on a raylib window.
package window

import (
	"bytes"

	"snake-classic/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keys = map[ui.Key]int32{
	ui.KeyUp:      rl.KeyW,
	ui.KeyDown:    rl.KeyS,
	ui.KeyLeft:    rl.KeyA,
	ui.KeyRight:   rl.KeyD,
	ui.KeyRestart: rl.KeyR,
}

type Window struct{}

// Open creates the window and sets the target frame rate. Only one window
// can be open per process.
func Open(width, height int, title string, fps int) *Window {
	rl.InitWindow(int32(width), int32(height), title)
	rl.SetTargetFPS(int32(fps))
	return &Window{}
}

func (w *Window) FrameTime() float32 { return rl.GetFrameTime() }
func (w *Window) ShouldClose() bool  { return rl.WindowShouldClose() }
func (w *Window) BeginDrawing()      { rl.BeginDrawing() }
func (w *Window) EndDrawing()        { rl.EndDrawing() }

func (w *Window) DrawRectangle(x, y, width, height int32, c ui.Color) {
	rl.DrawRectangle(x, y, width, height, toRaylib(c))
}

func (w *Window) DrawText(text string, x, y, fontSize int32, c ui.Color) {
	rl.DrawText(text, x, y, fontSize, toRaylib(c))
}

func (w *Window) IsKeyPressed(k ui.Key) bool {
	code, ok := keys[k]
	return ok && rl.IsKeyPressed(code)
}

func (w *Window) Close() error {
	rl.CloseWindow()
	return nil
}

func toRaylib(c ui.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// TraceWriter forwards each written line to raylib's trace log at the given
// level, so game logs interleave with raylib's own output.
type TraceWriter struct {
	Level rl.TraceLogLevel
}

func (tw TraceWriter) Write(p []byte) (int, error) {
	for _, line := range bytes.Split(bytes.TrimRight(p, "\n"), []byte("\n")) {
		rl.TraceLog(tw.Level, "%s", line)
	}
	return len(p), nil
}

var _ ui.Frontend = (*Window)(nil)
