package ui

import (
	"snake-classic/game"
)

// Key is a logical input the game listens for.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyRestart
)

// Color is an RGBA draw color.
type Color struct {
	R, G, B, A uint8
}

var (
	Black = Color{R: 0, G: 0, B: 0, A: 255}
	White = Color{R: 255, G: 255, B: 255, A: 255}
	Red   = Color{R: 230, G: 41, B: 55, A: 255}
	Green = Color{R: 0, G: 228, B: 48, A: 255}
)

// Frontend is the window, input and drawing collaborator the game loop runs
// against. Coordinates are in playfield pixels.
type Frontend interface {
	// FrameTime returns the seconds elapsed during the previous frame.
	FrameTime() float32
	ShouldClose() bool
	BeginDrawing()
	EndDrawing()
	DrawRectangle(x, y, width, height int32, c Color)
	DrawText(text string, x, y, fontSize int32, c Color)
	// IsKeyPressed reports a key that went down since the previous frame.
	IsKeyPressed(k Key) bool
	Close() error
}

// ReadInput samples the five logical keys for this frame.
func ReadInput(f Frontend) game.Input {
	return game.Input{
		Up:      f.IsKeyPressed(KeyUp),
		Down:    f.IsKeyPressed(KeyDown),
		Left:    f.IsKeyPressed(KeyLeft),
		Right:   f.IsKeyPressed(KeyRight),
		Restart: f.IsKeyPressed(KeyRestart),
	}
}

// Run drives g until the frontend asks to close: one update and one draw per
// frame.
func Run(f Frontend, g *game.Game) {
	r := NewRenderer(g.Grid)
	for !f.ShouldClose() {
		dt := f.FrameTime()
		f.BeginDrawing()
		g.Update(ReadInput(f), dt)
		r.Draw(f, g)
		f.EndDrawing()
	}
}
