package ui

import (
	"fmt"

	"snake-classic/game"
	"snake-classic/game/types"
)

const (
	scoreFontSize    = 32
	gameOverFontSize = 32
	headFontSize     = 16
	gameOverText     = "GAME OVER, Press 'R' to Restart"
)

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
}

func NewRenderer(grid types.Grid) *Renderer {
	return &Renderer{
		cellSize:     int32(grid.CellSize),
		screenWidth:  int32(grid.Width()),
		screenHeight: int32(grid.Height()),
	}
}

// Draw emits one frame. The caller brackets it with BeginDrawing/EndDrawing.
func (r *Renderer) Draw(f Frontend, g *game.Game) {
	f.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, Black)

	if g.IsGameOver() {
		f.DrawText(gameOverText, 50, r.screenHeight/2, gameOverFontSize, Red)
	}

	f.DrawText(fmt.Sprintf("Score: %d", g.Score()), 10, 10, scoreFontSize, White)

	food := g.GetFood()
	f.DrawRectangle(int32(food.X), int32(food.Y), r.cellSize, r.cellSize, Green)

	r.drawSnake(f, g)
}

func (r *Renderer) drawSnake(f Frontend, g *game.Game) {
	snake := g.GetSnake()
	part := r.cellSize - types.PartPadding
	for i := 0; i < snake.Len(); i++ {
		p := snake.Segment(i)
		f.DrawRectangle(int32(p.X), int32(p.Y), part, part, Red)
	}

	head := snake.GetHead()
	f.DrawText("HEAD", int32(head.X), int32(head.Y), headFontSize, White)
}
