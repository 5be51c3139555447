package game

import (
	"io"
	"log"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"

	"github.com/google/uuid"
)

// Phase is the round state machine: Playing until a collision, then GameOver
// until a restart.
type Phase int

const (
	Playing Phase = iota
	GameOver
)

func (p Phase) String() string {
	if p == GameOver {
		return "game over"
	}
	return "playing"
}

// Input is the set of logical keys pressed during one frame.
type Input struct {
	Up      bool
	Down    bool
	Left    bool
	Right   bool
	Restart bool
}

// Config carries everything a Game needs at construction.
type Config struct {
	Grid   types.Grid
	Seed   uint64
	Logger *log.Logger // nil discards
	Debug  bool        // log every movement step
}

// Game owns all round state. It is not safe for concurrent use; the frame
// loop is its only caller.
type Game struct {
	Grid types.Grid

	snake      *entity.Snake
	food       types.Point
	score      int
	lastMoved  float32
	phase      Phase
	lastCause  manager.CollisionType
	roundID    string
	foodMgr    *manager.FoodManager
	collisions *manager.CollisionManager
	logger     *log.Logger
	debug      bool
}

func NewGame(cfg Config) *Game {
	grid := cfg.Grid
	if grid.CellSize == 0 || grid.CellCount == 0 {
		grid = types.DefaultGrid
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	g := &Game{
		Grid:       grid,
		foodMgr:    manager.NewFoodManager(grid, cfg.Seed),
		collisions: manager.NewCollisionManager(grid),
		logger:     logger,
		debug:      cfg.Debug,
	}
	g.reset()
	g.logger.Printf("round %s started (seed %d)", g.roundID, cfg.Seed)
	return g
}

// reset rebuilds the snake and food together and clears score, timer and
// the game-over flag.
func (g *Game) reset() {
	g.snake = entity.NewSnake(g.Grid)
	g.score = 0
	g.lastMoved = 0
	g.phase = Playing
	g.lastCause = manager.NoCollision
	g.roundID = uuid.New().String()
	g.food = g.foodMgr.GenerateFood()
}

// Restart starts a fresh round regardless of the current phase.
func (g *Game) Restart() {
	prev := g.roundID
	g.reset()
	g.logger.Printf("round %s restarted as %s", prev, g.roundID)
}

// Update advances the game by one frame. dt is the real time in seconds
// since the previous frame.
func (g *Game) Update(in Input, dt float32) {
	if g.phase == GameOver {
		if in.Restart {
			g.Restart()
		}
		return
	}

	g.lastMoved += dt
	g.steer(in)

	if g.lastMoved > types.MovementDelay {
		g.snake.Move()
		g.lastMoved = 0
		if g.debug {
			g.logger.Printf("snake moved to %v", g.snake.GetHead())
		}
	}

	g.evaluate()
}

// steer maps the pressed keys onto a direction. Up and Left win over Down
// and Right when both are held.
func (g *Game) steer(in Input) {
	var dir types.Point
	if g.snake.Direction.Y == 0 {
		switch {
		case in.Up:
			dir = types.Point{X: 0, Y: 1}
		case in.Down:
			dir = types.Point{X: 0, Y: -1}
		}
	} else if g.snake.Direction.X == 0 {
		switch {
		case in.Left:
			dir = types.Point{X: 1, Y: 0}
		case in.Right:
			dir = types.Point{X: -1, Y: 0}
		}
	}
	if !dir.IsZero() {
		g.snake.Steer(dir)
	}
}

// evaluate runs food, self and wall checks in that order. None of them
// short-circuits the others.
func (g *Game) evaluate() {
	head := g.snake.GetHead()

	if g.collisions.IsFoodCollision(head, g.food) {
		g.logger.Printf("snake ate food at %v", g.food)
		g.snake.Grow()
		head = g.snake.GetHead()
		g.score++
		g.food = g.foodMgr.GenerateFood()
	}

	for _, i := range g.collisions.SelfCollisions(g.snake) {
		g.logger.Printf("snake bit itself at part %d", i)
		g.endRound(manager.SelfCollision)
	}

	if g.collisions.IsWallCollision(head) {
		g.logger.Printf("snake went out at %v", head)
		g.endRound(manager.WallCollision)
	}
}

func (g *Game) endRound(cause manager.CollisionType) {
	if g.phase != GameOver {
		g.logger.Printf("round %s over with score %d", g.roundID, g.score)
	}
	g.phase = GameOver
	g.lastCause = cause
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Point {
	return g.food
}

// SetFood moves the food to p without resampling.
func (g *Game) SetFood(p types.Point) {
	g.food = p
}

// SetSnake replaces the snake for the current round.
func (g *Game) SetSnake(s *entity.Snake) {
	g.snake = s
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) IsGameOver() bool {
	return g.phase == GameOver
}

// LastCollision is the check that most recently ended the round.
func (g *Game) LastCollision() manager.CollisionType {
	return g.lastCause
}

// RoundID identifies the current round in log output.
func (g *Game) RoundID() string {
	return g.roundID
}

// SinceMove is the time accumulated towards the next movement step.
func (g *Game) SinceMove() float32 {
	return g.lastMoved
}
