// Package term implements ui.Frontend on a terminal through tcell. Each
// playfield cell becomes two columns and one row, so the 20x20 board fits a
// 40x20 terminal.
package term

import (
	"time"

	"snake-classic/ui"

	"github.com/gdamore/tcell/v2"
)

// Terminal draws pixel coordinates scaled down by cellSize.
type Terminal struct {
	screen   tcell.Screen
	cellSize int32
	frame    time.Duration

	events  chan tcell.Event
	pressed map[ui.Key]bool
	closing bool

	lastFrame time.Time
	frameTime float32
}

// New takes ownership of an initialized screen. fps paces EndDrawing.
func New(screen tcell.Screen, cellSize, fps int) *Terminal {
	t := &Terminal{
		screen:    screen,
		cellSize:  int32(cellSize),
		frame:     time.Second / time.Duration(fps),
		events:    make(chan tcell.Event, 100),
		pressed:   make(map[ui.Key]bool),
		lastFrame: time.Now(),
	}
	screen.HideCursor()

	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(t.events)
				return
			}
			t.events <- ev
		}
	}()
	return t
}

// Open creates and initializes the process terminal screen.
func Open(cellSize, fps int) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return New(screen, cellSize, fps), nil
}

func (t *Terminal) FrameTime() float32 { return t.frameTime }
func (t *Terminal) ShouldClose() bool  { return t.closing }

func (t *Terminal) BeginDrawing() {
	t.screen.Clear()
}

// EndDrawing presents the frame, sleeps out the rest of the frame budget and
// collects the input that arrived meanwhile.
func (t *Terminal) EndDrawing() {
	t.screen.Show()

	if wait := t.frame - time.Since(t.lastFrame); wait > 0 {
		time.Sleep(wait)
	}
	now := time.Now()
	t.frameTime = float32(now.Sub(t.lastFrame).Seconds())
	t.lastFrame = now

	t.pollInput()
}

func (t *Terminal) pollInput() {
	clear(t.pressed)
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				t.closing = true
				return
			}
			t.handleEvent(ev)
		default:
			return
		}
	}
}

func (t *Terminal) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			t.closing = true
		case tcell.KeyRune:
			if k, ok := runeKey(ev.Rune()); ok {
				t.pressed[k] = true
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

func runeKey(r rune) (ui.Key, bool) {
	switch r {
	case 'w', 'W':
		return ui.KeyUp, true
	case 's', 'S':
		return ui.KeyDown, true
	case 'a', 'A':
		return ui.KeyLeft, true
	case 'd', 'D':
		return ui.KeyRight, true
	case 'r', 'R':
		return ui.KeyRestart, true
	}
	return 0, false
}

func (t *Terminal) IsKeyPressed(k ui.Key) bool {
	return t.pressed[k]
}

// DrawRectangle fills every terminal cell the rectangle overlaps.
func (t *Terminal) DrawRectangle(x, y, width, height int32, c ui.Color) {
	style := tcell.StyleDefault.Background(toTcell(c))
	col0, row0 := t.toCell(x, y)
	col1, row1 := t.toCell(x+width+t.cellSize-1, y+height+t.cellSize-1)
	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			t.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// DrawText writes text starting at the cell under (x, y). The font size is
// ignored.
func (t *Terminal) DrawText(text string, x, y, fontSize int32, c ui.Color) {
	style := tcell.StyleDefault.Foreground(toTcell(c))
	col, row := t.toCell(x, y)
	for _, r := range text {
		t.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

func (t *Terminal) Close() error {
	t.screen.Fini()
	return nil
}

// toCell maps a pixel coordinate onto the terminal grid.
func (t *Terminal) toCell(x, y int32) (int, int) {
	return int(floorDiv(x, t.cellSize)) * 2, int(floorDiv(y, t.cellSize))
}

func floorDiv(a, b int32) int32 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func toTcell(c ui.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var _ ui.Frontend = (*Terminal)(nil)
