package model

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// ErrQuit is returned by WaitQuit when the user asks to leave.
var ErrQuit = errors.New("quit requested")

var (
	liveStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	deadStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault
)

// ScreenRenderer draws populations onto a full-screen terminal.
// Each cell takes two columns; status lines go below the board.
type ScreenRenderer struct {
	screen tcell.Screen
}

// NewScreenRenderer initialises screen and takes ownership of it until Close
func NewScreenRenderer(screen tcell.Screen) (*ScreenRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to initialise screen")
	}
	screen.Clear()
	return &ScreenRenderer{screen: screen}, nil
}

// Draw replaces the screen contents with p and the given status lines
func (r *ScreenRenderer) Draw(p Population, status ...string) {
	r.screen.Clear()
	for row := range Height {
		for col := range Width {
			style := deadStyle
			if p.Contains(Coord{Row: row, Col: col}) {
				style = liveStyle
			}
			r.screen.SetContent(col*2, row, ' ', nil, style)
			r.screen.SetContent(col*2+1, row, ' ', nil, style)
		}
	}
	for i, line := range status {
		for x, ch := range []rune(line) {
			r.screen.SetContent(x, Height+i, ch, nil, statusStyle)
		}
	}
	r.screen.Show()
}

// WaitQuit blocks until Esc, Ctrl+C or 'q' is pressed, returning ErrQuit,
// or until the screen is closed, returning nil.
func (r *ScreenRenderer) WaitQuit() error {
	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			r.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return ErrQuit
			}
		}
	}
}

// Close restores the terminal
func (r *ScreenRenderer) Close() {
	r.screen.Fini()
}
