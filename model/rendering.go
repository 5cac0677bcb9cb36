package model

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const (
	gridPosEmpty = ' '

	richColorDepth  = 16
	basicColorDepth = 8
)

// glyph is what gets drawn for one live cell
type glyph struct {
	r     rune
	style tcell.Style
}

// cellGlyphs picks the most colorful glyph per CellState the terminal supports.
// Black and white terminals fall back to reverse video and the checkerboard rune.
func cellGlyphs(colors int) [NumStates]glyph {
	on := func(bg tcell.Color) glyph {
		return glyph{r: gridPosEmpty, style: tcell.StyleDefault.Background(bg)}
	}

	switch {
	case colors >= richColorDepth:
		return [NumStates]glyph{on(tcell.ColorRed), on(tcell.ColorLime), on(tcell.ColorAqua)}
	case colors >= basicColorDepth:
		return [NumStates]glyph{on(tcell.ColorMaroon), on(tcell.ColorGreen), on(tcell.ColorNavy)}
	}

	reverse := tcell.StyleDefault.Reverse(true)
	return [NumStates]glyph{
		{r: gridPosEmpty, style: reverse},
		{r: tcell.RuneCkBoard, style: reverse},
		{r: tcell.RuneCkBoard, style: tcell.StyleDefault},
	}
}

// TerminalRenderer draws sparse boards onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	glyphs [NumStates]glyph
}

// OpenTerminal creates and initializes the real terminal screen
func OpenTerminal() (*TerminalRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[OpenTerminal] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[OpenTerminal] failed to initialize screen")
	}
	screen.HideCursor()
	screen.Clear()

	return NewTerminalRenderer(screen), nil
}

// NewTerminalRenderer wraps an initialized screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		glyphs: cellGlyphs(screen.Colors()),
	}
}

// Screen exposes the underlying screen for event polling
func (r *TerminalRenderer) Screen() tcell.Screen {
	return r.screen
}

// Size returns the terminal width and height
func (r *TerminalRenderer) Size() (width, height int) {
	return r.screen.Size()
}

// Draw puts one glyph per live cell. Dead cells are not touched.
func (r *TerminalRenderer) Draw(board Board) {
	for c, s := range board {
		g := r.glyphs[s]
		r.screen.SetContent(c.X, c.Y, g.r, nil, g.style)
	}
}

// Clear erases the previous frame row by row
func (r *TerminalRenderer) Clear(height int) {
	width, _ := r.screen.Size()
	for y := range height {
		for x := range width {
			r.screen.SetContent(x, y, gridPosEmpty, nil, tcell.StyleDefault)
		}
	}
}

// Show flushes the drawn frame to the terminal
func (r *TerminalRenderer) Show() {
	r.screen.Show()
}

// Fini restores the terminal
func (r *TerminalRenderer) Fini() {
	r.screen.Fini()
}
