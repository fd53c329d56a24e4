package console

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/gomoku/internal/entity"
)

const (
	// row labels take the first columns, every cell is three characters wide
	labelWidth = 3
	cellWidth  = 3
)

var (
	emptyStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	markStyles = map[entity.Mark]tcell.Style{
		entity.PlayerX: tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
		entity.PlayerO: tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Bold(true),
	}

	winningColor = tcell.ColorGreen
	cursorColor  = tcell.ColorDarkSlateGray
)

// BoardView draws a match snapshot and turns key presses and clicks into cell choices.
type BoardView struct {
	*tview.Box

	match    entity.Match
	hasMatch bool

	selRow int
	selCol int

	onPlay func(index int)
}

func NewBoardView() *BoardView {
	view := &BoardView{
		Box:    tview.NewBox(),
		selRow: -1,
		selCol: -1,
		onPlay: func(int) {},
	}

	view.SetDrawFunc(view.draw)
	view.SetInputCapture(view.handleKey)
	view.SetMouseCapture(view.handleMouse)

	return view
}

// SetMatch - replaces the drawn snapshot. The cursor starts in the centre.
func (that *BoardView) SetMatch(match entity.Match) {
	that.match = match
	that.hasMatch = match.Board != nil

	if !that.hasMatch {
		return
	}

	size := match.Board.Size
	if that.selRow < 0 || that.selRow >= size || that.selCol < 0 || that.selCol >= size {
		that.selRow, that.selCol = size/2, size/2
	}
}

// Selected - index under the cursor, false before the first match.
func (that *BoardView) Selected() (int, bool) {
	if !that.hasMatch || that.selRow < 0 {
		return 0, false
	}

	return that.match.Board.Index(that.selRow, that.selCol), true
}

func (that *BoardView) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if !that.hasMatch {
		return x, y, width, height
	}

	board := that.match.Board

	winning := make(map[int]bool, len(that.match.WinningCells))
	for _, index := range that.match.WinningCells {
		winning[index] = true
	}

	for col := 0; col < board.Size; col++ {
		drawText(screen, x+labelWidth+col*cellWidth, y, fmt.Sprintf("%2d ", col), emptyStyle)
	}

	for row := 0; row < board.Size; row++ {
		drawText(screen, x, y+1+row, fmt.Sprintf("%2d ", row), emptyStyle)

		for col := 0; col < board.Size; col++ {
			index := board.Index(row, col)
			mark := board.Get(index)

			symbol, style := '·', emptyStyle
			if mark != entity.EmptyCell {
				symbol, style = rune(mark[0]), markStyles[mark]
			}

			switch {
			case winning[index]:
				style = style.Background(winningColor)
			case row == that.selRow && col == that.selCol && !that.match.IsFrozen():
				style = style.Background(cursorColor)
			}

			left := x + labelWidth + col*cellWidth
			screen.SetContent(left, y+1+row, ' ', nil, style)
			screen.SetContent(left+1, y+1+row, symbol, nil, style)
			screen.SetContent(left+2, y+1+row, ' ', nil, style)
		}
	}

	return x, y, width, height
}

func (that *BoardView) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		that.moveSelection(-1, 0)
	case tcell.KeyDown:
		that.moveSelection(1, 0)
	case tcell.KeyLeft:
		that.moveSelection(0, -1)
	case tcell.KeyRight:
		that.moveSelection(0, 1)
	case tcell.KeyEnter:
		that.play()
	case tcell.KeyRune:
		switch event.Rune() {
		case 'k':
			that.moveSelection(-1, 0)
		case 'j':
			that.moveSelection(1, 0)
		case 'h':
			that.moveSelection(0, -1)
		case 'l':
			that.moveSelection(0, 1)
		case ' ':
			that.play()
		default:
			return event
		}
	default:
		return event
	}

	return nil
}

func (that *BoardView) handleMouse(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	if action != tview.MouseLeftClick {
		return action, event
	}

	row, col, ok := that.cellAt(event.Position())
	if !ok {
		return action, event
	}

	that.selRow, that.selCol = row, col
	that.play()

	return tview.MouseConsumed, nil
}

// cellAt - board coordinates of a screen position.
func (that *BoardView) cellAt(x, y int) (int, int, bool) {
	if !that.hasMatch {
		return 0, 0, false
	}

	left, top, _, _ := that.GetInnerRect()
	if x < left+labelWidth || y < top+1 {
		return 0, 0, false
	}

	row, col := y-top-1, (x-left-labelWidth)/cellWidth
	if !that.match.Board.InBounds(row, col) {
		return 0, 0, false
	}

	return row, col, true
}

func (that *BoardView) moveSelection(dRow, dCol int) {
	if !that.hasMatch || !that.match.Board.InBounds(that.selRow+dRow, that.selCol+dCol) {
		return
	}

	that.selRow += dRow
	that.selCol += dCol
}

func (that *BoardView) play() {
	if index, ok := that.Selected(); ok {
		that.onPlay(index)
	}
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
