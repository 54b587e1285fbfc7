package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	DefaultCellSize = 24
	minCellSize     = 8
	borderPadding   = 10 // Padding around game area
	headerHeight    = 36
	buttonSize      = 44
	buttonGap       = 6
)

// Button is an on-screen control that maps a click to an Action.
type Button struct {
	Label  string
	Action Action
	Rect   rl.Rectangle
}

// Layout places the board, header and buttons. The board is a fixed grid of
// CellSize pixel cells.
type Layout struct {
	GridSize  int32
	CellSize  int32
	OffsetX   int32
	OffsetY   int32
	BoardSize int32
	Width     int32
	Height    int32
	Buttons   []Button
}

func NewLayout(gridSize, cellSize int32) Layout {
	if cellSize < minCellSize {
		cellSize = minCellSize
	}

	l := Layout{
		GridSize:  gridSize,
		CellSize:  cellSize,
		OffsetX:   borderPadding,
		OffsetY:   borderPadding + headerHeight,
		BoardSize: gridSize * cellSize,
	}

	// D-pad under the board on the left, Pause/Restart on the right.
	padTop := float32(l.OffsetY + l.BoardSize + borderPadding)
	padLeft := float32(l.OffsetX)
	step := float32(buttonSize + buttonGap)
	size := float32(buttonSize)
	l.Buttons = []Button{
		{Label: "^", Action: ActionUp, Rect: rl.NewRectangle(padLeft+step, padTop, size, size)},
		{Label: "<", Action: ActionLeft, Rect: rl.NewRectangle(padLeft, padTop+step, size, size)},
		{Label: "v", Action: ActionDown, Rect: rl.NewRectangle(padLeft+step, padTop+step, size, size)},
		{Label: ">", Action: ActionRight, Rect: rl.NewRectangle(padLeft+2*step, padTop+step, size, size)},
	}

	wide := float32(2*buttonSize + buttonGap)
	right := padLeft + 3*step + float32(borderPadding)
	l.Buttons = append(l.Buttons,
		Button{Label: "Pause", Action: ActionPause, Rect: rl.NewRectangle(right, padTop, wide, size)},
		Button{Label: "Restart", Action: ActionRestart, Rect: rl.NewRectangle(right, padTop+step, wide, size)},
	)

	controlsWidth := int32(right+wide) + borderPadding
	l.Width = max(l.BoardSize+2*borderPadding, controlsWidth)
	l.Height = int32(padTop+2*step) + borderPadding
	return l
}

// Cell returns the top-left screen corner of grid cell (x, y).
func (l Layout) Cell(x, y int) (int32, int32) {
	return l.OffsetX + int32(x)*l.CellSize, l.OffsetY + int32(y)*l.CellSize
}
