package ui

import (
	"fmt"

	"gridsnake/game/types"
	"gridsnake/session"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	backgroundColor = rl.NewColor(0x0f, 0x13, 0x19, 255)
	gridLineColor   = rl.NewColor(0x1a, 0x20, 0x29, 255)
	foodColor       = rl.NewColor(0xf4, 0xc3, 0x6a, 255)
	headColor       = rl.NewColor(0x4c, 0xd3, 0x7b, 255)
	bodyColor       = rl.NewColor(0x2f, 0x8f, 0x57, 255)
	buttonColor     = rl.NewColor(0x22, 0x2a, 0x36, 255)
	textColor       = rl.RayWhite
)

const fontSize = 20

type Renderer struct {
	layout Layout
}

func NewRenderer(l Layout) *Renderer {
	return &Renderer{layout: l}
}

func (r *Renderer) Draw(s *session.Session) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(backgroundColor)

	state := s.State()
	r.drawHeader(s)
	r.drawGrid()

	if state.HasFood {
		r.drawCell(state.Food, foodColor)
	}

	// Draw from tail to head so the head stays on top.
	for i := state.Snake.Len() - 1; i >= 0; i-- {
		p := state.Snake[i]
		if i == 0 {
			r.drawCell(p, headColor)
			r.drawHeading(p, state.Direction)
		} else {
			r.drawCell(p, bodyColor)
		}
	}

	r.drawButtons(s.Paused())
	r.drawOverlay(s.Overlay())
}

func (r *Renderer) drawHeader(s *session.Session) {
	l := r.layout
	y := int32(borderPadding) + (headerHeight-fontSize)/2
	rl.DrawText(fmt.Sprintf("Score: %d", s.State().Score), l.OffsetX, y, fontSize, textColor)

	high := fmt.Sprintf("Best: %d", s.HighScore())
	w := rl.MeasureText(high, fontSize)
	rl.DrawText(high, l.OffsetX+l.BoardSize-w, y, fontSize, rl.Gray)
}

func (r *Renderer) drawGrid() {
	l := r.layout
	for i := int32(0); i <= l.GridSize; i++ {
		x := l.OffsetX + i*l.CellSize
		y := l.OffsetY + i*l.CellSize
		rl.DrawLine(x, l.OffsetY, x, l.OffsetY+l.BoardSize, gridLineColor)
		rl.DrawLine(l.OffsetX, y, l.OffsetX+l.BoardSize, y, gridLineColor)
	}
}

func (r *Renderer) drawCell(p types.Point, color rl.Color) {
	x, y := r.layout.Cell(p.X, p.Y)
	rl.DrawRectangle(x, y, r.layout.CellSize, r.layout.CellSize, color)
}

// drawHeading marks the head with a small triangle pointing along direction.
func (r *Renderer) drawHeading(head types.Point, direction types.Direction) {
	headX, headY := r.layout.Cell(head.X, head.Y)
	cell := float32(r.layout.CellSize)
	half := cell / 2
	x, y := float32(headX), float32(headY)

	var a, b, c rl.Vector2
	switch direction {
	case types.Right:
		a = rl.Vector2{X: x + cell, Y: y + half}
		b = rl.Vector2{X: x + half, Y: y}
		c = rl.Vector2{X: x + half, Y: y + cell}
	case types.Left:
		a = rl.Vector2{X: x, Y: y + half}
		b = rl.Vector2{X: x + half, Y: y + cell}
		c = rl.Vector2{X: x + half, Y: y}
	case types.Down:
		a = rl.Vector2{X: x + half, Y: y + cell}
		b = rl.Vector2{X: x + cell, Y: y + half}
		c = rl.Vector2{X: x, Y: y + half}
	case types.Up:
		a = rl.Vector2{X: x + half, Y: y}
		b = rl.Vector2{X: x, Y: y + half}
		c = rl.Vector2{X: x + cell, Y: y + half}
	default:
		return
	}
	rl.DrawTriangle(a, b, c, rl.Fade(rl.Yellow, 0.6))
}

func (r *Renderer) drawButtons(paused bool) {
	for _, btn := range r.layout.Buttons {
		label := btn.Label
		if btn.Action == ActionPause && paused {
			label = "Resume"
		}
		rl.DrawRectangleRec(btn.Rect, buttonColor)
		rl.DrawRectangleLinesEx(btn.Rect, 1, gridLineColor)

		w := rl.MeasureText(label, fontSize)
		rl.DrawText(label,
			int32(btn.Rect.X)+(int32(btn.Rect.Width)-w)/2,
			int32(btn.Rect.Y)+(int32(btn.Rect.Height)-fontSize)/2,
			fontSize, textColor)
	}
}

func (r *Renderer) drawOverlay(text string) {
	if text == "" {
		return
	}
	l := r.layout
	rl.DrawRectangle(l.OffsetX, l.OffsetY, l.BoardSize, l.BoardSize, rl.Fade(rl.Black, 0.6))

	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text,
		l.OffsetX+(l.BoardSize-w)/2,
		l.OffsetY+(l.BoardSize-fontSize)/2,
		fontSize, textColor)
}
