package entity

import (
	"gridsnake/game/types"
)

// Snake is the body of the snake, head first. A Snake is treated as a value:
// methods never modify the receiver's backing array.
type Snake []types.Point

// NewSnake lays out length segments horizontally with the head at head and
// the rest trailing to the left.
func NewSnake(head types.Point, length int) Snake {
	body := make(Snake, length)
	for i := range body {
		body[i] = types.Point{X: head.X - i, Y: head.Y}
	}
	return body
}

func (s Snake) Len() int {
	return len(s)
}

func (s Snake) GetHead() types.Point {
	return s[0]
}

func (s Snake) GetTail() types.Point {
	return s[len(s)-1]
}

// Occupies reports whether any segment sits on p.
func (s Snake) Occupies(p types.Point) bool {
	for _, part := range s {
		if part == p {
			return true
		}
	}
	return false
}

// Move returns a new body with newHead prepended. Unless grow is set the tail
// is dropped, so the length is unchanged.
func (s Snake) Move(newHead types.Point, grow bool) Snake {
	n := len(s)
	if grow {
		n++
	}
	next := make(Snake, 0, n)
	next = append(next, newHead)
	return append(next, s[:n-1]...)
}

// Clone returns a copy that shares no memory with s.
func (s Snake) Clone() Snake {
	if s == nil {
		return nil
	}
	out := make(Snake, len(s))
	copy(out, s)
	return out
}
