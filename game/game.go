// Package game holds the snake simulation. Every operation takes a GameState
// by value and returns a new one; nothing here blocks, logs or fails.
package game

import (
	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// GameState is one frame of the simulation. Treat it as immutable: Step and
// QueueDirection return fresh values and never write to the Snake of the
// state they were given.
type GameState struct {
	GridSize int
	Snake    entity.Snake
	// Direction is the direction applied on the last completed tick.
	Direction types.Direction
	// QueuedDirection is applied on the next tick unless it reverses Direction.
	QueuedDirection types.Direction
	Food            types.Point
	HasFood         bool // false only when the snake fills the grid
	Score           int
	GameOver        bool
	Rand            types.RandomSource
}

// Grid returns the square grid the state is played on.
func (s GameState) Grid() types.Grid {
	return types.Square(s.GridSize)
}

// Initialize builds the starting state: a three segment snake centred on the
// grid, heading right, with food on a random open cell.
//
// gridSize must be at least types.MinGridSize; callers validate it. A nil rng
// falls back to the shared x/exp/rand source.
func Initialize(gridSize int, rng types.RandomSource) GameState {
	if rng == nil {
		rng = rand.Float64
	}

	center := gridSize / 2
	snake := entity.NewSnake(types.Point{X: center + 1, Y: center}, types.InitialLength)
	food, hasFood := manager.PlaceFood(snake, types.Square(gridSize), rng)

	return GameState{
		GridSize:        gridSize,
		Snake:           snake,
		Direction:       types.Right,
		QueuedDirection: types.Right,
		Food:            food,
		HasFood:         hasFood,
		Score:           0,
		GameOver:        false,
		Rand:            rng,
	}
}

// QueueDirection records the player's intent for the next tick. Labels other
// than "up", "down", "left" and "right" leave the state untouched. Reversals
// are accepted here and discarded by Step.
func QueueDirection(s GameState, label string) GameState {
	dir, ok := types.ParseDirection(label)
	if !ok {
		return s
	}
	s.QueuedDirection = dir
	return s
}

// resolveDirection picks the direction for the coming tick.
func resolveDirection(s GameState) types.Direction {
	if s.Direction.IsOpposite(s.QueuedDirection) || !s.QueuedDirection.Valid() {
		return s.Direction
	}
	return s.QueuedDirection
}

// CollisionAt reports what the snake would hit on the next tick.
func CollisionAt(s GameState) types.CollisionType {
	if s.Snake.Len() == 0 {
		return types.NoCollision
	}
	next := s.Snake.GetHead().Add(resolveDirection(s).ToPoint())
	return manager.NewCollisionManager(s.Grid()).CheckCollision(next, s.Snake)
}

// Step advances the simulation by one tick. Finished games and states without
// a snake are returned unchanged.
func Step(s GameState) GameState {
	if s.GameOver || s.Snake.Len() == 0 {
		return s
	}

	dir := resolveDirection(s)
	newHead := s.Snake.GetHead().Add(dir.ToPoint())

	collisionMgr := manager.NewCollisionManager(s.Grid())
	if collisionMgr.CheckCollision(newHead, s.Snake) != types.NoCollision {
		s.Snake = s.Snake.Clone()
		s.Direction = dir
		s.GameOver = true
		return s
	}

	eats := collisionMgr.IsFoodCollision(newHead, s.Food, s.HasFood)

	next := s
	next.Direction = dir
	next.Snake = s.Snake.Move(newHead, eats)
	if eats {
		next.Food, next.HasFood = manager.PlaceFood(next.Snake, s.Grid(), s.Rand)
		next.Score = s.Score + 1
	}
	return next
}

// Equal compares every field except Rand, which is a function and has no
// meaningful equality.
func (s GameState) Equal(other GameState) bool {
	if s.GridSize != other.GridSize ||
		s.Direction != other.Direction ||
		s.QueuedDirection != other.QueuedDirection ||
		s.HasFood != other.HasFood ||
		s.Score != other.Score ||
		s.GameOver != other.GameOver {
		return false
	}
	if s.HasFood && s.Food != other.Food {
		return false
	}
	if len(s.Snake) != len(other.Snake) {
		return false
	}
	for i := range s.Snake {
		if s.Snake[i] != other.Snake[i] {
			return false
		}
	}
	return true
}
