package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision reports what a head moving onto pos would hit. Walls are
// checked before the body.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake entity.Snake) types.CollisionType {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}
	if cm.isSelfCollision(pos, snake) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// isSelfCollision checks pos against the body before the move. The tail
// counts as occupied even though a plain move would vacate it.
func (cm *CollisionManager) isSelfCollision(pos types.Point, snake entity.Snake) bool {
	return snake.Occupies(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point, hasFood bool) bool {
	return hasFood && pos == food
}
