package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

type FoodManager struct {
	grid types.Grid
}

func NewFoodManager(grid types.Grid) *FoodManager {
	return &FoodManager{grid: grid}
}

// GenerateFood picks a free cell for the given snake. The bool is false when
// the snake covers the whole grid.
func (fm *FoodManager) GenerateFood(snake entity.Snake, rng types.RandomSource) (types.Point, bool) {
	return PlaceFood(snake, fm.grid, rng)
}

// OpenCells lists every cell not covered by the snake in row-major order.
func (fm *FoodManager) OpenCells(snake entity.Snake) []types.Point {
	occupied := make(map[types.Point]struct{}, len(snake))
	for _, p := range snake {
		occupied[p] = struct{}{}
	}

	open := make([]types.Point, 0, fm.grid.Cells()-len(occupied))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, taken := occupied[p]; !taken {
				open = append(open, p)
			}
		}
	}
	return open
}

// PlaceFood selects a cell uniformly among the open cells of grid, indexing
// the row-major list with floor(rng() * len(open)). For a fixed rng sequence
// the result is deterministic.
func PlaceFood(snake entity.Snake, grid types.Grid, rng types.RandomSource) (types.Point, bool) {
	open := NewFoodManager(grid).OpenCells(snake)
	if len(open) == 0 {
		return types.Point{}, false
	}

	idx := int(rng() * float64(len(open)))
	// rng is expected in [0,1); keep out-of-range values on the list
	if idx < 0 {
		idx = 0
	}
	if idx >= len(open) {
		idx = len(open) - 1
	}
	return open[idx], true
}
