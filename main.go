package main

import (
	"flag"
	"time"

	"gridsnake/game/types"
	"gridsnake/logger"
	"gridsnake/session"
	"gridsnake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

func main() {
	gridSize := flag.Int("grid", types.DefaultGridSize, "Grid size in cells (minimum 3)")
	cellSize := flag.Int("cell", ui.DefaultCellSize, "Cell size in pixels")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 for random)")
	flag.Parse()

	cfg := session.NewConfig()
	cfg.GridSize = *gridSize
	if *seed != 0 {
		cfg.Seed = *seed
		logger.Log.Infof("Using explicit seed: %d", cfg.Seed)
	} else {
		logger.Log.Infof("Using random seed: %d", cfg.Seed)
	}

	sess, err := session.New(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to start: ", err)
	}

	layout := ui.NewLayout(int32(cfg.GridSize), int32(*cellSize))
	rl.InitWindow(layout.Width, layout.Height, "Snake")
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer(layout)
	for !rl.WindowShouldClose() {
		for _, action := range ui.PollActions(layout) {
			ui.Apply(sess, action)
		}

		frame := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		sess.Advance(frame)

		renderer.Draw(sess)
	}

	logger.Log.WithFields(logrus.Fields{
		"games": sess.GamesPlayed(),
		"best":  sess.HighScore(),
		"avg":   sess.AverageScore(),
	}).Info("Bye")
}
