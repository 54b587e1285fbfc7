// Package session drives the simulation for an interactive player: it owns
// the tick clock, pause and restart, and forwards direction intents to the
// game core. Everything runs on the caller's goroutine.
package session

import (
	"fmt"
	"time"

	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"
	"gridsnake/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

// Overlay messages shown over the board.
const (
	OverlayPaused   = "Paused"
	OverlayGameOver = "Game over. Press R or Restart."
)

var collisionWording = map[types.CollisionType]string{
	types.WallCollision: "hit the wall",
	types.SelfCollision: "hit yourself",
}

// GameOverText words the game-over overlay for the collision that ended the game.
func GameOverText(hit types.CollisionType) string {
	if w, ok := collisionWording[hit]; ok {
		return fmt.Sprintf("Game over: %s. Press R or Restart.", w)
	}
	return OverlayGameOver
}

type Session struct {
	cfg    Config
	rng    *rand.Rand
	state  game.GameState
	clock  *Clock
	scores *manager.ScoreManager

	gameID    string
	startTime time.Time
	ticks     int
	lastHit   types.CollisionType
	log       *logrus.Entry
}

// New validates cfg and starts the first game. A zero Seed is replaced by a
// time based one.
func New(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid session config")
	}
	if cfg.Seed == 0 {
		cfg.Seed = timeSeed()
	}

	s := &Session{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		clock:  NewClock(cfg.TickInterval),
		scores: manager.NewScoreManager(),
	}
	s.newGame()
	return s, nil
}

func (s *Session) newGame() {
	s.gameID = uuid.New().String()
	s.startTime = time.Now()
	s.ticks = 0
	s.lastHit = types.NoCollision
	s.state = game.Initialize(s.cfg.GridSize, s.rng.Float64)
	s.clock.Reset()
	s.log = logger.Log.WithField("game_id", s.gameID)

	s.log.WithFields(logrus.Fields{
		"grid": s.cfg.GridSize,
		"tick": s.cfg.TickInterval,
	}).Info("New game")
}

// Direction queues a direction label for the next tick. Input after the game
// has ended is ignored.
func (s *Session) Direction(label string) {
	if s.state.GameOver {
		return
	}
	s.state = game.QueueDirection(s.state, label)
}

// TogglePause stops or resumes the tick clock. A finished game cannot be paused.
func (s *Session) TogglePause() {
	if s.state.GameOver {
		return
	}
	if s.clock.Paused() {
		s.clock.Resume()
		s.log.Debug("Resumed")
	} else {
		s.clock.Pause()
		s.log.Debug("Paused")
	}
}

// Restart throws the current game away and starts a new one.
func (s *Session) Restart() {
	s.log.WithField("score", s.state.Score).Info("Restart")
	s.newGame()
}

// Advance feeds dt to the clock and steps the game when a tick is due. It
// reports whether the state changed.
func (s *Session) Advance(dt time.Duration) bool {
	if s.state.GameOver {
		return false
	}
	dropped := s.clock.Dropped()
	if !s.clock.Advance(dt) {
		return false
	}
	if skipped := s.clock.Dropped() - dropped; skipped > 0 {
		s.log.WithField("skipped", skipped).Debug("Frame stalled, ticks skipped")
	}

	prev := s.state
	s.state = game.Step(prev)
	s.ticks++

	switch {
	case s.state.GameOver:
		s.lastHit = game.CollisionAt(prev)
		s.scores.RecordGame(s.state.Score)
		s.log.WithFields(logrus.Fields{
			"score":     s.state.Score,
			"length":    s.state.Snake.Len(),
			"ticks":     s.ticks,
			"collision": s.lastHit.String(),
			"duration":  time.Since(s.startTime).Round(time.Millisecond),
		}).Info("Game over")
	case s.state.Score > prev.Score:
		entry := s.log.WithFields(logrus.Fields{
			"score":  s.state.Score,
			"length": s.state.Snake.Len(),
		})
		if s.state.HasFood {
			entry.WithField("food", s.state.Food).Debug("Food eaten")
		} else {
			entry.Info("Grid filled")
		}
	}
	return true
}

// Overlay is the text to show over the board, or "" while playing.
func (s *Session) Overlay() string {
	switch {
	case s.state.GameOver:
		return GameOverText(s.lastHit)
	case s.clock.Paused():
		return OverlayPaused
	default:
		return ""
	}
}

func (s *Session) State() game.GameState { return s.state }
func (s *Session) Paused() bool          { return s.clock.Paused() }
func (s *Session) GameID() string        { return s.gameID }
func (s *Session) Ticks() int            { return s.ticks }
func (s *Session) HighScore() int        { return s.scores.GetHighScore() }
func (s *Session) GamesPlayed() int      { return s.scores.GetGamesPlayed() }
func (s *Session) AverageScore() float64 { return s.scores.GetAverageScore() }
func (s *Session) Config() Config        { return s.cfg }

// LastCollision is what ended the current game, NoCollision while it runs.
func (s *Session) LastCollision() types.CollisionType { return s.lastHit }
