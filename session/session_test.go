package session

import (
	"testing"
	"time"

	"gridsnake/game"
	"gridsnake/game/entity"
	"gridsnake/game/types"

	"github.com/pkg/errors"
)

func testConfig() Config {
	return Config{GridSize: 5, TickInterval: 100 * time.Millisecond, Seed: 7}
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := New(testConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"Default", NewConfig(), nil},
		{"Minimum grid", Config{GridSize: types.MinGridSize, TickInterval: time.Millisecond}, nil},
		{"Grid too small", Config{GridSize: 2, TickInterval: time.Millisecond}, ErrGridTooSmall},
		{"Zero grid", Config{GridSize: 0, TickInterval: time.Millisecond}, ErrGridTooSmall},
		{"Zero tick", Config{GridSize: 10}, ErrTickInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if errors.Cause(err) != tt.wantErr {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	s, err := New(Config{GridSize: 1, TickInterval: time.Second})
	if err == nil {
		t.Fatalf("New() = %v, want error", s)
	}
	if errors.Cause(err) != ErrGridTooSmall {
		t.Errorf("New() error = %v, want cause %v", err, ErrGridTooSmall)
	}
}

func TestSession_FirstGame(t *testing.T) {
	s := newTestSession(t)
	st := s.State()

	if st.GridSize != 5 || st.Snake.GetHead() != (types.Point{X: 3, Y: 2}) {
		t.Errorf("unexpected start: grid %d head %v", st.GridSize, st.Snake.GetHead())
	}
	if s.GameID() == "" {
		t.Error("GameID() is empty")
	}
	if s.Overlay() != "" {
		t.Errorf("Overlay() = %q, want empty", s.Overlay())
	}
}

func TestSession_AdvanceStepsOncePerInterval(t *testing.T) {
	s := newTestSession(t)

	if s.Advance(50 * time.Millisecond) {
		t.Error("stepped before the interval elapsed")
	}
	if !s.Advance(50 * time.Millisecond) {
		t.Fatal("expected a step once the interval elapsed")
	}
	if got := s.State().Snake.GetHead(); got != (types.Point{X: 4, Y: 2}) {
		t.Errorf("head = %v, want (4,2)", got)
	}
	if s.Ticks() != 1 {
		t.Errorf("Ticks() = %d, want 1", s.Ticks())
	}
}

func TestSession_DirectionLastWriteWins(t *testing.T) {
	s := newTestSession(t)

	s.Direction("up")
	s.Direction("sideways")
	s.Direction("down")
	s.Advance(100 * time.Millisecond)

	if got := s.State().Snake.GetHead(); got != (types.Point{X: 3, Y: 3}) {
		t.Errorf("head = %v, want (3,3)", got)
	}
}

func TestSession_Pause(t *testing.T) {
	s := newTestSession(t)

	s.TogglePause()
	if !s.Paused() || s.Overlay() != OverlayPaused {
		t.Fatalf("Paused() = %v, Overlay() = %q", s.Paused(), s.Overlay())
	}
	if s.Advance(time.Second) {
		t.Error("stepped while paused")
	}

	// direction input is still accepted while paused
	s.Direction("up")
	s.TogglePause()
	if s.Paused() {
		t.Fatal("still paused after second toggle")
	}
	s.Advance(100 * time.Millisecond)
	if got := s.State().Snake.GetHead(); got != (types.Point{X: 3, Y: 1}) {
		t.Errorf("head = %v, want (3,1)", got)
	}
}

// runIntoWall drives the starting snake right until it leaves the 5x5 grid.
func runIntoWall(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; i < 5 && !s.State().GameOver; i++ {
		s.Advance(100 * time.Millisecond)
	}
	if !s.State().GameOver {
		t.Fatal("expected game over after hitting the right wall")
	}
}

func TestSession_GameOver(t *testing.T) {
	s := newTestSession(t)
	runIntoWall(t, s)

	final := s.State()
	if want := "Game over: hit the wall. Press R or Restart."; s.Overlay() != want {
		t.Errorf("Overlay() = %q, want %q", s.Overlay(), want)
	}
	if s.LastCollision() != types.WallCollision {
		t.Errorf("LastCollision() = %v, want wall", s.LastCollision())
	}
	if s.GamesPlayed() != 1 || s.HighScore() != final.Score {
		t.Errorf("GamesPlayed() = %d, HighScore() = %d, want 1, %d", s.GamesPlayed(), s.HighScore(), final.Score)
	}

	s.Direction("down")
	s.TogglePause()
	if s.Advance(time.Second) {
		t.Error("Advance() stepped a finished game")
	}
	if s.Paused() {
		t.Error("a finished game must not be pausable")
	}
	if !s.State().Equal(final) {
		t.Error("state changed after game over")
	}
	if s.GamesPlayed() != 1 {
		t.Errorf("GamesPlayed() = %d, want the game recorded once", s.GamesPlayed())
	}
}

func TestSession_GameOverOverlaySelfCollision(t *testing.T) {
	s := newTestSession(t)
	// Head at (1,1) turning right into its own tail at (2,1).
	s.state = game.GameState{
		GridSize:        5,
		Snake:           entity.Snake{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}},
		Direction:       types.Up,
		QueuedDirection: types.Right,
		Food:            types.Point{X: 4, Y: 4},
		HasFood:         true,
		Rand:            s.rng.Float64,
	}

	s.Advance(100 * time.Millisecond)

	if !s.State().GameOver {
		t.Fatal("expected game over after turning into the tail")
	}
	if s.LastCollision() != types.SelfCollision {
		t.Errorf("LastCollision() = %v, want self", s.LastCollision())
	}
	if want := "Game over: hit yourself. Press R or Restart."; s.Overlay() != want {
		t.Errorf("Overlay() = %q, want %q", s.Overlay(), want)
	}
}

func TestGameOverText(t *testing.T) {
	tests := []struct {
		hit  types.CollisionType
		want string
	}{
		{types.WallCollision, "Game over: hit the wall. Press R or Restart."},
		{types.SelfCollision, "Game over: hit yourself. Press R or Restart."},
		{types.NoCollision, OverlayGameOver},
	}

	for _, tt := range tests {
		t.Run(tt.hit.String(), func(t *testing.T) {
			if got := GameOverText(tt.hit); got != tt.want {
				t.Errorf("GameOverText(%v) = %q, want %q", tt.hit, got, tt.want)
			}
		})
	}
}

func TestNew_ZeroSeedIsTimeBased(t *testing.T) {
	s, err := New(Config{GridSize: 5, TickInterval: 100 * time.Millisecond})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if s.Config().Seed == 0 {
		t.Error("New() kept a zero seed")
	}
}

func TestSession_Restart(t *testing.T) {
	s := newTestSession(t)
	firstID := s.GameID()
	runIntoWall(t, s)
	high := s.HighScore()

	s.Restart()

	st := s.State()
	if st.GameOver || st.Score != 0 || st.Snake.Len() != types.InitialLength {
		t.Errorf("Restart() state: gameOver=%v score=%d len=%d", st.GameOver, st.Score, st.Snake.Len())
	}
	if s.GameID() == firstID {
		t.Error("Restart() kept the old game id")
	}
	if s.Paused() || s.Overlay() != "" || s.Ticks() != 0 {
		t.Errorf("Restart() left paused=%v overlay=%q ticks=%d", s.Paused(), s.Overlay(), s.Ticks())
	}
	if s.HighScore() != high || s.GamesPlayed() != 1 {
		t.Errorf("Restart() lost the score board: high=%d games=%d", s.HighScore(), s.GamesPlayed())
	}
	if s.LastCollision() != types.NoCollision {
		t.Errorf("LastCollision() = %v after restart", s.LastCollision())
	}
}

func TestSession_RestartWhilePausedUnpauses(t *testing.T) {
	s := newTestSession(t)
	s.TogglePause()
	s.Restart()

	if s.Paused() {
		t.Error("Restart() kept the pause")
	}
	if !s.Advance(100 * time.Millisecond) {
		t.Error("expected a step after restart")
	}
}

func TestSession_SameSeedSameGames(t *testing.T) {
	a, b := newTestSession(t), newTestSession(t)
	inputs := map[int]string{1: "down", 3: "left", 5: "up"}

	for tick := 0; tick < 8; tick++ {
		if l, ok := inputs[tick]; ok {
			a.Direction(l)
			b.Direction(l)
		}
		a.Advance(100 * time.Millisecond)
		b.Advance(100 * time.Millisecond)
		if !a.State().Equal(b.State()) {
			t.Fatalf("sessions diverged at tick %d", tick)
		}
	}
}
