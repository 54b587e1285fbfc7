package manager

// maxHistory bounds the score history kept for a session.
const maxHistory = 50

// ScoreManager keeps the high score and recent results of the games played in
// this process. Nothing is written to disk.
type ScoreManager struct {
	highScore    int
	scoreHistory []int
	gamesPlayed  int
}

func NewScoreManager() *ScoreManager {
	return &ScoreManager{
		scoreHistory: make([]int, 0),
	}
}

// RecordGame adds a finished game's score.
func (sm *ScoreManager) RecordGame(score int) {
	sm.gamesPlayed++
	if score > sm.highScore {
		sm.highScore = score
	}
	if len(sm.scoreHistory) >= maxHistory {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, score)
}

func (sm *ScoreManager) GetHighScore() int {
	return sm.highScore
}

func (sm *ScoreManager) GetGamesPlayed() int {
	return sm.gamesPlayed
}

// GetScoreHistory returns a copy of the most recent scores, oldest first.
func (sm *ScoreManager) GetScoreHistory() []int {
	out := make([]int, len(sm.scoreHistory))
	copy(out, sm.scoreHistory)
	return out
}

// GetAverageScore averages the scores still in the history.
func (sm *ScoreManager) GetAverageScore() float64 {
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	sum := 0
	for _, score := range sm.scoreHistory {
		sum += score
	}
	return float64(sum) / float64(len(sm.scoreHistory))
}
