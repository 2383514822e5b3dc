package game

import (
	"sort"
	"time"
)

// maxRecords bounds the history kept for the running process.
const maxRecords = 100

// GameStats keeps the finished games of the running process and derives
// average, median and best scores from them. Nothing is written to disk.
type GameStats struct {
	Games []GameRecord
}

// GameRecord is one finished game.
type GameRecord struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Cause     CollisionType
}

func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

func NewGameStats() *GameStats {
	return &GameStats{
		Games: make([]GameRecord, 0),
	}
}

// AddGame appends a record, dropping the oldest once maxRecords is reached.
func (s *GameStats) AddGame(record GameRecord) {
	if len(s.Games) >= maxRecords {
		s.Games = s.Games[1:]
	}
	s.Games = append(s.Games, record)
}

func (s *GameStats) GetGamesPlayed() int {
	return len(s.Games)
}

func (s *GameStats) GetMaxScore() int {
	maxScore := 0
	for _, game := range s.Games {
		if game.Score > maxScore {
			maxScore = game.Score
		}
	}
	return maxScore
}

func (s *GameStats) GetAverageScore() float64 {
	if len(s.Games) == 0 {
		return 0
	}

	total := 0
	for _, game := range s.Games {
		total += game.Score
	}
	return float64(total) / float64(len(s.Games))
}

func (s *GameStats) GetMedianScore() float64 {
	if len(s.Games) == 0 {
		return 0
	}

	scores := make([]int, len(s.Games))
	for i, game := range s.Games {
		scores[i] = game.Score
	}
	sort.Ints(scores)

	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

// GetAverageDuration returns the mean game length in seconds.
func (s *GameStats) GetAverageDuration() float64 {
	if len(s.Games) == 0 {
		return 0
	}

	var total time.Duration
	for _, game := range s.Games {
		total += game.Duration()
	}
	return total.Seconds() / float64(len(s.Games))
}
