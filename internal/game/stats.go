package game

import (
	"strings"

	"stopgame/internal/models"
)

// RoomStats summarizes a room's players for the room listing
type RoomStats struct {
	TotalPlayers     int     `json:"totalPlayers"`
	AverageScore     float64 `json:"averageScore"`
	HighestScore     int     `json:"highestScore"`
	CompletedAnswers int     `json:"completedAnswers"`
}

// Stats aggregates score and answer-completion numbers over a room's players
func Stats(players []*models.Player) RoomStats {
	stats := RoomStats{TotalPlayers: len(players)}
	total := 0
	for _, p := range players {
		total += p.Score
		if p.Score > stats.HighestScore {
			stats.HighestScore = p.Score
		}
		for _, answer := range p.Answers {
			if strings.TrimSpace(answer) != "" {
				stats.CompletedAnswers++
			}
		}
	}
	if len(players) > 0 {
		stats.AverageScore = float64(total) / float64(len(players))
	}
	return stats
}
