package game

import (
	"strings"

	"stopgame/internal/models"
)

// PlayerScore is the per-round scoring report for one player
type PlayerScore struct {
	PlayerID       string         `json:"playerId"`
	PlayerName     string         `json:"playerName"`
	RoundScore     int            `json:"roundScore"`
	CategoryScores map[string]int `json:"categoryScores"`
}

// CalculateScores computes the per-category point breakdown for every
// player. It reads but never mutates its inputs, so scoring the same round
// twice yields identical reports.
func CalculateScores(players []*models.Player, ledger models.Ledger, letter string, categories []models.Category) []PlayerScore {
	scores := make([]PlayerScore, 0, len(players))

	for _, player := range players {
		ps := PlayerScore{
			PlayerID:       player.ID,
			PlayerName:     player.Name,
			CategoryScores: make(map[string]int, len(categories)),
		}
		for _, category := range categories {
			points := scoreAnswer(player, category.ID, players, ledger, letter)
			ps.CategoryScores[category.ID] = points
			ps.RoundScore += points
		}
		scores = append(scores, ps)
	}

	return scores
}

func scoreAnswer(player *models.Player, categoryID string, players []*models.Player, ledger models.Ledger, letter string) int {
	answer := strings.TrimSpace(player.Answers[categoryID])
	if answer == "" {
		return 0
	}

	// The letter check overrides everything, accepted verdict included.
	if !strings.HasPrefix(strings.ToLower(answer), strings.ToLower(letter)) {
		return 0
	}

	entry, ok := ledger.Entry(categoryID, player.ID)
	switch {
	case ok && entry.Verdict == models.VerdictRejected:
		return 0

	case ok && entry.Verdict == models.VerdictAccepted:
		if countAccepted(players, ledger, categoryID, answer) > 1 {
			return PointsDuplicate
		}
		return PointsUnique

	default:
		// No verdict: nobody had to vote on this answer. Unique in its
		// category scores full points, otherwise the duplicate default.
		for _, other := range players {
			if other.ID != player.ID && strings.TrimSpace(other.Answers[categoryID]) != "" {
				return PointsDuplicate
			}
		}
		return PointsUnique
	}
}

// countAccepted counts players whose accepted answer in the category is
// textually identical to answer, ignoring case and surrounding space.
func countAccepted(players []*models.Player, ledger models.Ledger, categoryID, answer string) int {
	normalized := normalize(answer)
	count := 0
	for _, p := range players {
		entry, ok := ledger.Entry(categoryID, p.ID)
		if !ok || entry.Verdict != models.VerdictAccepted {
			continue
		}
		if normalize(p.Answers[categoryID]) == normalized {
			count++
		}
	}
	return count
}

func normalize(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
