package models

// Player represents a player in a room. A player belongs to exactly one
// room and lives as long as their connection does.
type Player struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Score   int               `json:"score"`
	Answers map[string]string `json:"answers"` // categoryID -> answer text
	Ready   bool              `json:"isReady"`
}

// NewPlayer creates a player with an empty answer sheet
func NewPlayer(id, name string) *Player {
	return &Player{
		ID:      id,
		Name:    name,
		Answers: make(map[string]string),
	}
}
