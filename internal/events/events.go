package events

import (
	"time"

	"stopgame/internal/game"
	"stopgame/internal/models"
)

// Outbound event names. They match what game clients already listen for.
const (
	RoomCreated       = "roomCreated"
	JoinedRoom        = "joinedRoom"
	RoomUpdated       = "roomUpdated"
	RoundStarted      = "roundStarted"
	TimeUpdate        = "timeUpdate"
	PlayerFinished    = "playerFinished"
	RoundEnded        = "roundEnded"
	VoteUpdated       = "voteUpdated"
	ScoresCalculated  = "scoresCalculated"
	GameForceEnded    = "gameForceEnded"
	PlayerLeft        = "playerLeft"
	CategoriesUpdated = "categoriesUpdated"
	ChatMessage       = "chatMessage"
	Error             = "error"
)

// RoomSnapshot is the roomUpdated payload: the room as broadcast to its
// members. Players are copies taken under the room lock.
type RoomSnapshot struct {
	Players []models.Player  `json:"players"`
	State   models.RoomState `json:"gameState"`
	Round   int              `json:"currentRound"`
}

// RoomCreatedPayload goes to the creating player only
type RoomCreatedPayload struct {
	RoomID string       `json:"roomId"`
	Room   RoomSnapshot `json:"room"`
}

// JoinedRoomPayload goes to the joining player only
type JoinedRoomPayload struct {
	RoomID   string       `json:"roomId"`
	PlayerID string       `json:"playerId"`
	Room     RoomSnapshot `json:"room"`
}

// RoundStartedPayload announces the drawn letter and the time budget
type RoundStartedPayload struct {
	Letter   string `json:"letter"`
	TimeLeft int    `json:"timeLeft"`
	Round    int    `json:"round"`
}

// PlayerFinishedPayload announces one player's submission
type PlayerFinishedPayload struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	AllReady   bool   `json:"allReady"`
}

// RoundEndedPayload opens voting with a snapshot of the fresh ledger
type RoundEndedPayload struct {
	VotingData models.Ledger   `json:"votingData"`
	Players    []models.Player `json:"players"`
}

// VoteUpdatedPayload carries the current tally for one answer
type VoteUpdatedPayload struct {
	Category string                 `json:"category"`
	PlayerID string                 `json:"playerId"`
	Votes    map[string]models.Vote `json:"votes"`
	Verdict  models.Verdict         `json:"result,omitempty"`
}

// ScoresPayload closes a round with the full breakdown
type ScoresPayload struct {
	Scores  []game.PlayerScore `json:"scores"`
	Players []models.Player    `json:"players"`
	Round   int                `json:"round"` // the round just completed
}

// ForceEndedPayload attributes the STOP press, for display only
type ForceEndedPayload struct {
	PlayerName string `json:"playerName"`
}

// PlayerLeftPayload announces a departure to the survivors
type PlayerLeftPayload struct {
	PlayerID         string          `json:"playerId"`
	PlayerName       string          `json:"playerName"`
	RemainingPlayers []models.Player `json:"remainingPlayers"`
}

// CategoriesPayload announces the host's new category set
type CategoriesPayload struct {
	Categories []models.Category `json:"categories"`
}

// ChatPayload is a relayed chat line
type ChatPayload struct {
	Message    string    `json:"message"`
	PlayerID   string    `json:"playerId"`
	PlayerName string    `json:"playerName"`
	Timestamp  time.Time `json:"timestamp"`
}

// ErrorPayload goes to the failing requester only
type ErrorPayload struct {
	Message string `json:"message"`
}
