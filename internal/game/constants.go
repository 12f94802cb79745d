package game

const (
	// MaxPlayers is the room capacity
	MaxPlayers = 8

	// RoundTime is the starting time budget for a round, in seconds
	RoundTime = 60

	// RoomCodeLength is the length of generated room codes
	RoomCodeLength = 6

	// PointsUnique is awarded for an accepted answer nobody else matched
	PointsUnique = 10

	// PointsDuplicate is awarded for an accepted answer another player also gave
	PointsDuplicate = 5
)

// Letters is the round draw alphabet. H, K, W, Y and Z are left out:
// too few words start with them and rounds go dead.
var Letters = []string{
	"A", "B", "C", "D", "E", "F", "G", "I", "J", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "X",
}
