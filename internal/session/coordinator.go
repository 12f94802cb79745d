package session

import (
	"errors"
	"log/slog"
	"maps"
	"slices"
	"time"

	"stopgame/internal/events"
	"stopgame/internal/game"
	"stopgame/internal/models"
	"stopgame/internal/store"
)

// Broadcaster delivers outbound events: to every member of a room, or to
// one player's connection. Implementations must not block the caller.
type Broadcaster interface {
	ToRoom(code, event string, payload any)
	ToPlayer(playerID, event string, payload any)
}

// Coordinator runs every room's lifecycle: rounds, the countdown, voting
// and scoring. All mutation happens under the room's lock; broadcast
// payloads are assembled while locked and sent after release, so a slow
// client can never stall a room.
type Coordinator struct {
	store  *store.RoomStore
	bus    Broadcaster
	logger *slog.Logger

	tickEvery time.Duration // one logical time unit of the round clock
}

// NewCoordinator creates a coordinator ticking at one second per time unit
func NewCoordinator(s *store.RoomStore, bus Broadcaster, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		store:     s,
		bus:       bus,
		logger:    logger,
		tickEvery: time.Second,
	}
}

// CreateRoom makes a fresh room with the requester as host and sole player
func (c *Coordinator) CreateRoom(playerID, playerName string) *models.Room {
	room := c.store.Create("")
	player := models.NewPlayer(playerID, playerName)

	joined, err := c.store.Join(room.Code, player)
	if err != nil {
		// A fresh room cannot be full or hold a duplicate name.
		c.logger.Error("joining freshly created room", "room", room.Code, "error", err)
		return room
	}
	c.logger.Info("room created", "room", joined.Code, "host", playerName)

	joined.RLock()
	payload := events.RoomCreatedPayload{RoomID: joined.Code, Room: snapshot(joined)}
	joined.RUnlock()

	c.bus.ToPlayer(playerID, events.RoomCreated, payload)
	return joined
}

// JoinRoom seats the player in the room with that code. An unknown code
// creates the room, so sharing a fresh code is all it takes to start one.
func (c *Coordinator) JoinRoom(code, playerID, playerName string) error {
	player := models.NewPlayer(playerID, playerName)

	room, err := c.store.Join(code, player)
	if errors.Is(err, game.ErrRoomNotFound) {
		c.store.Create(code)
		room, err = c.store.Join(code, player)
	}
	if err != nil {
		return err
	}
	c.logger.Info("player joined", "room", code, "player", playerName)

	room.RLock()
	snap := snapshot(room)
	room.RUnlock()

	c.bus.ToRoom(code, events.RoomUpdated, snap)
	c.bus.ToPlayer(playerID, events.JoinedRoom, events.JoinedRoomPayload{
		RoomID:   code,
		PlayerID: playerID,
		Room:     snap,
	})
	return nil
}

// StartRound begins a new round: host only, fresh letter, cleared answer
// sheets, full time budget, countdown running.
func (c *Coordinator) StartRound(code, playerID string) error {
	room, err := c.store.Get(code)
	if err != nil {
		return err
	}

	room.Lock()
	if room.HostID != playerID {
		room.Unlock()
		return game.ErrNotHost
	}

	// A timer from a previous round must never survive into a new one.
	room.CancelTimer()

	room.Letter = game.PickLetter()
	room.State = models.StatePlaying
	room.TimeLeft = game.RoundTime
	room.Voting = nil
	for _, p := range room.Players {
		p.Answers = make(map[string]string)
		p.Ready = false
	}

	timer := models.NewRoundTimer()
	room.SetTimer(timer)
	payload := events.RoundStartedPayload{
		Letter:   room.Letter,
		TimeLeft: room.TimeLeft,
		Round:    room.Round,
	}
	room.Unlock()

	c.logger.Info("round started", "room", code, "letter", payload.Letter, "round", payload.Round)
	c.bus.ToRoom(code, events.RoundStarted, payload)
	go c.countdown(room, timer)
	return nil
}

// SubmitAnswers records a player's full answer sheet (wholesale, not
// merged) and marks them ready. When the last player turns ready the
// round ends at once, ahead of the clock.
func (c *Coordinator) SubmitAnswers(code, playerID string, answers map[string]string) error {
	room, err := c.store.Get(code)
	if err != nil {
		return err
	}
	if answers == nil {
		answers = make(map[string]string)
	}

	room.Lock()
	if room.State != models.StatePlaying {
		// The round already ended; a late sheet must not reopen it.
		room.Unlock()
		return nil
	}
	player := room.FindPlayer(playerID)
	if player == nil {
		room.Unlock()
		return game.ErrPlayerNotFound
	}
	player.Answers = answers
	player.Ready = true

	allReady := true
	for _, p := range room.Players {
		if !p.Ready {
			allReady = false
			break
		}
	}
	finished := events.PlayerFinishedPayload{
		PlayerID:   playerID,
		PlayerName: player.Name,
		AllReady:   allReady,
	}
	var ended *events.RoundEndedPayload
	var scored *events.ScoresPayload
	if allReady {
		ended, scored = c.endRoundLocked(room)
	}
	room.Unlock()

	c.bus.ToRoom(code, events.PlayerFinished, finished)
	c.emitRoundEnd(code, ended, scored)
	return nil
}

// StopPressed lets any player slam the STOP button and end the round early
func (c *Coordinator) StopPressed(code, playerID string) error {
	room, err := c.store.Get(code)
	if err != nil {
		return err
	}

	room.Lock()
	if room.State != models.StatePlaying {
		room.Unlock()
		return nil
	}
	player := room.FindPlayer(playerID)
	if player == nil {
		room.Unlock()
		return game.ErrPlayerNotFound
	}
	name := player.Name
	ended, scored := c.endRoundLocked(room)
	room.Unlock()

	c.logger.Info("round force-ended", "room", code, "player", name)
	c.emitRoundEnd(code, ended, scored)
	c.bus.ToRoom(code, events.GameForceEnded, events.ForceEndedPayload{PlayerName: name})
	return nil
}

// CastVote records an accept/reject on another player's answer. A repeat
// vote from the same voter overwrites the earlier one. Once every entry
// that needs voting has its verdict, the round is scored and the room
// advances to results.
func (c *Coordinator) CastVote(code, voterID, categoryID, targetID string, vote models.Vote) error {
	room, err := c.store.Get(code)
	if err != nil {
		return err
	}

	room.Lock()
	if room.Voting == nil {
		room.Unlock()
		return game.ErrVotingNotStarted
	}
	if voterID == targetID {
		// Owners sit their own answer out; the quorum already excludes them.
		room.Unlock()
		return game.ErrInvalidTarget
	}
	entry, ok := room.Voting.Entry(categoryID, targetID)
	if !ok {
		room.Unlock()
		return game.ErrInvalidTarget
	}

	// Quorum tracks the room as it is now, not as it was at round start.
	game.RecordVote(entry, voterID, vote, len(room.Players)-1)
	update := events.VoteUpdatedPayload{
		Category: categoryID,
		PlayerID: targetID,
		Votes:    maps.Clone(entry.Votes),
		Verdict:  entry.Verdict,
	}

	var scored *events.ScoresPayload
	if game.AllVotesComplete(room.Voting) {
		scored = c.finishVotingLocked(room)
	}
	room.Unlock()

	c.bus.ToRoom(code, events.VoteUpdated, update)
	if scored != nil {
		c.bus.ToRoom(code, events.ScoresCalculated, *scored)
	}
	return nil
}

// UpdateCategories replaces the room's category set wholesale. Host only,
// and only between rounds: a live ledger has no defined meaning for a new
// category set.
func (c *Coordinator) UpdateCategories(code, playerID string, categories []models.Category) error {
	room, err := c.store.Get(code)
	if err != nil {
		return err
	}

	room.Lock()
	if room.HostID != playerID {
		room.Unlock()
		return game.ErrNotHost
	}
	if room.State == models.StatePlaying || room.State == models.StateVoting {
		room.Unlock()
		return game.ErrRoundInProgress
	}
	room.Categories = slices.Clone(categories)
	room.Unlock()

	c.bus.ToRoom(code, events.CategoriesUpdated, events.CategoriesPayload{Categories: categories})
	return nil
}

// Chat relays a chat line to the sender's room. No state effect.
func (c *Coordinator) Chat(code, playerID, message string) error {
	room, err := c.store.Get(code)
	if err != nil {
		return err
	}

	room.RLock()
	player := room.FindPlayer(playerID)
	var name string
	if player != nil {
		name = player.Name
	}
	room.RUnlock()
	if player == nil {
		return game.ErrPlayerNotFound
	}

	c.bus.ToRoom(code, events.ChatMessage, events.ChatPayload{
		Message:    message,
		PlayerID:   playerID,
		PlayerName: name,
		Timestamp:  time.Now(),
	})
	return nil
}

// Disconnect removes the player from whatever room they occupy. The last
// player out destroys the room and stops its clock. Not an error case:
// a vanished connection is ordinary player removal.
func (c *Coordinator) Disconnect(playerID string) {
	room, removed, ok := c.store.RemovePlayer(playerID)
	if !ok {
		return
	}
	if room == nil {
		c.logger.Info("room destroyed", "player", removed.Name)
		return
	}
	c.logger.Info("player left", "room", room.Code, "player", removed.Name)

	room.RLock()
	left := events.PlayerLeftPayload{
		PlayerID:         removed.ID,
		PlayerName:       removed.Name,
		RemainingPlayers: clonePlayers(room.Players),
	}
	snap := snapshot(room)
	room.RUnlock()

	c.bus.ToRoom(room.Code, events.PlayerLeft, left)
	c.bus.ToRoom(room.Code, events.RoomUpdated, snap)
}

// RoomCodeFor resolves which room a connection currently occupies
func (c *Coordinator) RoomCodeFor(playerID string) (string, bool) {
	room, ok := c.store.RoomFor(playerID)
	if !ok {
		return "", false
	}
	return room.Code, true
}

// endRoundLocked stops the clock and opens voting. When nothing needs a
// vote (nobody answered, or every answer stands alone in its category)
// the round is scored immediately, since no castVote will ever arrive to
// trigger it. Callers hold the room lock.
func (c *Coordinator) endRoundLocked(room *models.Room) (*events.RoundEndedPayload, *events.ScoresPayload) {
	room.CancelTimer()
	room.State = models.StateVoting
	room.Voting = game.PrepareLedger(room.Players, room.Categories)

	ended := &events.RoundEndedPayload{
		VotingData: room.Voting.Clone(),
		Players:    clonePlayers(room.Players),
	}
	var scored *events.ScoresPayload
	if game.AllVotesComplete(room.Voting) {
		scored = c.finishVotingLocked(room)
	}
	return ended, scored
}

// finishVotingLocked scores the round, banks the points, and advances the
// room to results. Callers hold the room lock.
func (c *Coordinator) finishVotingLocked(room *models.Room) *events.ScoresPayload {
	scores := game.CalculateScores(room.Players, room.Voting, room.Letter, room.Categories)
	for _, s := range scores {
		if p := room.FindPlayer(s.PlayerID); p != nil {
			p.Score += s.RoundScore
		}
	}

	completed := room.Round
	room.Round++
	room.State = models.StateResults
	room.Voting = nil

	c.logger.Info("round scored", "room", room.Code, "round", completed)
	return &events.ScoresPayload{
		Scores:  scores,
		Players: clonePlayers(room.Players),
		Round:   completed,
	}
}

func (c *Coordinator) emitRoundEnd(code string, ended *events.RoundEndedPayload, scored *events.ScoresPayload) {
	if ended != nil {
		c.bus.ToRoom(code, events.RoundEnded, *ended)
	}
	if scored != nil {
		c.bus.ToRoom(code, events.ScoresCalculated, *scored)
	}
}

// snapshot copies the broadcastable room state (must be called with lock held)
func snapshot(room *models.Room) events.RoomSnapshot {
	return events.RoomSnapshot{
		Players: clonePlayers(room.Players),
		State:   room.State,
		Round:   room.Round,
	}
}

// clonePlayers deep-copies players so payloads can outlive the room lock
func clonePlayers(players []*models.Player) []models.Player {
	out := make([]models.Player, 0, len(players))
	for _, p := range players {
		cp := *p
		cp.Answers = maps.Clone(p.Answers)
		out = append(out, cp)
	}
	return out
}
