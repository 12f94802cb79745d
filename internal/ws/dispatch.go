package ws

import (
	"encoding/json"
	"fmt"
	"strings"

	"stopgame/internal/models"
)

// Inbound event names, matching what game clients emit
const (
	evCreateRoom       = "createRoom"
	evJoinRoom         = "joinRoom"
	evStartRound       = "startRound"
	evSubmitAnswers    = "submitAnswers"
	evStopPressed      = "stopPressed"
	evVoteWord         = "voteWord"
	evUpdateCategories = "updateCategories"
	evChatMessage      = "chatMessage"
)

// dispatch routes one inbound envelope. Failures go back to the sender as
// an error event; they never take the connection down.
func (h *Hub) dispatch(c *Client, event string, data json.RawMessage) {
	if err := h.handle(c, event, data); err != nil {
		h.logger.Warn("request failed", "client", c.ID, "event", event, "error", err)
		h.sendError(c, err.Error())
	}
}

func (h *Hub) handle(c *Client, event string, data json.RawMessage) error {
	switch event {
	case evCreateRoom:
		var req struct {
			PlayerName string `json:"playerName"`
		}
		if err := unmarshal(data, &req); err != nil {
			return err
		}
		name := strings.TrimSpace(req.PlayerName)
		if name == "" {
			return fmt.Errorf("player name is required")
		}
		h.coordinator.CreateRoom(c.ID, name)
		return nil

	case evJoinRoom:
		var req struct {
			RoomID     string `json:"roomId"`
			PlayerName string `json:"playerName"`
		}
		if err := unmarshal(data, &req); err != nil {
			return err
		}
		code := strings.ToUpper(strings.TrimSpace(req.RoomID))
		name := strings.TrimSpace(req.PlayerName)
		if code == "" || name == "" {
			return fmt.Errorf("room code and player name are required")
		}
		return h.coordinator.JoinRoom(code, c.ID, name)

	case evStartRound:
		code, ok := h.coordinator.RoomCodeFor(c.ID)
		if !ok {
			return nil
		}
		return h.coordinator.StartRound(code, c.ID)

	case evSubmitAnswers:
		var req struct {
			Answers map[string]string `json:"answers"`
		}
		if err := unmarshal(data, &req); err != nil {
			return err
		}
		code, ok := h.coordinator.RoomCodeFor(c.ID)
		if !ok {
			return nil
		}
		return h.coordinator.SubmitAnswers(code, c.ID, req.Answers)

	case evStopPressed:
		code, ok := h.coordinator.RoomCodeFor(c.ID)
		if !ok {
			return nil
		}
		return h.coordinator.StopPressed(code, c.ID)

	case evVoteWord:
		var req struct {
			Category string      `json:"category"`
			PlayerID string      `json:"playerId"`
			Vote     models.Vote `json:"vote"`
		}
		if err := unmarshal(data, &req); err != nil {
			return err
		}
		if req.Vote != models.VoteAccept && req.Vote != models.VoteReject {
			return fmt.Errorf("vote must be accept or reject")
		}
		code, ok := h.coordinator.RoomCodeFor(c.ID)
		if !ok {
			return nil
		}
		return h.coordinator.CastVote(code, c.ID, req.Category, req.PlayerID, req.Vote)

	case evUpdateCategories:
		var req struct {
			Categories []models.Category `json:"categories"`
		}
		if err := unmarshal(data, &req); err != nil {
			return err
		}
		if len(req.Categories) == 0 {
			return fmt.Errorf("at least one category is required")
		}
		code, ok := h.coordinator.RoomCodeFor(c.ID)
		if !ok {
			return nil
		}
		return h.coordinator.UpdateCategories(code, c.ID, req.Categories)

	case evChatMessage:
		var req struct {
			Message string `json:"message"`
		}
		if err := unmarshal(data, &req); err != nil {
			return err
		}
		if strings.TrimSpace(req.Message) == "" {
			return nil
		}
		code, ok := h.coordinator.RoomCodeFor(c.ID)
		if !ok {
			return nil
		}
		return h.coordinator.Chat(code, c.ID, req.Message)

	default:
		return fmt.Errorf("unknown event %q", event)
	}
}

func unmarshal(data json.RawMessage, v any) error {
	if len(data) == 0 {
		return fmt.Errorf("missing payload")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("malformed payload: %w", err)
	}
	return nil
}
