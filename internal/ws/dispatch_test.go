package ws

import (
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stopgame/internal/events"
	"stopgame/internal/session"
	"stopgame/internal/store"
)

// newTestHub wires a hub and coordinator over a fresh registry, with a
// client registered but no real websocket behind it.
func newTestHub(t *testing.T) (*Hub, *store.RoomStore, *Client) {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	s := store.NewRoomStore()
	hub := NewHub(s, logger)
	hub.SetCoordinator(session.NewCoordinator(s, hub, logger))

	client := newClient("p1", hub, nil)
	hub.mu.Lock()
	hub.clients[client.ID] = client
	hub.mu.Unlock()
	return hub, s, client
}

// receive pops the next queued event for the client, failing when none is there
func receive(t *testing.T, c *Client) outbound {
	t.Helper()
	select {
	case msg := <-c.send:
		return msg
	default:
		t.Fatal("no event queued for client")
		return outbound{}
	}
}

func raw(t *testing.T, v any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestHandleCreateRoom(t *testing.T) {
	hub, s, client := newTestHub(t)

	err := hub.handle(client, evCreateRoom, raw(t, map[string]string{"playerName": "Ana"}))
	require.NoError(t, err)

	msg := receive(t, client)
	assert.Equal(t, events.RoomCreated, msg.Event)

	created := msg.Data.(events.RoomCreatedPayload)
	room, err := s.Get(created.RoomID)
	require.NoError(t, err)
	room.RLock()
	assert.Equal(t, "p1", room.HostID)
	room.RUnlock()
}

func TestHandleCreateRoomRequiresName(t *testing.T) {
	hub, _, client := newTestHub(t)

	err := hub.handle(client, evCreateRoom, raw(t, map[string]string{"playerName": "   "}))
	assert.Error(t, err)
}

func TestHandleJoinRoomNormalizesCode(t *testing.T) {
	hub, s, client := newTestHub(t)

	err := hub.handle(client, evJoinRoom, raw(t, map[string]string{
		"roomId":     "  abc123 ",
		"playerName": "Ana",
	}))
	require.NoError(t, err)

	_, err = s.Get("ABC123")
	assert.NoError(t, err, "codes are upper-cased and trimmed before lookup")
}

func TestHandleVoteRejectsUnknownVoteValue(t *testing.T) {
	hub, _, client := newTestHub(t)

	err := hub.handle(client, evVoteWord, raw(t, map[string]string{
		"category": "animal",
		"playerId": "p2",
		"vote":     "maybe",
	}))
	assert.Error(t, err)
}

func TestHandleRoomEventsWithoutRoomAreNoOps(t *testing.T) {
	hub, _, client := newTestHub(t)

	assert.NoError(t, hub.handle(client, evStartRound, nil))
	assert.NoError(t, hub.handle(client, evStopPressed, nil))
	select {
	case msg := <-client.send:
		t.Fatalf("unexpected event %q for a client outside any room", msg.Event)
	default:
	}
}

func TestHandleMalformedPayload(t *testing.T) {
	hub, _, client := newTestHub(t)

	err := hub.handle(client, evCreateRoom, json.RawMessage(`{"playerName":`))
	assert.Error(t, err)
}

func TestDispatchSendsErrorToSender(t *testing.T) {
	hub, _, client := newTestHub(t)

	hub.dispatch(client, "noSuchEvent", nil)

	msg := receive(t, client)
	assert.Equal(t, events.Error, msg.Event)
	payload := msg.Data.(events.ErrorPayload)
	assert.Contains(t, payload.Message, "noSuchEvent")
}
