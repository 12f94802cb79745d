package game

import "errors"

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomFull         = errors.New("room is full")
	ErrDuplicateName    = errors.New("a player with that name is already in the room")
	ErrPlayerNotFound   = errors.New("player not found in this room")
	ErrNotHost          = errors.New("only the room host can do that")
	ErrInvalidTarget    = errors.New("no such answer to vote on")
	ErrVotingNotStarted = errors.New("voting has not started")
	ErrRoundInProgress  = errors.New("a round is in progress")
)
