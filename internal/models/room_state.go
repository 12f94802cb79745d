package models

// RoomState represents the current lifecycle state of a room
type RoomState string

const (
	StateWaiting RoomState = "waiting"
	StatePlaying RoomState = "playing"
	StateVoting  RoomState = "voting"
	StateResults RoomState = "results"
)
