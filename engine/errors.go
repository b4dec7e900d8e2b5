package engine

import (
	"errors"

	"github.com/lox/holdem-rl-engine/internal/seat"
)

// ErrInvalidAction is re-exported from the seat package so callers only
// need to import engine to errors.Is against it.
var ErrInvalidAction = seat.ErrInvalidAction

var (
	// ErrSeatOccupied is returned by AddPlayer for a seat that already
	// holds a player.
	ErrSeatOccupied = errors.New("engine: seat occupied")
	// ErrDuplicatePlayer is returned by RemovePlayer for a seat that is
	// already empty. AddPlayer reports a taken seat with ErrSeatOccupied.
	ErrDuplicatePlayer = errors.New("engine: duplicate player")
	// ErrAgentExists is returned by AddPlayer when a second seat tries to
	// register as the learning agent.
	ErrAgentExists = errors.New("engine: agent already registered")
	// ErrHandNotPlayable is returned by Reset when fewer than two seats
	// have chips to play, and by Step when no seat is to act, such as
	// before the first Reset.
	ErrHandNotPlayable = errors.New("engine: hand not playable")
	// ErrShowdownAlreadyResolved is returned by Step after a terminal step
	// without an intervening Reset.
	ErrShowdownAlreadyResolved = errors.New("engine: showdown already resolved, call Reset")
)
