package main

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-rl-engine/engine"
	"github.com/lox/holdem-rl-engine/internal/seat"
)

// strategy picks an action for a seat given the engine's current debug
// snapshot. rs carries every seat's hole cards; none of the strategies
// below reads them.
type strategy func(rng *rand.Rand, e *engine.Engine, rs engine.RenderState, seatID int) seat.Action

func foldStrategy(_ *rand.Rand, e *engine.Engine, _ engine.RenderState, _ int) seat.Action {
	if e.ToCall() == 0 {
		return seat.Action{ID: seat.ActionCheck}
	}
	return seat.Action{ID: seat.ActionFold}
}

func callStrategy(_ *rand.Rand, e *engine.Engine, _ engine.RenderState, _ int) seat.Action {
	if e.ToCall() == 0 {
		return seat.Action{ID: seat.ActionCheck}
	}
	return seat.Action{ID: seat.ActionCall}
}

func randStrategy(rng *rand.Rand, e *engine.Engine, rs engine.RenderState, seatID int) seat.Action {
	maxBet := rs.Seats[seatID].CurrentBet + rs.Seats[seatID].Stack
	minRaise := e.MinRaise()
	toCall := e.ToCall()

	roll := rng.IntN(10)
	switch {
	case roll < 2 && minRaise <= maxBet:
		return seat.Action{ID: seat.ActionRaise, Amount: minRaise}
	case toCall == 0:
		return seat.Action{ID: seat.ActionCheck}
	case roll < 7:
		return seat.Action{ID: seat.ActionCall}
	default:
		return seat.Action{ID: seat.ActionFold}
	}
}

func maniacStrategy(rng *rand.Rand, e *engine.Engine, rs engine.RenderState, seatID int) seat.Action {
	maxBet := rs.Seats[seatID].CurrentBet + rs.Seats[seatID].Stack
	minRaise := e.MinRaise()

	if minRaise <= maxBet && rng.IntN(10) < 7 {
		span := maxBet - minRaise
		amount := minRaise
		if span > 0 {
			amount += rng.IntN(span + 1)
		}
		return seat.Action{ID: seat.ActionRaise, Amount: amount}
	}
	if e.ToCall() == 0 {
		return seat.Action{ID: seat.ActionCheck}
	}
	return seat.Action{ID: seat.ActionCall}
}

func strategyFor(name string, logger *log.Logger) strategy {
	switch name {
	case "fold":
		return foldStrategy
	case "call":
		return callStrategy
	case "rand":
		return randStrategy
	case "maniac":
		return maniacStrategy
	default:
		logger.Fatal("unknown opponent type", "type", name)
		return nil
	}
}
