package engine

import (
	"github.com/lox/holdem-rl-engine/card"
	"github.com/lox/holdem-rl-engine/deck"
	"github.com/lox/holdem-rl-engine/internal/blinds"
	"github.com/lox/holdem-rl-engine/internal/pot"
	"github.com/lox/holdem-rl-engine/internal/seat"
)

// Reset deals a new hand: rotates the button, posts blinds, deals hole
// cards, and returns the agent's first observation plus a debug
// snapshot. It returns an error only if fewer than two seats are able
// to play.
func (e *Engine) Reset() (Observation, RenderState, error) {
	live := e.liveSeats()
	playable := 0
	for _, s := range live {
		if s.Stack > 0 {
			playable++
		}
	}
	if playable < 2 {
		return Observation{}, RenderState{}, ErrHandNotPlayable
	}

	for _, s := range e.seats {
		if !s.Empty {
			s.ResetHand()
		}
	}

	e.deck = deck.New(e.rng)
	e.pot.Reset()
	e.communityCount = 0
	for i := range e.community {
		e.community[i] = card.NoCard
	}
	e.deadCards = e.deadCards[:0]
	e.totalPot = 0
	e.handNumber++
	e.handID = e.handIDFor(e.handNumber)
	e.street = Preflop

	if e.buttonPos == -1 {
		e.buttonPos = e.nextLiveSeatID(-1)
	} else {
		e.buttonPos = e.nextLiveSeatID(e.buttonPos)
	}

	level := blinds.At(e.blindLevelIndex)
	e.smallBlind, e.bigBlind = level.Small, level.Big

	var sbID, bbID, firstToAct int
	if len(live) == 2 {
		// Heads-up: the button posts the small blind and acts first.
		sbID = e.buttonPos
		bbID = e.nextLiveSeatID(sbID)
		firstToAct = sbID
	} else {
		sbID = e.nextLiveSeatID(e.buttonPos)
		bbID = e.nextLiveSeatID(sbID)
		firstToAct = e.nextLiveSeatID(bbID)
	}

	for _, s := range e.seats {
		if !s.InHand {
			continue
		}
		s.Hole[0] = e.deck.DrawOne()
		s.Hole[1] = e.deck.DrawOne()
	}

	// Posting blinds runs through the same table-state update every
	// voluntary action does: no one has acted yet, so last_actor seeds
	// as the small blind itself (its own current_bet is 0, matching
	// the source's _last_player = _current_player before either post).
	e.lastActor = sbID
	e.applyBlind(e.seats[sbID], min(e.smallBlind, e.seats[sbID].MaxBet()))
	e.applyBlind(e.seats[bbID], min(e.bigBlind, e.seats[bbID].MaxBet()))

	// The big blind is a forced bet, not a raise: last_raise and
	// to_call are pinned to the big blind regardless of what the
	// generic update above computed from the two posts.
	e.lastRaise = e.bigBlind
	e.toCall = e.bigBlind
	e.toAct = firstToAct

	e.logger.Debug("hand started", "hand_id", e.handID, "button", e.buttonPos, "sb", sbID, "bb", bbID)

	if e.streetClosed() {
		e.advanceStreet()
	}

	return e.observationFor(e.agentSeat), e.render(), nil
}

// Step applies action for the seat currently to act and returns the
// agent's next observation, a reward (0 until the hand terminates),
// whether the hand has ended, and the terminal Info payload.
func (e *Engine) Step(action seat.Action) (Observation, float64, bool, Info, error) {
	if e.street == Showdown {
		return Observation{}, 0, false, Info{}, ErrShowdownAlreadyResolved
	}
	if e.toAct < 0 {
		return Observation{}, 0, false, Info{}, ErrHandNotPlayable
	}
	actor := e.seats[e.toAct]

	move, err := actor.ValidateAction(e.toCall, e.minRaise(), action)
	if err != nil {
		return Observation{}, 0, false, Info{}, err
	}

	switch move.Kind {
	case seat.Fold:
		e.applyAction(actor, move.AbsoluteBet)
		actor.InHand = false
		e.deadCards = append(e.deadCards, actor.Hole[0], actor.Hole[1])
	case seat.Raise:
		e.applyAction(actor, move.AbsoluteBet)
		for _, s := range e.seats {
			if s.InHand && !s.AllIn && s.ID != actor.ID {
				s.ActedThisRound = false
			}
		}
	case seat.Call, seat.Check:
		e.applyAction(actor, move.AbsoluteBet)
	}

	e.lastActor = actor.ID

	if e.handOverByFolds() {
		info, reward := e.resolveFoldWin()
		return e.observationFor(e.agentSeat), reward, true, info, nil
	}

	if e.streetClosed() {
		e.advanceStreet()
		if e.street == Showdown {
			info, reward := e.resolveShowdown()
			return e.observationFor(e.agentSeat), reward, true, info, nil
		}
	} else {
		e.toAct = e.nextToActID(e.toAct)
	}

	return e.observationFor(e.agentSeat), 0, false, Info{}, nil
}

// handOverByFolds reports whether only one seat remains in the hand.
func (e *Engine) handOverByFolds() bool {
	return len(e.inHandSeats()) == 1
}

// streetClosed reports whether every in-hand, non-all-in seat has
// acted and matched the current bet level — the street is over and
// ready to advance (or force a showdown if all contested seats are
// all-in).
func (e *Engine) streetClosed() bool {
	acting := 0
	for _, s := range e.seats {
		if !s.InHand || s.AllIn {
			continue
		}
		acting++
		if !s.ActedThisRound || s.CurrentBet != e.currentBetLevel {
			return false
		}
	}
	return true
}

// advanceStreet sweeps current bets into the pot ledger, deals the next
// street's community cards, and resets per-street seat state. If fewer
// than two in-hand seats can still act, it fast-forwards straight to
// showdown: with AllInEquityReward set it stops at the board as it
// stands, otherwise it deals the rest of the board first.
func (e *Engine) advanceStreet() {
	e.sweepBets()

	actingSeats := 0
	for _, s := range e.inHandSeats() {
		if !s.AllIn {
			actingSeats++
		}
	}

	if actingSeats < 2 && e.cfg.AllInEquityReward {
		e.street = Showdown
		return
	}

	for e.street != Showdown {
		switch e.street {
		case Preflop:
			e.community[0] = e.deck.DrawOne()
			e.community[1] = e.deck.DrawOne()
			e.community[2] = e.deck.DrawOne()
			e.communityCount = 3
			e.street = Flop
		case Flop:
			e.community[3] = e.deck.DrawOne()
			e.communityCount = 4
			e.street = Turn
		case Turn:
			e.community[4] = e.deck.DrawOne()
			e.communityCount = 5
			e.street = River
		case River:
			e.street = Showdown
		}
		if e.street == Showdown {
			break
		}
		if actingSeats < 2 {
			// Everyone left is all-in: run the board out without
			// stopping for action.
			continue
		}
		break
	}

	if e.street == Showdown {
		return
	}

	for _, s := range e.seats {
		if s.InHand {
			s.ActedThisRound = false
			s.CurrentBet = 0
		}
	}
	e.currentBetLevel = 0
	e.lastRaise = 0
	e.lastActor = -1
	e.toAct = e.nextToActID(e.buttonPos)
	e.toCall = 0
}

// sweepBets moves every seat's CurrentBet into the pot accountant's
// layers, recording each seat's LastSidepot.
func (e *Engine) sweepBets() {
	contributors := make([]pot.Contributor, 0, len(e.seats))
	for _, s := range e.seats {
		if s.Empty {
			continue
		}
		contributors = append(contributors, pot.Contributor{
			SeatID: s.ID, CurrentBet: s.CurrentBet, InHand: s.InHand, AllIn: s.AllIn,
		})
	}
	resolved := e.pot.Resolve(contributors)
	for _, c := range resolved {
		e.seats[c.SeatID].LastSidepot = c.LastSidepot
		e.seats[c.SeatID].CurrentBet = c.CurrentBet
	}
}

// applyAction commits absoluteBet as actor's new bet for the street and
// folds the result into the shared betting-round totals, mirroring
// _player_action in the reference env: total_pot, current_bet_level,
// to_call, and last_raise all update from every action, including a
// fold or check (whose absoluteBet equals the seat's own current bet,
// so the pot/level terms are a no-op but last_raise bookkeeping still
// runs against whoever last acted).
func (e *Engine) applyAction(actor *seat.Seat, absoluteBet int) {
	prevBet := actor.CurrentBet
	lastActedBet := prevBet
	if e.lastActor >= 0 {
		lastActedBet = e.seats[e.lastActor].CurrentBet
	}
	relative := absoluteBet - lastActedBet

	actor.DeclareAction(absoluteBet)

	e.totalPot += absoluteBet - prevBet
	e.currentBetLevel = max(e.currentBetLevel, absoluteBet)
	e.toCall = max(e.toCall, absoluteBet)
	if e.toCall > 0 {
		e.toCall = max(e.toCall, e.bigBlind)
	}
	e.lastRaise = max(e.lastRaise, relative)
}

// applyBlind is applyAction's counterpart for forced blinds: it posts
// through seat.PostBlind (which leaves acted_this_round false and
// tracks blind_paid/hand_starting_stack) rather than DeclareAction, and
// advances last_actor to the posting seat the way _pass_move_to_next_player
// does after each post in the reference env.
func (e *Engine) applyBlind(actor *seat.Seat, amount int) {
	prevBet := actor.CurrentBet
	lastActedBet := prevBet
	if e.lastActor >= 0 {
		lastActedBet = e.seats[e.lastActor].CurrentBet
	}
	relative := amount - lastActedBet

	actor.PostBlind(amount)

	e.totalPot += amount - prevBet
	e.currentBetLevel = max(e.currentBetLevel, amount)
	e.toCall = max(e.toCall, amount)
	if e.toCall > 0 {
		e.toCall = max(e.toCall, e.bigBlind)
	}
	e.lastRaise = max(e.lastRaise, relative)
	e.lastActor = actor.ID
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
