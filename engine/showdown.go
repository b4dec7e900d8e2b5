package engine

import (
	"sort"

	"github.com/lox/holdem-rl-engine/card"
	"github.com/lox/holdem-rl-engine/evaluator"
	"github.com/lox/holdem-rl-engine/internal/seat"
)

// resolveFoldWin awards the entire pot to the lone surviving seat and
// returns the agent's terminal Info and reward.
func (e *Engine) resolveFoldWin() (Info, float64) {
	e.sweepBets()

	var winner *seat.Seat
	for _, s := range e.seats {
		if s.InHand {
			winner = s
			break
		}
	}
	total := 0
	for _, l := range e.pot.Layers {
		total += l
	}
	winner.Refund(total)
	e.pot.AssertConserved(total)
	e.street = Showdown

	return e.settle()
}

// resolveShowdown evaluates every in-hand seat's best hand and splits
// each pot layer among its eligible seats, or runs the equity-reward
// shortcut when configured and the board wasn't fully dealt before all
// action stopped.
func (e *Engine) resolveShowdown() (Info, float64) {
	contenders := e.orderFromButton(e.inHandSeats())

	if len(contenders) == 1 {
		contenders[0].Refund(e.pot.Layers[len(e.pot.Layers)-1])
		return e.settle()
	}

	if e.cfg.AllInEquityReward && e.communityCount < 5 {
		e.distributeByEquity(contenders)
		return e.settle()
	}

	e.distributeByShowdown(contenders)
	return e.settle()
}

// orderFromButton reorders seats starting at the next live seat clockwise
// from the button, so that index 0 of any pot-split result is always the
// earliest-to-act seat rather than whichever has the lowest seat id.
// Odd-chip remainders go to that seat, per the table-stakes convention of
// awarding the extra chip to the first player left of the button.
func (e *Engine) orderFromButton(seats []*seat.Seat) []*seat.Seat {
	start := e.nextLiveSeatID(e.buttonPos)
	n := len(e.seats)
	ordered := make([]*seat.Seat, len(seats))
	copy(ordered, seats)
	sort.Slice(ordered, func(i, j int) bool {
		di := (ordered[i].ID - start + n) % n
		dj := (ordered[j].ID - start + n) % n
		return di < dj
	})
	return ordered
}

// distributeByShowdown evaluates contenders' best 7-card hand and splits
// each layer among the best-ranked seats still eligible for it (the
// seats whose LastSidepot reaches at least that layer).
func (e *Engine) distributeByShowdown(contenders []*seat.Seat) {
	board := e.community[:e.communityCount]
	for _, s := range contenders {
		s.HandRank = int32(e.evaluator.Rank([2]card.Card{s.Hole[0], s.Hole[1]}, board))
	}

	for layer, amount := range e.pot.Layers {
		if amount == 0 {
			continue
		}
		var eligible []*seat.Seat
		for _, s := range contenders {
			if s.LastSidepot >= layer {
				eligible = append(eligible, s)
			}
		}
		if len(eligible) == 0 {
			continue
		}
		best := evaluator.Rank(eligible[0].HandRank)
		for _, s := range eligible[1:] {
			if r := evaluator.Rank(s.HandRank); r.Compare(best) > 0 {
				best = r
			}
		}
		var winners []*seat.Seat
		for _, s := range eligible {
			if evaluator.Rank(s.HandRank).Compare(best) == 0 {
				winners = append(winners, s)
			}
		}
		share := amount / len(winners)
		remainder := amount - share*len(winners)
		for i, s := range winners {
			take := share
			if i == 0 {
				take += remainder
			}
			s.Refund(take)
		}
	}
}

// distributeByEquity splits each layer proportionally to each
// contender's Monte-Carlo equity against the field, rather than dealing
// out the rest of the board — the all_in_equity_reward shortcut.
func (e *Engine) distributeByEquity(contenders []*seat.Seat) {
	board := e.community[:e.communityCount]
	remaining := e.deck.Remaining()

	hands := make([][2]card.Card, len(contenders))
	for i, s := range contenders {
		hands[i] = [2]card.Card{s.Hole[0], s.Hole[1]}
	}
	equities := e.estimator.EquitiesFor(hands, board, remaining, e.deadCards)

	for layer, amount := range e.pot.Layers {
		if amount == 0 {
			continue
		}
		var eligible []*seat.Seat
		var eligibleEq []float64
		for i, s := range contenders {
			if s.LastSidepot >= layer {
				eligible = append(eligible, s)
				eligibleEq = append(eligibleEq, equities[i])
			}
		}
		if len(eligible) == 0 {
			continue
		}
		eqSum := 0.0
		for _, eq := range eligibleEq {
			eqSum += eq
		}
		if eqSum == 0 {
			share := amount / len(eligible)
			for _, s := range eligible {
				s.Refund(share)
			}
			continue
		}
		distributed := 0
		for i, s := range eligible {
			take := int(float64(amount) * eligibleEq[i] / eqSum)
			distributed += take
			s.Refund(take)
		}
		if rem := amount - distributed; rem > 0 {
			eligible[0].Refund(rem)
		}
	}
}

// settle computes the agent's terminal Info and reward now that chips
// have been refunded, and clears to_act.
func (e *Engine) settle() (Info, float64) {
	e.toAct = -1
	e.toCall = 0

	if !e.hasAgent || e.agentSeat < 0 {
		return Info{}, 0
	}
	agent := e.seats[e.agentSeat]
	moneyWon := agent.Stack - (agent.HandStartingStack + agent.BlindPaid)
	reward := float64(agent.Stack-agent.HandStartingStack) / float64(e.bigBlind)
	return Info{MoneyWon: moneyWon}, reward
}

// observationFor builds the equity-bearing Observation for seatID. It
// returns the zero Observation if no agent is seated, and only the stack
// and total pot (Equity 0) if seatID has folded.
func (e *Engine) observationFor(seatID int) Observation {
	if !e.hasAgent || seatID < 0 {
		return Observation{}
	}
	s := e.seats[seatID]
	if !s.InHand {
		return Observation{Stack: s.Stack, TotalPot: e.totalPot}
	}

	opponents := 0
	for _, o := range e.seats {
		if o.ID != s.ID && o.InHand {
			opponents++
		}
	}

	board := e.community[:e.communityCount]
	remaining := e.deck.Remaining()
	eq := 1.0
	if opponents > 0 {
		eq = e.estimator.SoloEquity([2]card.Card{s.Hole[0], s.Hole[1]}, opponents, board, remaining)
	}

	return Observation{Equity: eq, Stack: s.Stack, TotalPot: e.totalPot}
}

// render snapshots every seat and table-level field for debugging and
// test assertions. It is never exposed to the learning agent.
func (e *Engine) render() RenderState {
	seats := make([]SeatState, len(e.seats))
	for i, s := range e.seats {
		seats[i] = SeatState{
			SeatID:         s.ID,
			CurrentBet:     s.CurrentBet,
			Stack:          s.Stack,
			InHand:         s.InHand,
			ActedThisRound: s.ActedThisRound,
			AllIn:          s.AllIn,
			LastSidepot:    s.LastSidepot,
			Hole:           s.Hole,
		}
	}
	return RenderState{
		Seats:      seats,
		ButtonPos:  e.buttonPos,
		SmallBlind: e.smallBlind,
		BigBlind:   e.bigBlind,
		TotalPot:   e.totalPot,
		LastRaise:  e.lastRaise,
		MinRaise:   e.minRaise(),
		ToCall:     e.toCall,
		ToAct:      e.toAct,
		Community:  e.community,
		Street:     e.street,
		HandNumber: e.handNumber,
		HandID:     e.handID,
	}
}
