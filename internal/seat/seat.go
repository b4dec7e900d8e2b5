// Package seat models one fixed position at the table: its stack, this
// hand's per-street commitment, and the flags the betting engine reads
// to decide who acts and who's eligible for each pot layer.
package seat

import (
	"fmt"

	"github.com/lox/holdem-rl-engine/card"
)

// ActionKind is the normalized result of ValidateAction — what the
// engine should actually apply, as opposed to the raw wire action.
type ActionKind int

const (
	Check ActionKind = iota
	Call
	Raise
	Fold
)

func (k ActionKind) String() string {
	switch k {
	case Check:
		return "check"
	case Call:
		return "call"
	case Raise:
		return "raise"
	case Fold:
		return "fold"
	default:
		return "unknown"
	}
}

// Action is the wire-level action: an action id plus an absolute bet
// amount (only meaningful for Raise).
type Action struct {
	ID     ActionID
	Amount int
}

// ActionID is the raw [action_id, amount] wire encoding's first field.
type ActionID int

const (
	ActionCheck ActionID = iota
	ActionCall
	ActionRaise
	ActionFold
)

// Move is the normalized outcome of ValidateAction: what kind of action
// this is, and the absolute bet level it produces.
type Move struct {
	Kind        ActionKind
	AbsoluteBet int
}

// Seat is one position at the table.
type Seat struct {
	ID int

	Stack             int
	StartingStack     int
	HandStartingStack int

	Hole [2]card.Card

	CurrentBet  int
	LastSidepot int
	BlindPaid   int
	HandRank    int32 // set at showdown; evaluator.Rank, stored as int32 to avoid an import cycle

	Empty          bool
	SittingOut     bool
	InHand         bool
	AllIn          bool
	ActedThisRound bool

	Position string
}

// MaxBet is the most this seat could commit this street if it shoved:
// whatever it's already put in, plus its remaining stack.
func (s *Seat) MaxBet() int {
	return s.CurrentBet + s.Stack
}

// ResetHand clears all per-hand state ahead of a new deal. in_hand is
// true only for seats with chips to play.
func (s *Seat) ResetHand() {
	s.Hole = [2]card.Card{card.NoCard, card.NoCard}
	s.ActedThisRound = false
	s.AllIn = false
	s.CurrentBet = 0
	s.LastSidepot = 0
	s.BlindPaid = 0
	s.HandStartingStack = s.Stack
	s.InHand = !s.Empty && !s.SittingOut && s.Stack > 0
}

// ValidateAction normalizes a raw (action_id, amount) pair against the
// current to_call/min_raise into a Move, or returns an error describing
// why it's illegal. amount is only consulted for ActionRaise, where it
// is the player's intended *absolute* total commitment for the street.
func (s *Seat) ValidateAction(toCall, minRaise int, action Action) (Move, error) {
	toCall = min(toCall, s.MaxBet())

	switch {
	case toCall == 0:
		switch action.ID {
		case ActionRaise:
			if action.Amount < minRaise {
				return Move{}, fmt.Errorf("%w: raise %d below min-raise %d", ErrInvalidAction, action.Amount, minRaise)
			}
			if action.Amount > s.MaxBet() {
				return Move{}, fmt.Errorf("%w: raise %d exceeds max bet %d", ErrInvalidAction, action.Amount, s.MaxBet())
			}
			return Move{Kind: Raise, AbsoluteBet: action.Amount}, nil
		case ActionCheck:
			return Move{Kind: Check, AbsoluteBet: s.CurrentBet}, nil
		default:
			return Move{}, fmt.Errorf("%w: action %d illegal with nothing to call", ErrInvalidAction, action.ID)
		}
	default:
		switch action.ID {
		case ActionRaise:
			if action.Amount < minRaise {
				return Move{}, fmt.Errorf("%w: raise %d below min-raise %d", ErrInvalidAction, action.Amount, minRaise)
			}
			if action.Amount > s.MaxBet() {
				return Move{}, fmt.Errorf("%w: raise %d exceeds max bet %d", ErrInvalidAction, action.Amount, s.MaxBet())
			}
			return Move{Kind: Raise, AbsoluteBet: action.Amount}, nil
		case ActionCall:
			return Move{Kind: Call, AbsoluteBet: min(toCall, s.MaxBet())}, nil
		case ActionFold:
			return Move{Kind: Fold, AbsoluteBet: s.CurrentBet}, nil
		default:
			return Move{}, fmt.Errorf("%w: action %d illegal with %d to call", ErrInvalidAction, action.ID, toCall)
		}
	}
}

// DeclareAction commits absoluteBet as this seat's total bet for the
// street, transferring the delta from stack to current_bet.
func (s *Seat) DeclareAction(absoluteBet int) {
	s.ActedThisRound = true
	if absoluteBet == s.CurrentBet {
		return
	}
	s.Stack -= absoluteBet - s.CurrentBet
	s.CurrentBet = absoluteBet
	if s.Stack == 0 {
		s.AllIn = true
	}
}

// PostBlind commits a forced blind. Unlike DeclareAction it leaves
// ActedThisRound false, since a blind is not a voluntary action — the
// big blind keeps the option to act behind its own forced bet.
func (s *Seat) PostBlind(amount int) {
	s.DeclareAction(amount)
	s.HandStartingStack -= amount
	s.BlindPaid = amount
	s.ActedThisRound = false
}

// Refund adds chips back to the stack — winning a pot, or returning an
// uncalled raise.
func (s *Seat) Refund(amount int) {
	s.Stack += amount
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
