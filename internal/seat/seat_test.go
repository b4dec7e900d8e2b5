package seat

import (
	"errors"
	"testing"
)

func newSeat(stack int) *Seat {
	s := &Seat{ID: 0, Stack: stack, StartingStack: stack}
	s.ResetHand()
	return s
}

func TestResetHandClearsState(t *testing.T) {
	s := newSeat(1000)
	if !s.InHand {
		t.Errorf("InHand = false, want true for a seated non-empty seat with chips")
	}
	if s.HandStartingStack != 1000 {
		t.Errorf("HandStartingStack = %d, want 1000", s.HandStartingStack)
	}
	if s.Hole[0] != -1 || s.Hole[1] != -1 {
		t.Errorf("Hole = %v, want both NoCard", s.Hole)
	}
}

func TestResetHandBustedSeatNotInHand(t *testing.T) {
	s := newSeat(0)
	if s.InHand {
		t.Errorf("InHand = true, want false for a busted seat")
	}
}

func TestPostBlindDecrementsHandStartingStack(t *testing.T) {
	s := newSeat(2500)
	s.PostBlind(10)
	if s.Stack != 2490 {
		t.Errorf("Stack = %d, want 2490", s.Stack)
	}
	if s.CurrentBet != 10 {
		t.Errorf("CurrentBet = %d, want 10", s.CurrentBet)
	}
	if s.HandStartingStack != 2490 {
		t.Errorf("HandStartingStack = %d, want 2490", s.HandStartingStack)
	}
	if s.BlindPaid != 10 {
		t.Errorf("BlindPaid = %d, want 10", s.BlindPaid)
	}
	if s.ActedThisRound {
		t.Errorf("ActedThisRound = true after posting a blind, want false")
	}
}

func TestValidateActionCheckWhenNothingToCall(t *testing.T) {
	s := newSeat(1000)
	move, err := s.ValidateAction(0, 1, Action{ID: ActionCheck})
	if err != nil {
		t.Fatalf("ValidateAction: %v", err)
	}
	if move.Kind != Check {
		t.Errorf("Kind = %v, want Check", move.Kind)
	}
}

func TestValidateActionCallIllegalWithNothingToCall(t *testing.T) {
	s := newSeat(1000)
	if _, err := s.ValidateAction(0, 1, Action{ID: ActionCall}); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("expected ErrInvalidAction, got %v", err)
	}
}

func TestValidateActionFoldAlwaysLegalWhenFacingABet(t *testing.T) {
	s := newSeat(1000)
	move, err := s.ValidateAction(50, 100, Action{ID: ActionFold})
	if err != nil {
		t.Fatalf("ValidateAction: %v", err)
	}
	if move.Kind != Fold {
		t.Errorf("Kind = %v, want Fold", move.Kind)
	}
}

func TestValidateActionRaiseBelowMinRaiseStrictlyRejected(t *testing.T) {
	// Short-stacked seat cannot reach min-raise: spec.md requires the
	// strict rule (reject), not a shove-for-less allowance.
	s := &Seat{ID: 0, Stack: 40, CurrentBet: 10}
	s.InHand = true
	_, err := s.ValidateAction(0, 100, Action{ID: ActionRaise, Amount: 50})
	if !errors.Is(err, ErrInvalidAction) {
		t.Errorf("expected ErrInvalidAction for a raise below min-raise even when max bet is also below it, got %v", err)
	}
}

func TestValidateActionCallCapsAtMaxBet(t *testing.T) {
	s := &Seat{ID: 0, Stack: 30, CurrentBet: 0}
	s.InHand = true
	move, err := s.ValidateAction(100, 200, Action{ID: ActionCall})
	if err != nil {
		t.Fatalf("ValidateAction: %v", err)
	}
	if move.AbsoluteBet != 30 {
		t.Errorf("AbsoluteBet = %d, want 30 (capped at max bet)", move.AbsoluteBet)
	}
}

func TestDeclareActionSetsAllIn(t *testing.T) {
	s := newSeat(100)
	s.DeclareAction(100)
	if !s.AllIn {
		t.Errorf("AllIn = false after committing the entire stack, want true")
	}
	if s.Stack != 0 {
		t.Errorf("Stack = %d, want 0", s.Stack)
	}
}

func TestMaxBet(t *testing.T) {
	s := &Seat{Stack: 40, CurrentBet: 10}
	if got := s.MaxBet(); got != 50 {
		t.Errorf("MaxBet() = %d, want 50", got)
	}
}

func TestRefund(t *testing.T) {
	s := newSeat(0)
	s.Refund(250)
	if s.Stack != 250 {
		t.Errorf("Stack = %d, want 250", s.Stack)
	}
}
