package pot

import "testing"

func TestResolveSingleLayerNoAllIn(t *testing.T) {
	a := New()
	contributors := []Contributor{
		{SeatID: 0, CurrentBet: 50, InHand: true},
		{SeatID: 1, CurrentBet: 50, InHand: true},
		{SeatID: 2, CurrentBet: 50, InHand: true},
	}
	resolved := a.Resolve(contributors)
	if len(a.Layers) != 1 || a.Layers[0] != 150 {
		t.Fatalf("Layers = %v, want [150]", a.Layers)
	}
	for _, c := range resolved {
		if c.CurrentBet != 0 {
			t.Errorf("seat %d CurrentBet = %d, want 0 after sweep", c.SeatID, c.CurrentBet)
		}
		if c.LastSidepot != 0 {
			t.Errorf("seat %d LastSidepot = %d, want 0", c.SeatID, c.LastSidepot)
		}
	}
	a.AssertConserved(150)
}

func TestResolveOpensSidePotOnShortAllIn(t *testing.T) {
	// Seat 2 shoves for 40 total; seats 0 and 1 have both put in 100.
	a := New()
	contributors := []Contributor{
		{SeatID: 0, CurrentBet: 100, InHand: true},
		{SeatID: 1, CurrentBet: 100, InHand: true},
		{SeatID: 2, CurrentBet: 40, InHand: true, AllIn: true},
	}
	a.Resolve(contributors)

	if len(a.Layers) != 2 {
		t.Fatalf("Layers = %v, want 2 layers", a.Layers)
	}
	if a.Layers[0] != 120 { // 40 * 3
		t.Errorf("main pot = %d, want 120", a.Layers[0])
	}
	if a.Layers[1] != 120 { // (100-40) * 2
		t.Errorf("side pot = %d, want 120", a.Layers[1])
	}
	a.AssertConserved(240)
}

func TestResolveEveryoneFoldedAfterAllIn(t *testing.T) {
	// Seat 0 is all-in for 40 and both others folded afterward, still
	// holding dead money in current_bet from before they folded.
	a := New()
	contributors := []Contributor{
		{SeatID: 0, CurrentBet: 40, InHand: true, AllIn: true},
		{SeatID: 1, CurrentBet: 40, InHand: false},
		{SeatID: 2, CurrentBet: 40, InHand: false},
	}
	a.Resolve(contributors)
	// Seat 0 is all-in at the smallest in-hand bet, so a fresh (still
	// empty) layer opens above the one the 120 chips went into.
	if len(a.Layers) != 2 || a.Layers[0] != 120 || a.Layers[1] != 0 {
		t.Fatalf("Layers = %v, want [120 0]", a.Layers)
	}
	a.AssertConserved(120)
}

func TestAssertConservedPanicsOnMismatch(t *testing.T) {
	a := New()
	a.Layers = []int{50}
	defer func() {
		if recover() == nil {
			t.Errorf("AssertConserved did not panic on a mismatched total")
		}
	}()
	a.AssertConserved(100)
}

func TestResetClearsLayers(t *testing.T) {
	a := New()
	a.Resolve([]Contributor{{SeatID: 0, CurrentBet: 10, InHand: true}})
	a.Reset()
	if len(a.Layers) != 1 || a.Layers[0] != 0 {
		t.Errorf("Layers after Reset = %v, want [0]", a.Layers)
	}
}
