package card

import "testing"

func TestParseAndString(t *testing.T) {
	tests := []struct {
		in   string
		rank int
		suit int
	}{
		{"As", Ace, Spades},
		{"2h", Two, Hearts},
		{"Td", Ten, Diamonds},
		{"Kc", King, Clubs},
	}
	for _, tt := range tests {
		c, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.in, err)
		}
		if c.Rank() != tt.rank || c.Suit() != tt.suit {
			t.Errorf("Parse(%q) = rank %d suit %d, want rank %d suit %d", tt.in, c.Rank(), c.Suit(), tt.rank, tt.suit)
		}
		if got := c.String(); got != tt.in {
			t.Errorf("String() = %q, want %q", got, tt.in)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "X", "1h", "Az"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q): expected error, got none", in)
		}
	}
}

func TestParseN(t *testing.T) {
	cards, err := ParseN("As Kh Qd")
	if err != nil {
		t.Fatalf("ParseN: %v", err)
	}
	if len(cards) != 3 {
		t.Fatalf("ParseN: got %d cards, want 3", len(cards))
	}
	if cards[0].Rank() != Ace || cards[2].Suit() != Diamonds {
		t.Errorf("ParseN: unexpected cards %v", cards)
	}
}

func TestNoCardInvalid(t *testing.T) {
	if NoCard.Valid() {
		t.Errorf("NoCard.Valid() = true, want false")
	}
}

func TestNewRoundTrip(t *testing.T) {
	for rank := Two; rank <= Ace; rank++ {
		for suit := Spades; suit <= Clubs; suit++ {
			c := New(rank, suit)
			if c.Rank() != rank || c.Suit() != suit {
				t.Errorf("New(%d,%d) round-trip failed: got rank %d suit %d", rank, suit, c.Rank(), c.Suit())
			}
		}
	}
}
