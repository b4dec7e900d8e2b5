package evaluator

import (
	"testing"

	"github.com/lox/holdem-rl-engine/card"
)

func parseCards(t *testing.T, s string) []card.Card {
	t.Helper()
	cards, err := card.ParseN(s)
	if err != nil {
		t.Fatalf("ParseN(%q): %v", s, err)
	}
	return cards
}

func TestEvaluateHandTypes(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		expected int
	}{
		{"high card", "As Kh Qd Jc 9s 7h 5d", HighCardType},
		{"pair", "As Ah Kd Qc Js 9h 7d", OnePairType},
		{"two pair", "As Ah Kd Kc Qs 9h 7d", TwoPairType},
		{"three of a kind", "As Ah Ad Kc Qs 9h 7d", ThreeOfAKindType},
		{"straight - broadway", "As Kh Qd Jc Ts 9h 7d", StraightType},
		{"straight - wheel", "As 2h 3d 4c 5s Kh Qd", StraightType},
		{"flush", "As Ks Qs Js 9s 7h 5d", FlushType},
		{"full house", "As Ah Ad Kc Ks 9h 7d", FullHouseType},
		{"four of a kind", "As Ah Ad Ac Ks 9h 7d", FourOfAKindType},
		{"straight flush", "9s 8s 7s 6s 5s Kh Qd", StraightFlushType},
		{"royal flush", "As Ks Qs Js Ts 9h 7d", RoyalFlushType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := parseCards(t, tt.cards)
			rank := evaluate(cards)
			if rank.Type() != tt.expected {
				t.Errorf("evaluate(%q) = %s (type %d), want type %d", tt.cards, rank, rank.Type(), tt.expected)
			}
		})
	}
}

func TestCompareStrongerWins(t *testing.T) {
	var e Standard
	board := parseCards(t, "2h 7d 9s Jc Ks")
	strong := [2]card.Card{mustParse(t, "As"), mustParse(t, "Ah")}
	weak := [2]card.Card{mustParse(t, "2s"), mustParse(t, "3d")}

	rStrong := e.Rank(strong, board)
	rWeak := e.Rank(weak, board)

	if rStrong.Compare(rWeak) != 1 {
		t.Errorf("pair of aces should beat high card: Compare = %d", rStrong.Compare(rWeak))
	}
	if rWeak.Compare(rStrong) != -1 {
		t.Errorf("Compare should be antisymmetric")
	}
	if rStrong.Compare(rStrong) != 0 {
		t.Errorf("a hand should tie itself")
	}
}

func mustParse(t *testing.T, s string) card.Card {
	t.Helper()
	c, err := card.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return c
}

func TestSplitPotTie(t *testing.T) {
	var e Standard
	board := parseCards(t, "As Ks Qs Js Ts")
	handA := [2]card.Card{mustParse(t, "2c"), mustParse(t, "3c")}
	handB := [2]card.Card{mustParse(t, "4d"), mustParse(t, "5d")}

	if e.Rank(handA, board).Compare(e.Rank(handB, board)) != 0 {
		t.Errorf("two hands playing the same board-only straight flush should tie")
	}
}
