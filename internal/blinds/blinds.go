// Package blinds holds the fixed blind-level schedule used to seed a
// table's small/big blind at construction time.
package blinds

// Level is one (small_blind, big_blind) pair in the schedule.
type Level struct {
	Small int
	Big   int
}

// Schedule is the fixed 13-level table. Level 9 (index 9, the tenth
// entry) carries a big blind far out of proportion to its neighbors —
// every other level keeps the big blind at 2x the small blind (2.5x at
// level 0), this one jumps to 20x. It reads like a transcription error in the source this
// was ported from, but per design note in SPEC_FULL.md it is preserved
// verbatim rather than "fixed".
var Schedule = []Level{
	{Small: 10, Big: 25},
	{Small: 25, Big: 50},
	{Small: 50, Big: 100},
	{Small: 75, Big: 150},
	{Small: 100, Big: 200},
	{Small: 150, Big: 300},
	{Small: 200, Big: 400},
	{Small: 300, Big: 600},
	{Small: 400, Big: 800},
	{Small: 500, Big: 10000},
	{Small: 600, Big: 1200},
	{Small: 800, Big: 1600},
	{Small: 1000, Big: 2000},
}

// At returns the blind level at index i, clamped to the last level if i
// runs past the end of the schedule.
func At(i int) Level {
	if i < 0 {
		i = 0
	}
	if i >= len(Schedule) {
		i = len(Schedule) - 1
	}
	return Schedule[i]
}
