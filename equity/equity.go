// Package equity estimates win probability via Monte Carlo rollouts of
// the remaining board and a sampled opponent hand, parallelized across
// workers the way the reference evaluator's equity estimator is. Every
// sample draws from its own seed, derived from the call's inputs and the
// sample's index, so a single call's result does not depend on how many
// workers share the samples.
package equity

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-rl-engine/card"
	"github.com/lox/holdem-rl-engine/evaluator"
	"github.com/lox/holdem-rl-engine/internal/randutil"
)

// Estimator computes win/tie equity for one or more hole-card hands given
// the current board, the cards still unseen, and any cards known to be
// dead (folded/burned) and therefore excluded from sampling.
type Estimator interface {
	EquitiesFor(hands [][2]card.Card, community, remaining, dead []card.Card) []float64
	SoloEquity(hole [2]card.Card, nOpponents int, community, remaining []card.Card) float64
}

// MonteCarlo is the parallel sampling estimator.
type MonteCarlo struct {
	Samples int
	eval    evaluator.Standard
}

// NewMonteCarlo builds an estimator that draws samples per call. samples
// is split across workers; fewer than 500 runs sequentially since the
// goroutine fan-out overhead dominates at that scale.
func NewMonteCarlo(samples int) *MonteCarlo {
	if samples <= 0 {
		samples = 1000
	}
	return &MonteCarlo{Samples: samples}
}

type cardSet uint64

func (cs *cardSet) add(c card.Card)      { *cs |= 1 << uint(c) }
func (cs cardSet) has(c card.Card) bool  { return cs&(1<<uint(c)) != 0 }
func setOf(cards ...[]card.Card) cardSet {
	var cs cardSet
	for _, group := range cards {
		for _, c := range group {
			cs.add(c)
		}
	}
	return cs
}

var boardPool = sync.Pool{New: func() any { return make([]card.Card, 0, 52) }}

// SoloEquity estimates hole's win probability heads-up against nOpponents
// independently-random hands, rolling out `remaining` to complete the
// board. It is the common case used by the engine's observation builder.
func (m *MonteCarlo) SoloEquity(hole [2]card.Card, nOpponents int, community, remaining []card.Card) float64 {
	hands := make([][2]card.Card, 0, 1)
	hands = append(hands, hole)
	result := m.runMultiway(hands, nOpponents, community, remaining, nil)
	return result[0]
}

// EquitiesFor estimates simultaneous equity for a full set of known
// hands (used at showdown, where every remaining hole card is revealed
// and there is no "opponent sampling" left to do).
func (m *MonteCarlo) EquitiesFor(hands [][2]card.Card, community, remaining, dead []card.Card) []float64 {
	return m.runMultiway(hands, 0, community, remaining, dead)
}

// runMultiway rolls the board out `remaining` cards and, for each of the
// given known hands, samples nOpponents additional random hands from
// what's left over, then records win/tie counts for hands[0..].
func (m *MonteCarlo) runMultiway(hands [][2]card.Card, nOpponents int, community, remaining, dead []card.Card) []float64 {
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	if m.Samples < 500 {
		workers = 1
	}

	samplesPerWorker := m.Samples / workers
	remainderSamples := m.Samples % workers

	used := setOf(community, dead)
	for _, h := range hands {
		used.add(h[0])
		used.add(h[1])
	}
	available := make([]card.Card, 0, len(remaining))
	for _, c := range remaining {
		if !used.has(c) {
			available = append(available, c)
		}
	}

	rng := randutil.New(int64(m.Samples) ^ int64(len(available))<<32 | seedMix(hands, community))
	base := rng.Int64()

	type result = struct {
		wins, ties, valid int
	}
	resultsPer := make([][]result, len(hands))
	for i := range resultsPer {
		resultsPer[i] = make([]result, workers)
	}

	g, _ := errgroup.WithContext(context.Background())
	next := 0
	for w := 0; w < workers; w++ {
		w := w
		workerSamples := samplesPerWorker
		if w < remainderSamples {
			workerSamples++
		}
		first := next
		next += workerSamples
		g.Go(func() error {
			m.runWorker(hands, community, available, nOpponents, first, workerSamples, base, resultsPer, w)
			return nil
		})
	}
	_ = g.Wait()

	equities := make([]float64, len(hands))
	for i := range hands {
		var wins, ties, valid int
		for w := 0; w < workers; w++ {
			wins += resultsPer[i][w].wins
			ties += resultsPer[i][w].ties
			valid += resultsPer[i][w].valid
		}
		if valid == 0 {
			equities[i] = 0
			continue
		}
		equities[i] = (float64(wins) + float64(ties)/2) / float64(valid)
	}
	return equities
}

func (m *MonteCarlo) runWorker(hands [][2]card.Card, community, available []card.Card, nOpponents, first, samples int, base int64, out [][]struct{ wins, ties, valid int }, worker int) {
	needed := 5 - len(community)

	for s := 0; s < samples; s++ {
		rng := randutil.New(base + int64(first+s))
		pool := boardPool.Get().([]card.Card)
		pool = append(pool[:0], available...)
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

		if needed > len(pool) {
			boardPool.Put(pool[:0])
			continue
		}
		board := append(append([]card.Card(nil), community...), pool[:needed]...)
		pool = pool[needed:]

		opponents := make([][2]card.Card, nOpponents)
		ok := true
		for o := 0; o < nOpponents; o++ {
			if len(pool) < 2 {
				ok = false
				break
			}
			opponents[o] = [2]card.Card{pool[0], pool[1]}
			pool = pool[2:]
		}
		boardPool.Put(pool[:0])
		if !ok {
			continue
		}

		scores := make([]evaluator.Rank, len(hands))
		for i, h := range hands {
			scores[i] = m.eval.Rank(h, board)
		}
		oppScores := make([]evaluator.Rank, len(opponents))
		for o := range opponents {
			oppScores[o] = m.eval.Rank(opponents[o], board)
		}

		best := scores[0]
		for _, sc := range scores[1:] {
			if sc < best {
				best = sc
			}
		}
		for _, sc := range oppScores {
			if sc < best {
				best = sc
			}
		}

		atBest := 0
		for _, sc := range scores {
			if sc == best {
				atBest++
			}
		}
		for _, sc := range oppScores {
			if sc == best {
				atBest++
			}
		}

		for i, sc := range scores {
			if sc == best {
				if atBest == 1 {
					out[i][worker].wins++
				} else {
					out[i][worker].ties++
				}
			}
			out[i][worker].valid++
		}
	}
}

func seedMix(hands [][2]card.Card, community []card.Card) int64 {
	var x int64
	for _, h := range hands {
		x = x*131 + int64(h[0]) + int64(h[1])*7
	}
	for _, c := range community {
		x = x*131 + int64(c)
	}
	return x
}
