// Package engine implements the No-Limit Hold'em betting engine: seat
// rotation, blind posting, street transitions, action validation,
// side-pot accounting, showdown resolution, and reward computation. It
// is the deterministic game-state machine a reinforcement-learning
// training loop drives via Reset/Step.
package engine

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-rl-engine/card"
	"github.com/lox/holdem-rl-engine/deck"
	"github.com/lox/holdem-rl-engine/equity"
	"github.com/lox/holdem-rl-engine/evaluator"
	"github.com/lox/holdem-rl-engine/internal/blinds"
	"github.com/lox/holdem-rl-engine/internal/pot"
	"github.com/lox/holdem-rl-engine/internal/randutil"
	"github.com/lox/holdem-rl-engine/internal/seat"
)

// Option configures an Engine during construction.
type Option func(*engineConfig)

type engineConfig struct {
	seed      int64
	evaluator evaluator.Evaluator
	estimator equity.Estimator
	clock     Clock
	logger    *log.Logger
}

// WithSeed fixes the RNG seed the deck and equity estimator draw from.
// Without it, NewEngine derives one from the current clock — still
// explicit, never process-global randomness.
func WithSeed(seed int64) Option {
	return func(c *engineConfig) { c.seed = seed }
}

// WithEvaluator overrides the default Standard hand evaluator.
func WithEvaluator(e evaluator.Evaluator) Option {
	return func(c *engineConfig) { c.evaluator = e }
}

// WithEstimator overrides the default Monte Carlo equity estimator.
func WithEstimator(e equity.Estimator) Option {
	return func(c *engineConfig) { c.estimator = e }
}

// WithClock overrides the clock used to stamp hand ids.
func WithClock(clk Clock) Option {
	return func(c *engineConfig) { c.clock = clk }
}

// WithLogger overrides the default discard logger.
func WithLogger(l *log.Logger) Option {
	return func(c *engineConfig) { c.logger = l }
}

// Engine owns every seat, the pot ledger, the deck, and the community
// cards for one table. It is single-threaded: Reset and Step are plain
// synchronous calls.
type Engine struct {
	cfg Config

	seats       []*seat.Seat
	agentSeat   int  // -1 if no agent is seated
	hasAgent    bool // set by the first agent registration, never cleared

	rng  *rand.Rand
	deck *deck.Deck

	evaluator evaluator.Evaluator
	estimator equity.Estimator

	pot            *pot.Accountant
	community      [5]card.Card
	communityCount int
	deadCards      []card.Card

	buttonPos       int
	blindLevelIndex int
	smallBlind      int
	bigBlind        int

	street          Street
	toAct           int
	lastActor       int
	toCall          int
	lastRaise       int
	currentBetLevel int
	totalPot        int

	handNumber int
	handID     string

	clock  Clock
	logger *log.Logger
}

// NewEngine builds an engine for cfg.NumSeats empty seats.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ec := &engineConfig{
		evaluator: evaluator.Standard{},
		logger:    log.New(log.New(nil).StandardLog().Writer()),
	}
	for _, opt := range opts {
		opt(ec)
	}
	if ec.clock == nil {
		ec.clock = NewClock()
	}
	if ec.seed == 0 {
		ec.seed = ec.clock.Now().UnixNano()
	}
	if ec.estimator == nil {
		ec.estimator = equity.NewMonteCarlo(cfg.EquitySteps)
	}

	seats := make([]*seat.Seat, cfg.NumSeats)
	for i := range seats {
		seats[i] = &seat.Seat{ID: i, Empty: true}
	}

	rng := randutil.New(ec.seed)

	e := &Engine{
		cfg:       cfg,
		seats:     seats,
		agentSeat: -1,
		rng:       rng,
		deck:      deck.New(rng),
		evaluator: ec.evaluator,
		estimator: ec.estimator,
		pot:       pot.New(),
		buttonPos: -1,
		toAct:     -1,
		lastActor: -1,
		clock:     ec.clock,
		logger:    ec.logger,
	}
	for i := range e.community {
		e.community[i] = card.NoCard
	}
	level := blinds.At(0)
	e.smallBlind, e.bigBlind = level.Small, level.Big
	return e, nil
}

// AddPlayer seats stack chips at seatID. isAgent marks this seat as the
// learning agent; at most one may ever be registered.
func (e *Engine) AddPlayer(seatID, stack int, isAgent bool) error {
	if seatID < 0 || seatID >= len(e.seats) {
		return fmt.Errorf("engine: seat %d out of range", seatID)
	}
	s := e.seats[seatID]
	if !s.Empty {
		return fmt.Errorf("%w: seat %d", ErrSeatOccupied, seatID)
	}
	if isAgent && e.hasAgent {
		return ErrAgentExists
	}

	s.Empty = false
	s.Stack = stack
	s.StartingStack = stack
	s.HandStartingStack = stack
	if isAgent {
		e.hasAgent = true
		e.agentSeat = seatID
	}
	e.logger.Debug("player added", "seat", seatID, "stack", stack, "agent", isAgent)
	return nil
}

// RemovePlayer vacates seatID.
func (e *Engine) RemovePlayer(seatID int) error {
	if seatID < 0 || seatID >= len(e.seats) {
		return fmt.Errorf("engine: seat %d out of range", seatID)
	}
	s := e.seats[seatID]
	if s.Empty {
		return fmt.Errorf("%w: seat %d already empty", ErrDuplicatePlayer, seatID)
	}
	if e.agentSeat == seatID {
		e.agentSeat = -1
	}
	*s = seat.Seat{ID: seatID, Empty: true}
	e.logger.Debug("player removed", "seat", seatID)
	return nil
}

// CurrentPlayerID returns the seat id to act, or -1 if none.
func (e *Engine) CurrentPlayerID() int { return e.toAct }

// ToCall returns the current bet level a player must match to stay in.
func (e *Engine) ToCall() int { return e.toCall }

// MinRaise returns the smallest legal absolute raise total for the seat
// currently to act.
func (e *Engine) MinRaise() int { return e.minRaise() }

// Render returns the current debug snapshot without advancing state.
func (e *Engine) Render() RenderState { return e.render() }

func (e *Engine) minRaise() int {
	mr := e.currentBetLevel + e.lastRaise
	if e.currentBetLevel+1 > mr {
		mr = e.currentBetLevel + 1
	}
	return mr
}

func (e *Engine) liveSeats() []*seat.Seat {
	var live []*seat.Seat
	for _, s := range e.seats {
		if !s.Empty && !s.SittingOut {
			live = append(live, s)
		}
	}
	return live
}

func (e *Engine) inHandSeats() []*seat.Seat {
	var in []*seat.Seat
	for _, s := range e.seats {
		if s.InHand {
			in = append(in, s)
		}
	}
	return in
}

// nextLiveSeatID returns the next non-empty, non-sitting-out seat id
// clockwise after from (from may be -1 to mean "start of table").
func (e *Engine) nextLiveSeatID(from int) int {
	n := len(e.seats)
	for i := 1; i <= n; i++ {
		id := (from + i%n + n) % n
		if !e.seats[id].Empty && !e.seats[id].SittingOut {
			return id
		}
	}
	panic("engine: no live seats")
}

// nextToActID returns the next in-hand, non-all-in seat id clockwise
// after from, or -1 if no such seat exists.
func (e *Engine) nextToActID(from int) int {
	n := len(e.seats)
	for i := 1; i <= n; i++ {
		id := (from + i) % n
		s := e.seats[id]
		if s.InHand && !s.AllIn {
			return id
		}
	}
	return -1
}

func (e *Engine) handIDFor(n int) string {
	return fmt.Sprintf("hand-%d-%d", n, e.clock.Now().UnixNano())
}
