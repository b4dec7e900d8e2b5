// Command simulate runs many independent hands against scripted
// opponents and reports the learning agent's BB/hand performance — a
// quick sanity harness for the engine, not a training loop itself.
package main

import (
	"fmt"
	"math"
	rand "math/rand/v2"
	"os"
	"sort"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-rl-engine/engine"
	"github.com/lox/holdem-rl-engine/internal/randutil"
	"github.com/lox/holdem-rl-engine/internal/seat"
)

const startingStack = 200 // 100bb at sb=1/bb=2 chip scale is not used; engine has its own blind schedule.

// CLI is the simulate command's flags, kong-parsed the way the
// reference cmd/simulate does.
type CLI struct {
	Hands    int    `default:"10000" help:"Number of hands to simulate"`
	Opponent string `default:"call" help:"Opponent strategy: fold, call, rand, maniac"`
	Seats    int    `default:"6" help:"Table size"`
	Seed     int64  `default:"0" help:"RNG seed (0 picks one from the clock)"`
	Verbose  bool   `short:"v" help:"Debug logging"`
	Equity   bool   `name:"equity-reward" help:"Resolve all-in hands by equity split instead of dealing out the board"`
}

// Statistics accumulates the agent's per-hand reward in big blinds.
type Statistics struct {
	Hands  int
	SumBB  float64
	SumBB2 float64
	Values []float64
}

func (s *Statistics) Add(rewardBB float64) {
	s.Hands++
	s.SumBB += rewardBB
	s.SumBB2 += rewardBB * rewardBB
	s.Values = append(s.Values, rewardBB)
}

func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

func (s *Statistics) StdDev() float64 { return math.Sqrt(s.Variance()) }

func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), s.Values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli)

	if cli.Seed == 0 {
		cli.Seed = time.Now().UnixNano()
	}

	level := log.WarnLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	fmt.Printf("Simulating %d hands at a %d-seat table vs %s opponents (seed %d)\n",
		cli.Hands, cli.Seats, cli.Opponent, cli.Seed)

	start := time.Now()
	stats, err := runSimulation(cli, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulation failed: %v\n", err)
		os.Exit(1)
	}
	printResults(stats, cli, time.Since(start))

	kctx.Exit(0)
}

func runSimulation(cli CLI, logger *log.Logger) (*Statistics, error) {
	stats := &Statistics{}
	opponent := strategyFor(cli.Opponent, logger)
	cmdRng := randutil.New(cli.Seed)

	cfg := engine.DefaultConfig()
	cfg.NumSeats = cli.Seats
	cfg.AllInEquityReward = cli.Equity

	for hand := 0; hand < cli.Hands; hand++ {
		handSeed := cmdRng.Int64()
		reward, err := playHand(cfg, opponent, handSeed, logger)
		if err != nil {
			return nil, fmt.Errorf("hand %d (seed %d): %w", hand, handSeed, err)
		}
		stats.Add(reward)
	}
	return stats, nil
}

// playHand deals one hand to completion against the given opponent
// strategy and returns the agent's reward in big blinds.
func playHand(cfg engine.Config, opponent strategy, handSeed int64, logger *log.Logger) (float64, error) {
	e, err := engine.NewEngine(cfg, engine.WithSeed(handSeed), engine.WithLogger(logger))
	if err != nil {
		return 0, err
	}

	const agentSeat = 0
	if err := e.AddPlayer(agentSeat, startingStack*10, true); err != nil {
		return 0, err
	}
	for i := 1; i < cfg.NumSeats; i++ {
		if err := e.AddPlayer(i, startingStack*10, false); err != nil {
			return 0, err
		}
	}

	handRng := randutil.New(handSeed)

	_, rs, err := e.Reset()
	if err != nil {
		return 0, err
	}

	for {
		seatID := e.CurrentPlayerID()
		if seatID < 0 {
			break
		}

		var action seat.Action
		if seatID == agentSeat {
			action = agentPolicy(handRng, e, rs, seatID)
		} else {
			action = opponent(handRng, e, rs, seatID)
		}

		reward, terminal, info, err := stepEngine(e, action)
		if err != nil {
			return 0, fmt.Errorf("step: %w", err)
		}
		if terminal {
			logger.Debug("hand complete", "money_won", info.MoneyWon, "reward_bb", reward)
			return reward, nil
		}
		rs = e.Render()
	}

	return 0, fmt.Errorf("hand ended with no seat to act and no terminal step")
}

func stepEngine(e *engine.Engine, action seat.Action) (float64, bool, engine.Info, error) {
	_, reward, terminal, info, err := e.Step(action)
	return reward, terminal, info, err
}

// agentPolicy is a simple random bot: it min-raises one time in four
// with nothing to call and one time in five facing a bet, and otherwise
// checks or calls. It exists to exercise the engine end to end, not to
// play strong poker.
func agentPolicy(rng *rand.Rand, e *engine.Engine, rs engine.RenderState, seatID int) seat.Action {
	toCall := e.ToCall()
	maxBet := rs.Seats[seatID].CurrentBet + rs.Seats[seatID].Stack

	if toCall == 0 {
		if e.MinRaise() <= maxBet && rng.IntN(4) == 0 {
			return seat.Action{ID: seat.ActionRaise, Amount: e.MinRaise()}
		}
		return seat.Action{ID: seat.ActionCheck}
	}

	if e.MinRaise() <= maxBet && rng.IntN(5) == 0 {
		return seat.Action{ID: seat.ActionRaise, Amount: e.MinRaise()}
	}
	return seat.Action{ID: seat.ActionCall}
}

func printResults(stats *Statistics, cli CLI, duration time.Duration) {
	low, high := stats.ConfidenceInterval95()
	fmt.Printf("\n=== RESULTS vs %s ===\n", cli.Opponent)
	fmt.Printf("Hands played: %d in %v (%.1f hands/sec)\n",
		stats.Hands, duration.Round(time.Millisecond), float64(stats.Hands)/duration.Seconds())
	fmt.Printf("Mean: %.4f bb/hand\n", stats.Mean())
	fmt.Printf("Median: %.4f bb/hand\n", stats.Median())
	fmt.Printf("Std Dev: %.4f bb\n", stats.StdDev())
	fmt.Printf("95%% CI: [%.4f, %.4f] bb/hand\n", low, high)
}
