// Package automatic plays batches of full games without human
// involvement. A weight tuner evaluates a candidate weight vector by
// running a batch and reading the aggregate rows-cleared statistics.
package automatic

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/jwlothian/tetron/game"
	"github.com/jwlothian/tetron/heuristic"
	"github.com/jwlothian/tetron/player"
)

// Result is the outcome of one full game.
type Result struct {
	Game  int
	Seed  uint64
	Turns int
	Rows  int
}

// Summary aggregates a batch.
type Summary struct {
	Games      int
	MeanRows   float64
	StddevRows float64
	MaxRows    int
	Results    []Result
}

// RowsData returns the per-game rows-cleared values as floats, in
// game order, for plotting.
func (s *Summary) RowsData() []float64 {
	return lo.Map(s.Results, func(r Result, _ int) float64 {
		return float64(r.Rows)
	})
}

// Runner plays batches of games with a fixed weight vector. Each
// worker owns its agent and its games; nothing mutable is shared
// between workers except the disjoint slots of the result slice.
type Runner struct {
	rules     *game.Rules
	weights   heuristic.Weights
	threads   int
	logWriter io.Writer
}

// NewRunner builds a batch runner playing on threads workers.
func NewRunner(w heuristic.Weights, rules *game.Rules, threads int) *Runner {
	if threads < 1 {
		threads = 1
	}
	return &Runner{rules: rules, weights: w, threads: threads}
}

// SetLogWriter streams one CSV row per finished game to w.
func (r *Runner) SetLogWriter(w io.Writer) {
	r.logWriter = w
}

// Play runs numGames full games. Game i is seeded with baseSeed+i, so
// a batch is reproducible independent of thread count and scheduling.
// Cancelling the context stops feeding new games; games already under
// way finish and are included.
func (r *Runner) Play(ctx context.Context, numGames int, baseSeed uint64) (*Summary, error) {
	if numGames < 1 {
		return nil, fmt.Errorf("numGames must be positive, got %d", numGames)
	}
	log.Debug().Int("games", numGames).Int("threads", r.threads).Msg("starting-batch")
	tstart := time.Now()

	results := make([]Result, numGames)
	played := make([]bool, numGames)
	jobs := make(chan int)

	logChan := make(chan string, 100)
	logDone := make(chan struct{})
	go func() {
		defer close(logDone)
		for line := range logChan {
			if r.logWriter != nil {
				io.WriteString(r.logWriter, line)
			}
		}
	}()
	if r.logWriter != nil {
		logChan <- "game,seed,turns,rows\n"
	}

	g, gctx := errgroup.WithContext(ctx)
	for t := 0; t < r.threads; t++ {
		g.Go(func() error {
			agent := player.NewAgent(r.weights, r.rules)
			for i := range jobs {
				seed := baseSeed + uint64(i)
				gm := game.NewSeededGame(r.rules, seed)
				rows, err := agent.Run(gm)
				if err != nil {
					return err
				}
				results[i] = Result{Game: i, Seed: seed, Turns: gm.Turn(), Rows: rows}
				played[i] = true
				if r.logWriter != nil {
					logChan <- fmt.Sprintf("%d,%d,%d,%d\n", i, seed, gm.Turn(), rows)
				}
			}
			return nil
		})
	}

feeder:
	for i := 0; i < numGames; i++ {
		select {
		case jobs <- i:
		case <-gctx.Done():
			log.Info().Msg("batch-cancelled")
			break feeder
		}
	}
	close(jobs)

	err := g.Wait()
	close(logChan)
	<-logDone
	if err != nil {
		return nil, err
	}

	finished := []Result{}
	for i, ok := range played {
		if ok {
			finished = append(finished, results[i])
		}
	}
	if len(finished) == 0 {
		return nil, ctx.Err()
	}

	summary := summarize(finished)
	log.Info().Int("games", summary.Games).
		Float64("mean-rows", summary.MeanRows).
		Int("max-rows", summary.MaxRows).
		Dur("elapsed", time.Since(tstart)).
		Msg("batch-done")
	return summary, nil
}

func summarize(results []Result) *Summary {
	s := &Summary{Games: len(results), Results: results}
	rows := s.RowsData()
	s.MeanRows = stat.Mean(rows, nil)
	if len(rows) > 1 {
		s.StddevRows = stat.StdDev(rows, nil)
	}
	s.MaxRows = lo.MaxBy(results, func(a, b Result) bool {
		return a.Rows > b.Rows
	}).Rows
	return s
}
