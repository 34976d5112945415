// Runs a batch of self-play games and prints aggregate rows-cleared
// statistics, the fitness signal consumed by external weight tuners.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jwlothian/tetron/automatic"
	"github.com/jwlothian/tetron/config"
	"github.com/jwlothian/tetron/game"
)

var (
	csvfile = flag.String("csv", "", "path for a per-game csv log")
	bins    = flag.Int("bins", 10, "histogram bins for the summary plot")
)

func main() {
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load("")
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	weights, err := cfg.AgentWeights()
	if err != nil {
		log.Fatal().Err(err).Msg("bad weight vector")
	}
	rules, err := game.NewRules(cfg.Rows, cfg.Cols)
	if err != nil {
		log.Fatal().Err(err).Msg("bad board dimensions")
	}

	runner := automatic.NewRunner(weights, rules, cfg.Threads)
	if *csvfile != "" {
		f, err := os.Create(*csvfile)
		if err != nil {
			log.Fatal().Err(err).Msg("creating csv log")
		}
		defer f.Close()
		runner.SetLogWriter(f)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := runner.Play(ctx, cfg.Games, cfg.Seed)
	if err != nil {
		log.Fatal().Err(err).Msg("batch failed")
	}

	fmt.Printf("games: %d\nmean rows: %.2f\nstddev: %.2f\nmax rows: %d\n",
		summary.Games, summary.MeanRows, summary.StddevRows, summary.MaxRows)
	if summary.Games > 1 {
		hist := histogram.Hist(*bins, summary.RowsData())
		histogram.Fprint(os.Stdout, hist, histogram.Linear(40))
	}
}
