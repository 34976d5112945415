// Plays a single game with the configured weights and reports the
// rows cleared.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jwlothian/tetron/config"
	"github.com/jwlothian/tetron/game"
	"github.com/jwlothian/tetron/player"
)

var (
	seed    = flag.Uint64("seed", 0, "piece sequence seed; 0 plays an unseeded game")
	logfile = flag.String("decisionlog", "", "path for a per-decision yaml log")
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

	agent := player.NewAgent(weights, rules)
	agent.SetThreads(cfg.Threads)
	if *logfile != "" {
		f, err := os.Create(*logfile)
		if err != nil {
			log.Fatal().Err(err).Msg("creating decision log")
		}
		defer f.Close()
		agent.SetLogStream(f)
	}

	var g *game.Game
	if *seed != 0 {
		g = game.NewSeededGame(rules, *seed)
	} else {
		g = game.NewGame(rules)
	}

	rows, err := agent.Run(g)
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	log.Info().Int("turns", g.Turn()).Int("rows", rows).Msg("completed")
}
