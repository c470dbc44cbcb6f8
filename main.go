package main

import (
	"connect4/engine"
	"connect4/experiments"
	"connect4/game"
	"connect4/meta"
	"connect4/searcher"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	mode       string
	iterations int
	c          float64
	heuristics bool
	seed       uint64
	humanFirst bool
	experiment string
	debug      bool
}

func main() {
	cfg := parseFlags()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var err error
	switch cfg.mode {
	case "play":
		err = runPlay(cfg)
	case "experiment":
		err = runExperiment(cfg)
	default:
		err = fmt.Errorf("unknown mode %q", cfg.mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("connect4 failed")
	}
}

func parseFlags() config {
	var cfg config
	flag.StringVar(&cfg.mode, "mode", "play", "play (human vs MCTS) or experiment")
	flag.IntVar(&cfg.iterations, "iterations", meta.ITERATIONS, "MCTS iterations per AI move")
	flag.Float64Var(&cfg.c, "c", meta.EXPLORATION, "UCT exploration constant")
	flag.BoolVar(&cfg.heuristics, "heuristics", true, "enable immediate-win and blocking heuristics")
	flag.Uint64Var(&cfg.seed, "seed", meta.SEED, "random seed")
	flag.BoolVar(&cfg.humanFirst, "first", true, "human plays RED (first)")
	flag.StringVar(&cfg.experiment, "config", "experiment.yaml", "experiment config file")
	flag.BoolVar(&cfg.debug, "debug", false, "debug logging")
	flag.Parse()
	return cfg
}

func runPlay(cfg config) error {
	ai := &engine.MCTSAgent{
		Searcher: searcher.NewMCTS(
			searcher.WithExploration(cfg.c),
			searcher.WithHeuristics(cfg.heuristics),
			searcher.WithSeed(cfg.seed),
		),
		Iterations: cfg.iterations,
	}
	human := engine.NewHumanAgent(os.Stdin, os.Stdout)

	agents := []engine.Agent{human, ai}
	if !cfg.humanFirst {
		agents = []engine.Agent{ai, human}
	}

	fmt.Println("=== Connect Four: You vs MCTS ===")
	fmt.Println("Board shows: R = RED, Y = YELLOW, . = empty")
	fmt.Printf("Columns are 0..%d\n\n", game.Columns-1)

	state := game.NewConnectFour()
	fmt.Println(state)

	e := engine.LocalEngine(agents, state)
	e.OnMove = func(player game.Player, move game.Move, state *game.ConnectFour) {
		fmt.Printf("\n%s plays %d\n\n%s\n", player, move, state)
		fmt.Println(strings.Repeat("-", 40))
	}

	outcome, _, _, err := e.Run()
	if err != nil {
		return err
	}

	switch outcome {
	case game.FirstWins, game.SecondWins:
		fmt.Printf("\nResult: %s wins!\n", outcome)
	default:
		fmt.Println("\nResult: Draw!")
	}
	return nil
}

func runExperiment(cfg config) error {
	expCfg, err := experiments.LoadConfig(cfg.experiment)
	if err != nil {
		return err
	}
	dir, err := experiments.RunAndStore(expCfg)
	if err != nil {
		return err
	}
	fmt.Printf("results stored in %s\n", dir)
	return nil
}
