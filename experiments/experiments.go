package experiments

import (
	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Result struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

type job struct {
	id     int
	first  metrics.AgentConfig
	second metrics.AgentConfig
}

// Run plays every matchup of cfg. Each game owns its board and searchers, so
// games run concurrently while every search stays single threaded.
func Run(cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	jobs := []job{}
	for _, matchUp := range cfg.MatchUps {
		config1 := cfg.agent(matchUp[0])
		config2 := cfg.agent(matchUp[1])
		for i := 0; i < cfg.Games; i++ {
			// Alternate the starting agent
			j := job{id: len(jobs) + 1, first: config1, second: config2}
			if i%2 == 1 {
				j.first, j.second = config2, config1
			}
			jobs = append(jobs, j)
		}
	}

	log.Info().Msgf("starting %s experiment with %d games...", cfg.Name, len(jobs))

	games := make([]metrics.GameRecord, len(jobs))
	moves := make([][]metrics.MoveRecord, len(jobs))

	var g errgroup.Group
	g.SetLimit(cfg.Parallel)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			gameMetric, moveMetrics, err := runGame(j)
			if err != nil {
				return fmt.Errorf("game %d: %w", j.id, err)
			}

			games[i] = metrics.GameRecord{
				ID:         j.id,
				Agent1:     j.first.ID,
				Agent2:     j.second.ID,
				GameMetric: gameMetric,
			}
			for _, mm := range moveMetrics {
				moves[i] = append(moves[i], metrics.MoveRecord{Game: j.id, MoveMetric: mm})
			}

			log.Info().Msgf("completed game %d of %d between agent%d and agent%d with winner: %s",
				j.id, len(jobs), j.first.ID, j.second.ID, gameMetric.Winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	result := Result{Games: games}
	for _, mm := range moves {
		result.Moves = append(result.Moves, mm...)
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)
	return result, nil
}

// RunAndStore runs cfg and writes its configs and records under cfg.Output.
func RunAndStore(cfg Config) (string, error) {
	result, err := Run(cfg)
	if err != nil {
		return "", err
	}

	writer, err := metrics.NewWriter(cfg.Output, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	if err := writer.WriteParquet(result.Games, result.Moves); err != nil {
		return "", fmt.Errorf("failed to write parquet records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame executes a single game between two agents
func runGame(j job) (metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := []engine.Agent{
		&engine.MCTSAgent{Searcher: createMCTS(j.first, j.id), Iterations: j.first.Iterations},
		&engine.MCTSAgent{Searcher: createMCTS(j.second, j.id), Iterations: j.second.Iterations},
	}
	e := engine.LocalEngine(agents, game.NewConnectFour())

	_, gameMetric, moveMetrics, err := e.Run()
	return gameMetric, moveMetrics, err
}

func createMCTS(config metrics.AgentConfig, gameID int) *searcher.MCTS {
	options := []searcher.Option{
		searcher.WithHeuristics(config.Heuristics),
		searcher.WithSeed(config.Seed + uint64(gameID)),
		searcher.WithMetrics(),
	}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}

	return searcher.NewMCTS(options...)
}
