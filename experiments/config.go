package experiments

import (
	"connect4/experiments/metrics"
	"connect4/meta"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes an experiment: agents and the matchups they play.
type Config struct {
	Name     string                `yaml:"name"`
	Games    int                   `yaml:"games"`    // Per matchup
	Parallel int                   `yaml:"parallel"` // Games running at once
	Output   string                `yaml:"output"`
	Agents   []metrics.AgentConfig `yaml:"agents"`
	MatchUps [][2]int              `yaml:"matchups"` // Pairs of agent IDs
}

var ErrInvalidConfig = errors.New("invalid experiment config")

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read experiment config: %w", err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (Config, error) {
	cfg := Config{
		Games:    1,
		Parallel: meta.PARALLEL_GAMES,
		Output:   "experiments",
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse experiment config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidConfig)
	}
	if c.Games <= 0 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, c.Games)
	}
	if c.Parallel <= 0 {
		return fmt.Errorf("%w: parallel must be positive, got %d", ErrInvalidConfig, c.Parallel)
	}
	if len(c.MatchUps) == 0 {
		return fmt.Errorf("%w: no matchups", ErrInvalidConfig)
	}

	ids := map[int]bool{}
	for _, agent := range c.Agents {
		if ids[agent.ID] {
			return fmt.Errorf("%w: duplicate agent id %d", ErrInvalidConfig, agent.ID)
		}
		if agent.Iterations < 0 {
			return fmt.Errorf("%w: agent %d has negative iterations", ErrInvalidConfig, agent.ID)
		}
		ids[agent.ID] = true
	}
	for _, matchUp := range c.MatchUps {
		for _, id := range matchUp {
			if !ids[id] {
				return fmt.Errorf("%w: matchup references unknown agent %d", ErrInvalidConfig, id)
			}
		}
	}
	return nil
}

func (c Config) agent(id int) metrics.AgentConfig {
	for _, agent := range c.Agents {
		if agent.ID == id {
			return agent
		}
	}
	panic(fmt.Sprintf("unknown agent %d", id))
}
