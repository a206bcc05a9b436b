package metrics

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/experiment.yaml
var defaultExperimentYAML []byte

// AgentConfig describes one expectimax agent. Zero values fall back to the searcher defaults.
type AgentConfig struct {
	ID         int     `yaml:"id"`
	Depth      int     `yaml:"depth"`
	Cutoff     float64 `yaml:"cutoff"`
	Sequential bool    `yaml:"sequential"`
}

type ExperimentConfig struct {
	Name     string        `yaml:"name"`
	Games    int           `yaml:"games"` // Per agent
	Seed     uint64        `yaml:"seed"`  // Game i is played with Seed+i, 0 draws random seeds
	MaxMoves int           `yaml:"max_moves"`
	Agents   []AgentConfig `yaml:"agents"`
}

// LoadExperimentConfig reads an experiment config from path, or the embedded default when path is
// empty.
func LoadExperimentConfig(path string) (ExperimentConfig, error) {
	data := defaultExperimentYAML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return ExperimentConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}
	return ParseExperimentConfig(data)
}

func ParseExperimentConfig(data []byte) (ExperimentConfig, error) {
	var cfg ExperimentConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Name == "" {
		return cfg, fmt.Errorf("experiment has no name")
	}
	if cfg.Games <= 0 {
		return cfg, fmt.Errorf("experiment %s: games must be positive, got %d", cfg.Name, cfg.Games)
	}
	if len(cfg.Agents) == 0 {
		return cfg, fmt.Errorf("experiment %s: no agents", cfg.Name)
	}
	seen := map[int]bool{}
	for _, agent := range cfg.Agents {
		if seen[agent.ID] {
			return cfg, fmt.Errorf("experiment %s: duplicate agent id %d", cfg.Name, agent.ID)
		}
		seen[agent.ID] = true
	}
	return cfg, nil
}
