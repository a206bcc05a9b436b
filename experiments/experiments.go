package experiments

import (
	"fmt"
	"slices"

	"game2048/engine"
	"game2048/experiments/metrics"
	"game2048/game"
	"game2048/searcher"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the games played by one agent.
type Summary struct {
	Agent       int
	Games       int
	MeanScore   float64
	StdDevScore float64
	MedianScore float64
	MeanMoves   float64
	MeanMaxTile float64
	BestTile    int
	BestGame    int     // GameRecord.ID of the highest scoring game
	WinRate     float64 // Share of games reaching the 2048 tile
	MovesPerSec float64
}

// Run plays cfg.Games games per agent and stores the configs and records under
// root/experiments/<cfg.Name>/<timestamp>. It returns one summary per agent and the output dir.
func Run(root string, cfg metrics.ExperimentConfig, tables *game.Tables) ([]Summary, string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	summaries := []Summary{}

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for ai, config := range cfg.Agents {
		log.Info().Msgf("starting agent %d of %d with config %+v...", ai+1, len(cfg.Agents), config)
		agent := newAgent(config, tables)

		agentRecords := []metrics.GameRecord{}
		for i := 0; i < cfg.Games; i++ {
			seed := uint64(0)
			if cfg.Seed != 0 {
				seed = cfg.Seed + uint64(i)
			}
			e := engine.LocalEngine(tables, agent, seed)
			if cfg.MaxMoves > 0 {
				e.MaxMoves = cfg.MaxMoves
			}

			gameMetric, moveMetrics := e.Run()
			count++
			record := metrics.GameRecord{
				ID:         count,
				Agent:      config.ID,
				GameMetric: gameMetric,
			}
			agentRecords = append(agentRecords, record)
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed agent %d game %d of %d with max tile %d", config.ID, i+1, cfg.Games, gameMetric.MaxTile)
		}
		gameRecords = append(gameRecords, agentRecords...)

		summary := Summarize(config.ID, agentRecords)
		summaries = append(summaries, summary)
		log.Info().
			Int("agent", summary.Agent).
			Float64("mean_score", summary.MeanScore).
			Float64("stddev_score", summary.StdDevScore).
			Float64("median_score", summary.MedianScore).
			Float64("mean_max_tile", summary.MeanMaxTile).
			Int("best_tile", summary.BestTile).
			Float64("win_rate", summary.WinRate).
			Float64("moves_per_sec", summary.MovesPerSec).
			Msg("agent summary")
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	dir, err := store(root, cfg, gameRecords, moveRecords)
	if err != nil {
		return nil, "", err
	}
	return summaries, dir, nil
}

func store(root string, cfg metrics.ExperimentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(root, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(cfg.Agents)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// Summarize computes score and tile statistics over the games of one agent.
func Summarize(agentID int, records []metrics.GameRecord) Summary {
	summary := Summary{Agent: agentID, Games: len(records)}
	if len(records) == 0 {
		return summary
	}

	scores := lo.Map(records, func(r metrics.GameRecord, _ int) float64 { return float64(r.Score) })
	moves := lo.Map(records, func(r metrics.GameRecord, _ int) float64 { return float64(r.TotalMoves) })
	tiles := lo.Map(records, func(r metrics.GameRecord, _ int) float64 { return float64(r.MaxTile) })

	summary.MeanScore, summary.StdDevScore = stat.MeanStdDev(scores, nil)
	slices.Sort(scores)
	summary.MedianScore = stat.Quantile(0.5, stat.Empirical, scores, nil)
	summary.MeanMoves = stat.Mean(moves, nil)
	summary.MeanMaxTile = stat.Mean(tiles, nil)

	best := lo.MaxBy(records, func(a, b metrics.GameRecord) bool { return a.Score > b.Score })
	summary.BestGame = best.ID
	summary.BestTile = lo.MaxBy(records, func(a, b metrics.GameRecord) bool { return a.MaxTile > b.MaxTile }).MaxTile

	wins := lo.CountBy(records, func(r metrics.GameRecord) bool { return r.MaxTile >= 2048 })
	summary.WinRate = float64(wins) / float64(len(records))

	totalMoves := lo.SumBy(records, func(r metrics.GameRecord) int { return r.TotalMoves })
	totalSeconds := lo.SumBy(records, func(r metrics.GameRecord) float64 { return r.Duration.Seconds() })
	if totalSeconds > 0 {
		summary.MovesPerSec = float64(totalMoves) / totalSeconds
	}
	return summary
}

func newAgent(config metrics.AgentConfig, tables *game.Tables) engine.Agent {
	options := []searcher.Option{searcher.WithTables(tables)}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}
	if config.Sequential {
		options = append(options, searcher.WithSequential())
	}

	options = append(options, searcher.WithMetrics())
	return &engine.ExpectimaxAdapter{Searcher: searcher.NewExpectimax(options...)}
}
