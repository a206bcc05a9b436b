package main

import (
	"game2048/experiments"
	"game2048/experiments/metrics"
	"game2048/game"
	"game2048/meta"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var flagOutput string

var experimentCmd = &cobra.Command{
	Use:   "experiment [config.yaml]",
	Short: "Run a batch experiment and store its records as CSV",
	Long: `Play a number of games per agent config and store agent_configs.csv, game_records.csv and
move_records.csv under <output>/experiments/<name>/<timestamp>. Without a config file the embedded
depth experiment is run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExperiment,
}

func init() {
	experimentCmd.Flags().StringVar(&flagOutput, "output", meta.OUTPUT_ROOT, "Root directory of the experiment records")
}

func runExperiment(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	cfg, err := metrics.LoadExperimentConfig(path)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}

	_, dir, err := experiments.Run(flagOutput, cfg, game.NewTables())
	if err != nil {
		return err
	}
	log.Info().Msgf("stored %s experiment in %s", cfg.Name, dir)
	return nil
}
