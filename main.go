package main

import (
	"flag"
	"fmt"
	"lcr/config"
	"lcr/experiments"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	options, err := config.LoadRuntime()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load runtime options")
	}

	configPath := flag.String("config", "", "Path to the JSON or YAML experiment configuration")
	workers := flag.Int("workers", options.Workers, "Number of goroutines running games")
	seed := flag.Uint64("seed", options.Seed, "Master random seed, 0 picks one from the clock")
	maxTurns := flag.Int("max-turns", options.MaxTurns, "Turn cap of a single game")
	outDir := flag.String("out", options.OutDir, "Directory to store results in, empty to skip")
	logLevel := flag.String("log-level", options.LogLevel, "Log level")
	flag.Parse()

	if *configPath == "" && flag.NArg() > 0 {
		*configPath = flag.Arg(0)
	}
	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "usage: lcr [flags] <config>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	options.LogLevel = *logLevel
	level, err := options.Level()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set log level")
	}
	zerolog.SetGlobalLevel(level)

	file, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	cfg, err := file.GameConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	stats, err := experiments.Run(cfg, file.Simulations,
		experiments.WithWorkers(*workers),
		experiments.WithSeed(*seed),
		experiments.WithMaxTurns(*maxTurns),
		experiments.WithMetrics(),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	report(stats)

	if *outDir != "" {
		writer, err := experiments.NewWriter(*outDir)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create experiment writer")
		}
		if err := writer.Write(cfg, stats); err != nil {
			log.Fatal().Err(err).Msg("failed to store results")
		}
		log.Info().Msgf("stored results in %s", writer.Dir())
	}
}

func report(stats experiments.Stats) {
	fmt.Println("Raw Win Counts")
	fmt.Println(stats.WinCounts)
	fmt.Println("Win Percentages")
	fmt.Println(stats.WinPercentages())
	r := stats.Rotations
	fmt.Printf("Rotation Stats [min/mean/median/max]: %d %g %g %d\n", r.Min, r.Mean, r.Median, r.Max)
	log.Info().Msgf("played %d games (%d turns, %d dice) in %s with seed %d", stats.Metric.Games, stats.Metric.Turns, stats.Metric.Dice, stats.Metric.Duration, stats.Seed)
}
