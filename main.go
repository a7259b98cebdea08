package main

import (
	"flag"
	"os"
	"pacman/engine"
	"pacman/experiments"
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/meta"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	layout := flag.String("layout", meta.LAYOUT, "Layout name: "+strings.Join(game.LayoutNames(), ", "))
	variant := flag.String("variant", "alphabeta", "Agent variant: minimax, alphabeta, expectimax, directional, reflex or scorereflex")
	depth := flag.Int("depth", meta.DEPTH, "Number of full rounds searched per move")
	ghosts := flag.String("ghosts", "directional", "Ghost behaviour: random or directional")
	numGames := flag.Int("games", 1, "Number of games to play")
	seed := flag.Uint64("seed", 1, "Seed for ghosts and tie-breaks")
	experiment := flag.String("experiment", "", "Run an experiment instead: depth or throughput")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	switch *experiment {
	case "":
		config := metrics.AgentConfig{Variant: *variant, Depth: *depth, Ghosts: *ghosts}
		playGames(config, *layout, *numGames, *seed)
	case "depth":
		dir, err := experiments.RunDepthExperiment(game.LayoutNames(), meta.NUM_GAMES, *seed)
		if err != nil {
			log.Fatal().Err(err).Msg("depth experiment failed")
		}
		log.Info().Msgf("results stored in %s", dir)
	case "throughput":
		dir, err := experiments.RunThroughputExperiment(*layout, *depth, *seed)
		if err != nil {
			log.Fatal().Err(err).Msg("throughput experiment failed")
		}
		log.Info().Msgf("results stored in %s", dir)
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}
}

// playGames plays numGames games on layout and logs each result
func playGames(config metrics.AgentConfig, layout string, numGames int, seed uint64) {
	l, err := game.LoadLayout(layout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load layout")
	}

	wins := 0
	for i := 0; i < numGames; i++ {
		players, err := experiments.NewPlayers(config, l.NumGhosts(), seed+uint64(i)*uint64(len(l.Starts)))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create players")
		}

		state := game.NewGrid(l, game.NewStandardRules())
		e := engine.LocalEngine(layout, state, players)
		gameMetric, _, err := e.Run()
		if err != nil {
			log.Fatal().Err(err).Msgf("game %d failed", i+1)
		}
		if gameMetric.Win {
			wins++
		}

		log.Debug().Msgf("final state:\n%s", e.State)
		log.Info().Msgf("game %d of %d over after %d moves: win=%t score=%.0f average decision=%s",
			i+1, numGames, gameMetric.TotalMoves, gameMetric.Win, gameMetric.Score, gameMetric.AverageDecision)
	}
	log.Info().Msgf("won %d of %d games with %s at depth %d", wins, numGames, config.Variant, config.Depth)
}
