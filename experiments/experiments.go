package experiments

import (
	"pacman/engine"
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/meta"
	"pacman/player"
	"pacman/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Controlled agents that do not search
const (
	Reflex      = "reflex"      // one-ply greedy on the feature evaluation
	ScoreReflex = "scorereflex" // one-ply greedy on the raw score
)

// Preset agents
var (
	// Competition searches 3 rounds with alpha-beta and the feature evaluation.
	Competition = metrics.AgentConfig{ID: 4, Variant: "alphabeta", Depth: 3, Ghosts: "directional"}
	// OriginalReflex only looks at the score of the next state.
	OriginalReflex = metrics.AgentConfig{ID: 9, Variant: ScoreReflex, Depth: 1, Ghosts: "directional"}
)

var depthConfigs = []metrics.AgentConfig{
	{ID: 0, Variant: Reflex, Depth: 1, Ghosts: "directional"}, // Baseline
	{ID: 1, Variant: "minimax", Depth: 1, Ghosts: "directional"},
	{ID: 2, Variant: "minimax", Depth: 2, Ghosts: "directional"},
	{ID: 3, Variant: "alphabeta", Depth: 2, Ghosts: "directional"},
	Competition,
	{ID: 5, Variant: "expectimax", Depth: 2, Ghosts: "directional"},
	{ID: 6, Variant: "expectimax", Depth: 3, Ghosts: "directional"},
	{ID: 7, Variant: "directional", Depth: 2, Ghosts: "directional"},
	{ID: 8, Variant: "directional", Depth: 3, Ghosts: "directional"},
	OriginalReflex,
}

// Result holds every record of an experiment.
type Result struct {
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
	Summary []metrics.SummaryRecord
}

// RunDepthExperiment compares variants and depths against directional ghosts
// and returns the directory the records were written to.
func RunDepthExperiment(layouts []string, games int, seed uint64) (string, error) {
	return runExperiment("depth", depthConfigs, layouts, games, seed)
}

func runExperiment(name string, configs []metrics.AgentConfig, layouts []string, games int, seed uint64) (string, error) {
	log.Info().Msgf("starting %s experiment...", name)

	result, err := Play(configs, layouts, games, seed)
	if err != nil {
		return "", errors.WithMessagef(err, "%s experiment failed", name)
	}

	log.Info().Msgf("completed %s experiment", name)

	// Store experiment metadata
	writer, err := metrics.NewWriter(name)
	if err != nil {
		return "", errors.WithMessage(err, "failed to create experiment writer")
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", errors.WithMessage(err, "failed to store agent configs")
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	err = writer.WriteGameRecords(result.Games)
	if err != nil {
		return "", errors.WithMessage(err, "failed to write game records")
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(result.Moves)
	if err != nil {
		return "", errors.WithMessage(err, "failed to write move records")
	}
	log.Info().Msg("stored move records")

	err = writer.WriteSummary(result.Summary)
	if err != nil {
		return "", errors.WithMessage(err, "failed to write summary")
	}
	for _, s := range result.Summary {
		log.Info().Msgf("agent %d on %s: won %d of %d, average score %.1f, average decision %s",
			s.Agent, s.Layout, s.Wins, s.Games, s.AverageScore, s.AverageDecision)
	}

	return writer.Dir(), nil
}

type job struct {
	id     int
	config metrics.AgentConfig
	layout string
	seed   uint64
}

// Play runs games games per config and layout, meta.GO_ROUTINES at a time.
// Records come back in config, layout, game order whatever the scheduling.
func Play(configs []metrics.AgentConfig, layouts []string, games int, seed uint64) (Result, error) {
	jobs := []job{}
	for _, config := range configs {
		for _, layout := range layouts {
			for i := 0; i < games; i++ {
				jobs = append(jobs, job{
					id:     len(jobs) + 1,
					config: config,
					layout: layout,
					seed:   seed + uint64(len(jobs)),
				})
			}
		}
	}

	gameRecords := make([]metrics.GameRecord, len(jobs))
	moveMetrics := make([][]metrics.MoveMetric, len(jobs))

	var g errgroup.Group
	g.SetLimit(meta.GO_ROUTINES)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			log.Info().Msgf("starting game %d of %d (agent %d on %s)...", j.id, len(jobs), j.config.ID, j.layout)

			gameMetric, moves, err := runGame(j.config, j.layout, j.seed)
			if err != nil {
				return errors.WithMessagef(err, "game %d", j.id)
			}
			gameRecords[i] = metrics.GameRecord{
				ID:         j.id,
				Agent:      j.config.ID,
				GameMetric: gameMetric,
			}
			moveMetrics[i] = moves

			log.Info().Msgf("completed game %d: win=%t score=%.0f", j.id, gameMetric.Win, gameMetric.Score)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	moveRecords := []metrics.MoveRecord{}
	for i, moves := range moveMetrics {
		for _, mm := range moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       gameRecords[i].ID,
				MoveMetric: mm,
			})
		}
	}

	return Result{
		Games:   gameRecords,
		Moves:   moveRecords,
		Summary: summarize(configs, layouts, gameRecords),
	}, nil
}

// runGame executes a single game on layout and returns its metrics
func runGame(config metrics.AgentConfig, layout string, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	l, err := game.LoadLayout(layout)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	players, err := NewPlayers(config, l.NumGhosts(), seed)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	e := engine.LocalEngine(layout, game.NewGrid(l, game.NewStandardRules()), players)
	return e.Run()
}

// NewPlayers creates the controlled agent described by config followed by
// numGhosts ghosts. Every player gets its own seed derived from seed.
func NewPlayers(config metrics.AgentConfig, numGhosts int, seed uint64) ([]player.Player, error) {
	controlled, err := newControlled(config, seed)
	if err != nil {
		return nil, err
	}

	players := []player.Player{controlled}
	for i := 1; i <= numGhosts; i++ {
		ghost, err := newGhost(config.Ghosts, seed+uint64(i))
		if err != nil {
			return nil, err
		}
		players = append(players, ghost)
	}
	return players, nil
}

func newControlled(config metrics.AgentConfig, seed uint64) (player.Player, error) {
	switch config.Variant {
	case Reflex:
		return player.NewReflex(game.EvaluateFeatures, seed), nil
	case ScoreReflex:
		return player.NewReflex(game.EvaluateScore, seed), nil
	}

	variant, err := searcher.ParseVariant(config.Variant)
	if err != nil {
		return nil, err
	}
	options := []searcher.Option{
		searcher.WithTieBreakSeed(seed),
		searcher.WithMetrics(),
	}
	if variant == searcher.ExpectimaxWeighted {
		// Model the ghosts the agent actually plays against
		policy, err := ghostPolicy(config.Ghosts)
		if err != nil {
			return nil, err
		}
		options = append(options, searcher.WithPolicy(policy))
	}

	s, err := searcher.New(variant, config.Depth, options...)
	if err != nil {
		return nil, err
	}
	return player.NewSearching(s), nil
}

func newGhost(kind string, seed uint64) (player.Player, error) {
	policy, err := ghostPolicy(kind)
	if err != nil {
		return nil, err
	}
	return player.NewGhost(policy, seed), nil
}

// ghostPolicy returns the policy ghosts of kind sample their moves from.
func ghostPolicy(kind string) (searcher.Policy, error) {
	switch kind {
	case "random":
		return searcher.Uniform, nil
	case "directional":
		return searcher.Directional(searcher.DefaultDirectional), nil
	default:
		return nil, errors.Errorf("unknown ghost kind %q", kind)
	}
}
