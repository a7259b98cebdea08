package searcher

import (
	"pacman/experiments/metrics"
	"pacman/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(s *Searcher)

// Decision is the outcome of a search from the controlled agent's turn.
type Decision struct {
	Action game.Action
	Value  float64
	Metric metrics.SearchMetric
}

// Searcher picks actions for agent 0 by depth-limited multi-agent tree search.
// It is immutable after New and safe for concurrent use.
type Searcher struct {
	variant  Variant
	depth    int
	evaluate game.Evaluate
	policy   Policy
	seed     uint64
	seeded   bool
	metrics  bool
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithPolicy sets the opponent model used by ExpectimaxWeighted.
func WithPolicy(policy Policy) Option {
	return func(s *Searcher) {
		if policy != nil {
			s.policy = policy
		}
	}
}

// WithTieBreakSeed breaks ties between equally good root actions at random,
// with a generator seeded by seed on every search. Without it the first best
// action in legal order wins.
func WithTieBreakSeed(seed uint64) Option {
	return func(s *Searcher) {
		s.seed = seed
		s.seeded = true
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = true
	}
}

// New returns a Searcher looking depth full rounds ahead.
func New(variant Variant, depth int, options ...Option) (*Searcher, error) {
	s := &Searcher{ // Default values
		variant:  variant,
		depth:    depth,
		evaluate: game.EvaluateFeatures,
	}
	for _, option := range options {
		option(s)
	}

	if !variant.valid() {
		return nil, errors.Wrapf(ErrConfiguration, "unknown variant %d", int(variant))
	}
	if depth <= 0 {
		return nil, errors.Wrapf(ErrConfiguration, "depth %d must be positive", depth)
	}
	if variant == ExpectimaxWeighted && s.policy == nil {
		return nil, errors.Wrapf(ErrConfiguration, "variant %s requires a policy", variant)
	}
	return s, nil
}

func (s *Searcher) Variant() Variant {
	return s.variant
}

func (s *Searcher) Depth() int {
	return s.depth
}

// Policy returns the opponent model of ExpectimaxWeighted, nil for other variants
// unless one was set.
func (s *Searcher) Policy() Policy {
	return s.policy
}

// FindNextAction returns the action chosen for agent 0 in state.
func (s *Searcher) FindNextAction(state game.State) (game.Action, error) {
	decision, err := s.Search(state)
	if err != nil {
		return game.Stop, err
	}
	return decision.Action, nil
}

// Search runs the tree search rooted at agent 0 and returns the chosen action,
// its value and, when enabled, the search metrics.
func (s *Searcher) Search(state game.State) (Decision, error) {
	collector := metrics.NewDummyCollector()
	if s.metrics {
		collector = metrics.NewCollector()
	}
	collector.Start(s.variant.String(), s.depth)

	e := s.newEngine(state.NumAgents(), collector)
	tied, value, err := e.root(state, s.depth)
	if err != nil {
		return Decision{}, err
	}

	decision := Decision{
		Action: s.breakTie(tied),
		Value:  value,
		Metric: collector.Complete(),
	}
	log.Debug().Msgf("%s search at depth %d chose %s with value %.3f (%d nodes)",
		s.variant, s.depth, decision.Action, value, decision.Metric.Nodes)
	return decision, nil
}

func (s *Searcher) newEngine(numAgents int, collector metrics.Collector) *engine {
	e := &engine{
		numAgents: numAgents,
		evaluate:  s.evaluate,
		metrics:   collector,
	}
	switch s.variant {
	case Minimax:
		e.opponent = e.minValue
	case AlphaBeta:
		e.opponent = e.minValue
		e.prune = true
	case ExpectimaxUniform:
		e.opponent = e.expectedValue(Uniform)
	case ExpectimaxWeighted:
		e.opponent = e.expectedValue(s.policy)
	}
	return e
}

func (s *Searcher) breakTie(tied []game.Action) game.Action {
	if !s.seeded || len(tied) == 1 {
		return tied[0]
	}
	rng := rand.New(rand.NewSource(s.seed))
	return tied[rng.Intn(len(tied))]
}
