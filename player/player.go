package player

import (
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/searcher"
	"pacman/utils"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Player decides the action of one agent. Players keep per-game state such as
// random generators and must not be shared between concurrent games.
type Player interface {
	// Act returns the action of agent in state and the metrics of the search
	// behind it, empty for players that do not search.
	Act(state game.State, agent int) (game.Action, metrics.SearchMetric, error)
}

// Searching plays the controlled agent with a tree searcher.
type Searching struct {
	searcher *searcher.Searcher
}

func NewSearching(s *searcher.Searcher) *Searching {
	return &Searching{searcher: s}
}

func (p *Searching) Searcher() *searcher.Searcher {
	return p.searcher
}

func (p *Searching) Act(state game.State, agent int) (game.Action, metrics.SearchMetric, error) {
	if agent != 0 {
		return game.Stop, metrics.SearchMetric{}, errors.Errorf("searching player controls agent 0, not %d", agent)
	}
	decision, err := p.searcher.Search(state)
	if err != nil {
		return game.Stop, metrics.SearchMetric{}, err
	}
	return decision.Action, decision.Metric, nil
}

// Reflex plays the controlled agent greedily: it evaluates the successor of
// every legal action and picks among the best at random.
type Reflex struct {
	evaluate game.Evaluate
	rng      *rand.Rand
}

func NewReflex(evaluate game.Evaluate, seed uint64) *Reflex {
	return &Reflex{
		evaluate: evaluate,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (p *Reflex) Act(state game.State, agent int) (game.Action, metrics.SearchMetric, error) {
	legal := state.LegalActions(agent)
	if len(legal) == 0 {
		return game.Stop, metrics.SearchMetric{}, errors.Wrapf(searcher.ErrNoLegalAction, "agent %d", agent)
	}

	values := make([]float64, len(legal))
	for i, action := range legal {
		values[i] = p.evaluate(state.Successor(agent, action))
	}
	best := utils.Extremes(values, func(a, b float64) bool { return a > b })
	return legal[best[p.rng.Intn(len(best))]], metrics.SearchMetric{}, nil
}
