package player

import (
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/searcher"

	"golang.org/x/exp/rand"
)

// Ghost plays an opponent by sampling the same policies the searcher uses to
// model it.
type Ghost struct {
	policy searcher.Policy
	rng    *rand.Rand
}

func NewGhost(policy searcher.Policy, seed uint64) *Ghost {
	return &Ghost{
		policy: policy,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// NewRandomGhost moves uniformly at random.
func NewRandomGhost(seed uint64) *Ghost {
	return NewGhost(searcher.Uniform, seed)
}

// NewDirectionalGhost mostly chases the controlled agent, or flees it while scared.
func NewDirectionalGhost(seed uint64) *Ghost {
	return NewGhost(searcher.Directional(searcher.DefaultDirectional), seed)
}

func (g *Ghost) Policy() searcher.Policy {
	return g.policy
}

func (g *Ghost) Act(state game.State, agent int) (game.Action, metrics.SearchMetric, error) {
	dist, err := g.policy(state, agent)
	if err != nil {
		return game.Stop, metrics.SearchMetric{}, searcher.PolicyError(agent, err)
	}
	if err := dist.Validate(state.LegalActions(agent)); err != nil {
		return game.Stop, metrics.SearchMetric{}, searcher.PolicyError(agent, err)
	}
	return sample(dist, g.rng.Float64()), metrics.SearchMetric{}, nil
}

// sample picks the outcome whose cumulative probability first exceeds u.
func sample(dist searcher.Distribution, u float64) game.Action {
	cumulative := 0.0
	for _, o := range dist {
		cumulative += o.Probability
		if u < cumulative {
			return o.Action
		}
	}
	return dist[len(dist)-1].Action // Rounding errors
}
