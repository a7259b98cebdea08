package searcher

import (
	"math"
	"pacman/game"
	"pacman/utils"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Outcome is an opponent action with its probability.
type Outcome struct {
	Action      game.Action
	Probability float64
}

// Distribution lists outcomes in legal action order.
type Distribution []Outcome

// Policy models how a non-controlled agent picks among its legal actions.
type Policy func(s game.State, agent int) (Distribution, error)

// Probability returns the probability of action a, 0 if a is absent.
func (d Distribution) Probability(a game.Action) float64 {
	for _, o := range d {
		if o.Action == a {
			return o.Probability
		}
	}
	return 0
}

// Validate checks that d assigns a nonnegative probability to each legal
// action exactly once, nothing to any other action, and sums to 1.
func (d Distribution) Validate(legal []game.Action) error {
	if len(d) != len(legal) {
		return errors.Errorf("distribution has %d outcomes for %d legal actions", len(d), len(legal))
	}
	seen := make(map[game.Action]bool, len(d))
	probs := make([]float64, len(d))
	for i, o := range d {
		if utils.FindIndex(legal, o.Action) < 0 {
			return errors.Errorf("illegal action %s in distribution", o.Action)
		}
		if seen[o.Action] {
			return errors.Errorf("action %s appears twice in distribution", o.Action)
		}
		seen[o.Action] = true
		if o.Probability < 0 || math.IsNaN(o.Probability) {
			return errors.Errorf("action %s has probability %v", o.Action, o.Probability)
		}
		probs[i] = o.Probability
	}
	if sum := floats.Sum(probs); math.Abs(sum-1) > distributionTolerance {
		return errors.Errorf("distribution sums to %v", sum)
	}
	return nil
}

// Uniform gives every legal action the same probability.
func Uniform(s game.State, agent int) (Distribution, error) {
	legal := s.LegalActions(agent)
	if len(legal) == 0 {
		return nil, errors.Errorf("agent %d has no legal actions", agent)
	}
	p := 1.0 / float64(len(legal))
	d := make(Distribution, len(legal))
	for i, a := range legal {
		d[i] = Outcome{Action: a, Probability: p}
	}
	return d, nil
}

// Spread decides which actions share the residual mass of a Directional policy.
type Spread int

const (
	SpreadOverRest Spread = iota // actions outside the best set
	SpreadOverAll                // every legal action
)

type DirectionalConfig struct {
	BestProb    float64 // mass split evenly over the best actions
	ScaredSpeed float64 // step length while fleeing
	Spread      Spread
}

// DefaultDirectional is the behaviour of the directional ghosts: 0.8 on the
// best actions plus 0.2 spread over every legal action.
var DefaultDirectional = DirectionalConfig{
	BestProb:    BestProb,
	ScaredSpeed: ScaredSpeed,
	Spread:      SpreadOverAll,
}

// ConcentratedDirectional keeps the 0.2 residual off the best actions, so two
// actions split exactly 0.8 and 0.2.
var ConcentratedDirectional = DirectionalConfig{
	BestProb:    BestProb,
	ScaredSpeed: ScaredSpeed,
	Spread:      SpreadOverRest,
}

// Directional models an opponent that flees the controlled agent while its
// scared timer runs and pursues it otherwise. Actions reaching the best
// post-move distance share config.BestProb, the remaining mass is spread
// according to config.Spread, and the result is renormalized.
func Directional(config DirectionalConfig) Policy {
	return func(s game.State, agent int) (Distribution, error) {
		b, ok := s.(game.Board)
		if !ok {
			return nil, errors.Wrapf(ErrUnsupportedState, "directional policy for agent %d", agent)
		}
		legal := b.LegalActions(agent)
		if len(legal) == 0 {
			return nil, errors.Errorf("agent %d has no legal actions", agent)
		}

		fleeing := b.ScaredTimer(agent) > 0
		speed := 1.0
		better := func(a, b float64) bool { return a < b }
		if fleeing {
			speed = config.ScaredSpeed
			better = func(a, b float64) bool { return a > b }
		}

		pos := b.AgentPosition(agent)
		target := b.AgentPosition(0)
		distances := make([]float64, len(legal))
		for i, a := range legal {
			dx, dy := a.Vector(speed)
			distances[i] = math.Abs(float64(pos.X)+dx-float64(target.X)) +
				math.Abs(float64(pos.Y)+dy-float64(target.Y))
		}

		best := utils.Extremes(distances, better)
		weights := make([]float64, len(legal))
		for _, i := range best {
			weights[i] += config.BestProb / float64(len(best))
		}
		rest := residualIndices(len(legal), best, config.Spread)
		for _, i := range rest {
			weights[i] += (1 - config.BestProb) / float64(len(rest))
		}
		floats.Scale(1/floats.Sum(weights), weights)

		d := make(Distribution, len(legal))
		for i, a := range legal {
			d[i] = Outcome{Action: a, Probability: weights[i]}
		}
		return d, nil
	}
}

// residualIndices returns the indices sharing the residual mass. When every
// action is best, all of them share it.
func residualIndices(n int, best []int, spread Spread) []int {
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	if spread == SpreadOverAll || len(best) == n {
		return all
	}
	rest := make([]int, 0, n-len(best))
	for _, i := range all {
		if utils.FindIndex(best, i) < 0 {
			rest = append(rest, i)
		}
	}
	return rest
}
