package searcher

import (
	"math"
	"pacman/experiments/metrics"
	"pacman/game"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// window holds the alpha-beta bounds: alpha is the value the maximizer can
// already guarantee, beta the value the minimizer can already guarantee.
type window struct {
	alpha float64
	beta  float64
}

var fullWindow = window{alpha: math.Inf(-1), beta: math.Inf(1)}

// aggregate computes the value of a node owned by a non-controlled agent.
type aggregate func(s game.State, agent int, actions []game.Action, depth int, w window) (float64, error)

// engine is the state of one search. It is created per call and discarded.
type engine struct {
	numAgents int
	evaluate  game.Evaluate
	opponent  aggregate
	prune     bool
	metrics   metrics.Collector
}

// next advances the turn, spending one unit of depth per full round.
func (e *engine) next(agent, depth int) (int, int) {
	agent++
	if agent == e.numAgents {
		return 0, depth - 1
	}
	return agent, depth
}

// root returns the tied best actions for agent 0 and their value.
func (e *engine) root(s game.State, depth int) ([]game.Action, float64, error) {
	actions := s.LegalActions(0)
	if len(actions) == 0 {
		return nil, 0, ErrNoLegalAction
	}
	e.metrics.AddNode()

	nextAgent, nextDepth := e.next(0, depth)
	best := math.Inf(-1)
	var tied []game.Action
	for _, action := range actions {
		w := fullWindow
		if e.prune && len(tied) > 0 {
			// Values tying best are exact only if they lie strictly inside the window
			w.alpha = math.Nextafter(best, math.Inf(-1))
		}
		v, err := e.value(s.Successor(0, action), nextAgent, nextDepth, w)
		if err != nil {
			return nil, 0, err
		}
		switch {
		case v > best:
			best = v
			tied = []game.Action{action}
		case v == best:
			tied = append(tied, action)
		}
	}
	return tied, best, nil
}

func (e *engine) value(s game.State, agent, depth int, w window) (float64, error) {
	e.metrics.AddNode()
	if depth == 0 || game.IsTerminal(s) {
		return e.leaf(s)
	}
	actions := s.LegalActions(agent)
	if len(actions) == 0 {
		return e.leaf(s)
	}
	if agent == 0 {
		return e.maxValue(s, actions, depth, w)
	}
	return e.opponent(s, agent, actions, depth, w)
}

func (e *engine) leaf(s game.State) (float64, error) {
	e.metrics.AddLeaf()
	v := e.evaluate(s)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Wrapf(ErrEvaluation, "evaluated to %v", v)
	}
	return v, nil
}

func (e *engine) maxValue(s game.State, actions []game.Action, depth int, w window) (float64, error) {
	nextAgent, nextDepth := e.next(0, depth)
	best := math.Inf(-1)
	for _, action := range actions {
		v, err := e.value(s.Successor(0, action), nextAgent, nextDepth, w)
		if err != nil {
			return 0, err
		}
		best = max(best, v)
		if e.prune {
			if best >= w.beta {
				e.metrics.AddCutoff()
				return best, nil
			}
			w.alpha = max(w.alpha, best)
		}
	}
	return best, nil
}

func (e *engine) minValue(s game.State, agent int, actions []game.Action, depth int, w window) (float64, error) {
	nextAgent, nextDepth := e.next(agent, depth)
	best := math.Inf(1)
	for _, action := range actions {
		v, err := e.value(s.Successor(agent, action), nextAgent, nextDepth, w)
		if err != nil {
			return 0, err
		}
		best = min(best, v)
		if e.prune {
			if best <= w.alpha {
				e.metrics.AddCutoff()
				return best, nil
			}
			w.beta = min(w.beta, best)
		}
	}
	return best, nil
}

// expectedValue averages children under policy. Chance nodes never prune, so
// children are searched with the full window.
func (e *engine) expectedValue(policy Policy) aggregate {
	return func(s game.State, agent int, actions []game.Action, depth int, _ window) (float64, error) {
		dist, err := policy(s, agent)
		if err != nil {
			return 0, PolicyError(agent, err)
		}
		if err := dist.Validate(actions); err != nil {
			return 0, PolicyError(agent, err)
		}

		nextAgent, nextDepth := e.next(agent, depth)
		probs := make([]float64, len(dist))
		values := make([]float64, len(dist))
		for i, outcome := range dist {
			v, err := e.value(s.Successor(agent, outcome.Action), nextAgent, nextDepth, fullWindow)
			if err != nil {
				return 0, err
			}
			probs[i] = outcome.Probability
			values[i] = v
		}
		return saturate(floats.Dot(probs, values)), nil
	}
}

// saturate clamps v into [game.Loss, game.Win]; sums of saturated values may
// round past them.
func saturate(v float64) float64 {
	return min(max(v, game.Loss), game.Win)
}
