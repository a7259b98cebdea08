package searcher

import (
	"fmt"
	"pacman/game"
)

// treeState is a synthetic game tree where agent i always has branching[i]
// actions. Leaves are addressed by the path of action indices, first action
// most significant.
type treeState struct {
	branching []int
	values    []float64
	path      []int
}

func newTree(branching []int, values ...float64) *treeState {
	return &treeState{branching: branching, values: values}
}

func (t *treeState) NumAgents() int {
	return len(t.branching)
}

func (t *treeState) LegalActions(agent int) []game.Action {
	return game.Actions[:t.branching[agent]]
}

func (t *treeState) Successor(agent int, action game.Action) game.State {
	if turn := t.turn(); agent != turn {
		panic(fmt.Sprintf("agent %d moved on agent %d's turn", agent, turn))
	}
	path := make([]int, len(t.path), len(t.path)+1)
	copy(path, t.path)
	return &treeState{
		branching: t.branching,
		values:    t.values,
		path:      append(path, int(action)),
	}
}

func (t *treeState) IsWin() bool {
	return false
}

func (t *treeState) IsLose() bool {
	return false
}

func (t *treeState) Score() float64 {
	return t.leaf()
}

func (t *treeState) turn() int {
	return len(t.path) % len(t.branching)
}

// leaf returns the value stored for the current path.
func (t *treeState) leaf() float64 {
	index := 0
	for ply, i := range t.path {
		index = index*t.branching[ply%len(t.branching)] + i
	}
	return t.values[index]
}

func evaluateTree(s game.State) float64 {
	return s.(*treeState).leaf()
}

// bruteForce computes the value of t searched for depth rounds, taking the
// maximum for agent 0 and aggregating opponents with opponent.
func bruteForce(t *treeState, depth int, opponent func([]float64) float64) float64 {
	if len(t.path) == depth*t.NumAgents() {
		return t.leaf()
	}
	agent := t.turn()
	actions := t.LegalActions(agent)
	values := make([]float64, len(actions))
	for i, a := range actions {
		values[i] = bruteForce(t.Successor(agent, a).(*treeState), depth, opponent)
	}
	if agent == 0 {
		best := values[0]
		for _, v := range values[1:] {
			best = max(best, v)
		}
		return best
	}
	return opponent(values)
}

func worst(values []float64) float64 {
	w := values[0]
	for _, v := range values[1:] {
		w = min(w, v)
	}
	return w
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
