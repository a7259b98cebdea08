package game

import "math"

// Saturating utilities for terminal states. They are finite so that weighted
// sums over them never produce NaN.
const (
	Win  = math.MaxFloat64
	Loss = -math.MaxFloat64
)

// State should be immutable - operations on State always return a new copy.
// Agent 0 is the controlled agent, agents 1..N-1 are opponents.
type State interface {
	NumAgents() int
	// LegalActions returns the agent's legal actions in a stable order
	LegalActions(agent int) []Action
	Successor(agent int, action Action) State
	IsWin() bool
	IsLose() bool
	Score() float64
}

// Board exposes the status accessors used by evaluations and opponent policies.
type Board interface {
	State
	AgentPosition(agent int) Position
	Food() []Position
	Capsules() []Position
	ScaredTimer(agent int) int
}

// Evaluate maps a state to a utility from the controlled agent's perspective,
// higher is better.
type Evaluate func(State) float64

// IsTerminal reports whether the game is over in s.
func IsTerminal(s State) bool {
	return s.IsWin() || s.IsLose()
}
