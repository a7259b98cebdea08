package game

import (
	"fmt"
	"pacman/utils"
	"strings"
)

type agentState struct {
	Position    Position
	Direction   Action // last direction moved, Stop at spawn
	ScaredTimer int
}

// Grid is the reference State: agent 0 collects food on a grid while ghosts
// (agents 1..N-1) chase it. Slices are shared between successors and never
// modified in place.
type Grid struct {
	Layout   *Layout
	Rules    Rules
	agents   []agentState
	food     []Position
	capsules []Position
	score    float64
	win      bool
	lose     bool
}

// NewGrid initializes and returns the starting state of layout l.
func NewGrid(l *Layout, rules Rules) *Grid {
	agents := make([]agentState, len(l.Starts))
	for i, start := range l.Starts {
		agents[i] = agentState{Position: start, Direction: Stop}
	}
	return &Grid{
		Layout:   l,
		Rules:    rules,
		agents:   agents,
		food:     append([]Position{}, l.Food...),
		capsules: append([]Position{}, l.Capsules...),
	}
}

func (g *Grid) copy() *Grid {
	agents := make([]agentState, len(g.agents))
	copy(agents, g.agents)
	c := *g
	c.agents = agents
	return &c
}

func (g *Grid) NumAgents() int {
	return len(g.agents)
}

func (g *Grid) IsWin() bool {
	return g.win
}

func (g *Grid) IsLose() bool {
	return g.lose
}

func (g *Grid) Score() float64 {
	return g.score
}

func (g *Grid) AgentPosition(agent int) Position {
	return g.agents[agent].Position
}

func (g *Grid) ScaredTimer(agent int) int {
	return g.agents[agent].ScaredTimer
}

func (g *Grid) Food() []Position {
	return g.food
}

func (g *Grid) Capsules() []Position {
	return g.capsules
}

// LegalActions returns no actions once the game is over. The controlled agent
// may stop, ghosts may neither stop nor reverse unless they have no other way out.
func (g *Grid) LegalActions(agent int) []Action {
	if g.win || g.lose {
		return nil
	}

	a := g.agents[agent]
	actions := make([]Action, 0, len(Actions))
	for _, action := range Actions {
		if action == Stop {
			continue
		}
		if !g.Layout.IsWall(a.Position.Step(action)) {
			actions = append(actions, action)
		}
	}

	if agent == 0 {
		return append(actions, Stop)
	}

	if len(actions) > 1 && a.Direction != Stop {
		reverse := a.Direction.Reverse()
		for i, action := range actions {
			if action == reverse {
				actions = append(actions[:i], actions[i+1:]...)
				break
			}
		}
	}
	if len(actions) == 0 { // Boxed in
		actions = append(actions, Stop)
	}
	return actions
}

// Successor returns the state after agent plays action. It panics on an
// illegal action.
func (g *Grid) Successor(agent int, action Action) State {
	if !g.isLegal(agent, action) {
		panic(fmt.Sprintf("illegal action %s for agent %d", action, agent))
	}

	next := g.copy()
	if agent == 0 {
		next.moveAgent(action)
		for ghost := 1; ghost < len(next.agents); ghost++ {
			next.checkCollision(ghost)
		}
	} else {
		next.moveGhost(agent, action)
		next.checkCollision(agent)
	}
	return next
}

func (g *Grid) isLegal(agent int, action Action) bool {
	return utils.FindIndex(g.LegalActions(agent), action) >= 0
}

func (g *Grid) moveAgent(action Action) {
	a := &g.agents[0]
	a.Position = a.Position.Step(action)
	if action != Stop {
		a.Direction = action
	}
	g.score -= g.Rules.TimePenalty()

	if i := utils.FindIndex(g.food, a.Position); i >= 0 {
		g.food = remove(g.food, i)
		g.score += g.Rules.FoodReward()
		if len(g.food) == 0 {
			g.score += g.Rules.WinReward()
			g.win = true
		}
	}

	if i := utils.FindIndex(g.capsules, a.Position); i >= 0 {
		g.capsules = remove(g.capsules, i)
		for ghost := 1; ghost < len(g.agents); ghost++ {
			g.agents[ghost].ScaredTimer = g.Rules.ScaredTime()
		}
	}
}

func (g *Grid) moveGhost(agent int, action Action) {
	a := &g.agents[agent]
	a.Position = a.Position.Step(action)
	a.Direction = action
	if a.ScaredTimer > 0 {
		a.ScaredTimer--
	}
}

func (g *Grid) checkCollision(ghost int) {
	if g.win || g.lose {
		return
	}
	a := &g.agents[ghost]
	if a.Position != g.agents[0].Position {
		return
	}

	if a.ScaredTimer > 0 {
		g.score += g.Rules.ScaredGhostReward()
		*a = agentState{Position: g.Layout.Starts[ghost], Direction: Stop}
		return
	}
	g.score -= g.Rules.LosePenalty()
	g.lose = true
}

// String renders the grid, one row per line, northmost row first.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := g.Layout.Height - 1; y >= 0; y-- {
		for x := 0; x < g.Layout.Width; x++ {
			sb.WriteByte(g.symbol(Position{X: x, Y: y}))
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "score: %.0f", g.score)
	return sb.String()
}

func (g *Grid) symbol(p Position) byte {
	if g.agents[0].Position == p {
		return 'P'
	}
	for _, a := range g.agents[1:] {
		if a.Position == p {
			if a.ScaredTimer > 0 {
				return 'S'
			}
			return 'G'
		}
	}
	switch {
	case g.Layout.IsWall(p):
		return '%'
	case utils.FindIndex(g.food, p) >= 0:
		return '.'
	case utils.FindIndex(g.capsules, p) >= 0:
		return 'o'
	default:
		return ' '
	}
}

// remove returns a new slice without index i; the input is left untouched.
func remove(positions []Position, i int) []Position {
	out := make([]Position, 0, len(positions)-1)
	out = append(out, positions[:i]...)
	return append(out, positions[i+1:]...)
}
