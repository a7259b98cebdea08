package engine

import (
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/meta"
	"pacman/player"
	"pacman/utils"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"
)

// Local runs a game in-process, asking players[i] for the moves of agent i.
type Local struct {
	Layout   string
	State    game.State
	Players  []player.Player
	MaxMoves int
}

var _ Engine = (*Local)(nil)

func LocalEngine(layout string, state game.State, players []player.Player) *Local {
	if len(players) != state.NumAgents() {
		panic("number of players does not match number of agents")
	}

	return &Local{
		Layout:   layout,
		State:    state,
		Players:  players,
		MaxMoves: meta.MAX_TURNS,
	}
}

// Run executes the game loop until the game is over or MaxMoves moves were
// played. Only the controlled agent's moves are recorded.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		Layout:    e.Layout,
		StartTime: time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}
	decisions := []float64{}

	log.Debug().Msgf("starting game on %s with %d agents", e.Layout, len(e.Players))

	step := 0
	for ; step < e.MaxMoves && !game.IsTerminal(e.State); step++ {
		agent := step % len(e.Players)

		legal := e.State.LegalActions(agent)
		if len(legal) == 0 {
			break
		}

		action, searchMetric, err := e.Players[agent].Act(e.State, agent)
		if err != nil {
			return gameMetric, moveMetrics, errors.WithMessagef(err, "agent %d failed at step %d", agent, step)
		}
		if utils.FindIndex(legal, action) < 0 {
			return gameMetric, moveMetrics, errors.Errorf("agent %d chose illegal action %s at step %d", agent, action, step)
		}

		if agent == 0 {
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:         step,
				Agent:        agent,
				SearchMetric: searchMetric,
			})
			decisions = append(decisions, searchMetric.Duration.Seconds())
		}

		e.State = e.State.Successor(agent, action)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step
	gameMetric.Win = e.State.IsWin()
	gameMetric.Score = e.State.Score()
	if len(decisions) > 0 {
		gameMetric.AverageDecision = time.Duration(stat.Mean(decisions, nil) * float64(time.Second))
	}

	if game.IsTerminal(e.State) {
		log.Debug().Msgf("game on %s over after %d moves: win=%t score=%.0f", e.Layout, step, gameMetric.Win, gameMetric.Score)
	} else {
		log.Debug().Msgf("game on %s stopped after %d moves (no result yet)", e.Layout, step)
	}

	return gameMetric, moveMetrics, nil
}
