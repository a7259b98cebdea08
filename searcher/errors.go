package searcher

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrConfiguration reports an invalid depth, an unknown variant or a
	// missing policy for ExpectimaxWeighted.
	ErrConfiguration = errors.New("invalid search configuration")
	// ErrEvaluation reports an evaluation that is NaN or infinite.
	ErrEvaluation = errors.New("evaluation is not a finite value")
	// ErrNoLegalAction reports a root state where the controlled agent cannot move.
	ErrNoLegalAction = errors.New("no legal action for the controlled agent")
	// ErrInvalidPolicy reports a policy that failed or returned something other
	// than a distribution over the legal actions.
	ErrInvalidPolicy = errors.New("invalid policy distribution")
	// ErrUnsupportedState reports a state without the game.Board accessors a
	// policy needs.
	ErrUnsupportedState = errors.New("state does not expose board accessors")
)

// PolicyError reports a failed or malformed policy for agent. The result
// matches both ErrInvalidPolicy and err under errors.Is, which a single
// errors.Wrap cannot express.
func PolicyError(agent int, err error) error {
	return errors.WithStack(fmt.Errorf("%w: agent %d: %w", ErrInvalidPolicy, agent, err))
}
