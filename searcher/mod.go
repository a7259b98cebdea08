package searcher

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Variant selects how nodes of non-controlled agents aggregate their children.
type Variant int

const (
	Minimax            Variant = iota // worst case
	AlphaBeta                         // worst case with pruning
	ExpectimaxUniform                 // average under Uniform
	ExpectimaxWeighted                // average under the configured Policy
)

var variantNames = []string{"minimax", "alphabeta", "expectimax", "directional"}

func (v Variant) String() string {
	if v.valid() {
		return variantNames[v]
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

func (v Variant) valid() bool {
	return v >= Minimax && v <= ExpectimaxWeighted
}

// ParseVariant maps "minimax", "alphabeta", "expectimax" or "directional" to a
// Variant, ignoring case.
func ParseVariant(name string) (Variant, error) {
	for i, n := range variantNames {
		if strings.EqualFold(name, n) {
			return Variant(i), nil
		}
	}
	return 0, errors.Wrapf(ErrConfiguration, "unknown variant %q", name)
}
