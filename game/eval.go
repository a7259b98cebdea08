package game

// Weights tunes the terms of EvaluateFeatures.
type Weights struct {
	Food      float64 // reward for closeness to the nearest food, divided by distance
	Remaining float64 // penalty per remaining food
	Threat    float64 // penalty for closeness to the nearest active ghost, divided by distance
	Prey      float64 // reward for closeness to the nearest scared ghost, divided by distance
	Capsule   float64 // bonus divided by the number of capsules left
}

// DefaultWeights weighs every closeness term equally and lightly penalizes
// remaining food on top of the score.
var DefaultWeights = Weights{
	Food:      1,
	Remaining: 1,
	Threat:    1,
	Prey:      1,
	Capsule:   1,
}

// EvaluateScore simply returns the game score, saturated on terminal states.
func EvaluateScore(s State) float64 {
	if s.IsLose() {
		return Loss
	}
	if s.IsWin() {
		return Win
	}
	return s.Score()
}

// EvaluateFeatures scores a state with DefaultWeights.
func EvaluateFeatures(s State) float64 {
	return DefaultWeights.Evaluate(s)
}

// Evaluator binds w into an Evaluate function.
func (w Weights) Evaluator() Evaluate {
	return w.Evaluate
}

// Evaluate combines the score with distances to food and ghosts. States
// without Board accessors are scored by EvaluateScore.
func (w Weights) Evaluate(s State) float64 {
	if s.IsLose() {
		return Loss
	}
	if s.IsWin() {
		return Win
	}
	b, ok := s.(Board)
	if !ok {
		return s.Score()
	}

	pos := b.AgentPosition(0)
	score := b.Score()

	// Closer food is better
	food := b.Food()
	score += w.Food / float64(nearestFood(pos, food))
	score -= w.Remaining * float64(len(food))

	// Active ghosts should stay far, scared ghosts are worth chasing
	var active, scared []Position
	for ghost := 1; ghost < b.NumAgents(); ghost++ {
		if b.ScaredTimer(ghost) > 0 {
			scared = append(scared, b.AgentPosition(ghost))
		} else {
			active = append(active, b.AgentPosition(ghost))
		}
	}
	if d := nearest(pos, active); d > 0 {
		score -= w.Threat / float64(d)
	}
	if d := nearest(pos, scared); d > 0 {
		score += w.Prey / float64(d)
	}

	// Grows as capsules are eaten, reaching the weight once none is left
	score += w.Capsule / float64(len(b.Capsules())+1)

	return score
}

// nearestFood returns the distance to the closest food, 1 when none is left
// so the closeness term stays bounded.
func nearestFood(pos Position, food []Position) int {
	if d := nearest(pos, food); d > 0 {
		return d
	}
	return 1
}

// nearest returns the smallest Manhattan distance from pos to targets, 0 when
// there are no targets.
func nearest(pos Position, targets []Position) int {
	if len(targets) == 0 {
		return 0
	}
	best := ManhattanDistance(pos, targets[0])
	for _, t := range targets[1:] {
		best = min(best, ManhattanDistance(pos, t))
	}
	return best
}
