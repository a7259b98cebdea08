package game

type StandardRules struct {
	Penalty     float64
	Food        float64
	WinBonus    float64
	LoseMalus   float64
	GhostBonus  float64
	ScaredTurns int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Penalty:     1,
		Food:        10,
		WinBonus:    500,
		LoseMalus:   500,
		GhostBonus:  200,
		ScaredTurns: 40,
	}
}

func (sr *StandardRules) TimePenalty() float64 {
	return sr.Penalty
}

func (sr *StandardRules) FoodReward() float64 {
	return sr.Food
}

func (sr *StandardRules) WinReward() float64 {
	return sr.WinBonus
}

func (sr *StandardRules) LosePenalty() float64 {
	return sr.LoseMalus
}

func (sr *StandardRules) ScaredGhostReward() float64 {
	return sr.GhostBonus
}

func (sr *StandardRules) ScaredTime() int {
	return sr.ScaredTurns
}
