package game

type Rules interface {
	TimePenalty() float64
	FoodReward() float64
	WinReward() float64
	LosePenalty() float64
	ScaredGhostReward() float64
	ScaredTime() int
}
