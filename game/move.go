package game

import "fmt"

// Action is a move on the grid.
type Action int

const (
	North Action = iota
	South
	East
	West
	Stop
)

// Actions lists every action in the order legal actions are generated.
var Actions = []Action{North, South, East, West, Stop}

var actionNames = map[Action]string{
	North: "North",
	South: "South",
	East:  "East",
	West:  "West",
	Stop:  "Stop",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Vector returns the displacement of a, scaled by speed.
func (a Action) Vector(speed float64) (dx, dy float64) {
	switch a {
	case North:
		return 0, speed
	case South:
		return 0, -speed
	case East:
		return speed, 0
	case West:
		return -speed, 0
	default:
		return 0, 0
	}
}

// Reverse returns the opposite direction, Stop reverses to itself.
func (a Action) Reverse() Action {
	switch a {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return a
	}
}

// Position is a cell on the grid. Y grows northwards.
type Position struct {
	X int
	Y int
}

// Step returns the neighbouring cell in direction a.
func (p Position) Step(a Action) Position {
	dx, dy := a.Vector(1)
	return Position{X: p.X + int(dx), Y: p.Y + int(dy)}
}

// ManhattanDistance returns |x1-x2| + |y1-y2|.
func ManhattanDistance(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
