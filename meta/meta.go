// meta/meta.go
package meta

// GO_ROUTINES defines the number of games an experiment plays concurrently.
const GO_ROUTINES = 8

// DEPTH defines the default number of full rounds searched per decision.
const DEPTH = 2

// NUM_GAMES defines the number of games per experiment match-up.
const NUM_GAMES = 10

// MAX_TURNS defines the number of moves after which a game is abandoned.
const MAX_TURNS = 500

// LAYOUT defines the default layout name.
const LAYOUT = "smallClassic"
