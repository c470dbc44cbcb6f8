// meta/meta.go
package meta

// ITERATIONS defines the number of MCTS iterations per AI move.
const ITERATIONS = 800

// EXPLORATION defines the UCT exploration constant used by the CLI.
const EXPLORATION = 1.4

// SEED defines the default random seed.
const SEED = 1

// MAX_TURNS defines the longest game the engine plays (a full 7x6 board).
const MAX_TURNS = 42

// PARALLEL_GAMES defines how many experiment games run at once.
const PARALLEL_GAMES = 4
