// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines playing games in parallel.
const GO_ROUTINES = 8

// GAMES defines the number of games per experiment.
const GAMES = 100

// MAX_MOVES defines the number of decisions before a game is cut off.
const MAX_MOVES = 500

// SEED defines the seed of the first game; game i uses SEED+i.
const SEED = 42

const TEMPERATURE = 1.0

const OUT_DIR = "experiments/results"

const LOG_LEVEL = "info"
