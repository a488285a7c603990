package game

type StateHash uint64

// NoPlayer marks an unused seat reference.
const NoPlayer = -1

// Evaluate scores a position between -1 and 1 from the observer's point of view,
// using only what the observer can see.
type Evaluate func(View) float64
