package engine

// Betting limits in minor currency units
const (
	MinBetAmount int64 = 1
	MaxBetAmount int64 = 1_000_000
)

// MinMatchCount is the shortest run of matching symbols that can pay,
// regardless of paytable values.
const MinMatchCount = 3
