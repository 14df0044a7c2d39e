package engine

// Status is the execution state machine position. Transitions are
// Idle -> Executing -> Succeeded|Failed -> Idle; everything else is invalid.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusExecuting Status = "executing"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// CanTransition reports whether moving from s to next is a legal transition.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusIdle:
		return next == StatusExecuting
	case StatusExecuting:
		return next == StatusSucceeded || next == StatusFailed
	case StatusSucceeded, StatusFailed:
		return next == StatusIdle
	}
	return false
}
