package engine

import (
	"time"
)

// TimeHandler tracks the wall-clock budget of one iterative-deepening search.
// It is only consulted between completed depths.
type TimeHandler struct {
	budget        time.Duration
	overrun       float64
	started       time.Time
	lastIteration time.Duration
	prevIteration time.Duration
}

func (th *TimeHandler) StartTime(budget time.Duration, overrun float64) {
	th.budget = budget
	th.overrun = overrun
	th.started = time.Now()
	th.lastIteration = 0
	th.prevIteration = 0
}

// IterationDone records how long the depth that just completed took.
func (th *TimeHandler) IterationDone(took time.Duration) {
	th.prevIteration = th.lastIteration
	th.lastIteration = took
}

// Elapsed is the time spent since StartTime.
func (th *TimeHandler) Elapsed() time.Duration { return time.Since(th.started) }

// SoftTimeExceeded is true once the budget is used up.
func (th *TimeHandler) SoftTimeExceeded() bool {
	return th.Elapsed() >= th.budget
}

// ShouldStopEarly predicts the next depth from the growth of the last two and
// reports whether it would end past overrun times the budget.
func (th *TimeHandler) ShouldStopEarly() bool {
	if th.overrun <= 0 || th.prevIteration <= 0 || th.lastIteration <= 0 {
		return false
	}
	growth := float64(th.lastIteration) / float64(th.prevIteration)
	growth = Clamp(growth, 2, 12)
	predicted := time.Duration(float64(th.lastIteration) * growth)
	return th.Elapsed()+predicted > time.Duration(float64(th.budget)*th.overrun)
}
