package session

import "time"

// Timer is a scheduled function that can be stopped before it fires.
type Timer interface {
	Stop() bool
}

// Scheduler runs f after d without blocking the caller.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealScheduler uses time.AfterFunc.
type RealScheduler struct{}

func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
