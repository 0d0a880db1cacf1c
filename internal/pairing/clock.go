package pairing

import (
	"math/rand/v2"
	"time"
)

type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock lets tests drive the countdown without sleeping.
type Clock interface {
	NewTicker(d time.Duration) Ticker
	Now() time.Time
}

// Random decides the outcome of a pairing attempt. *rand.Rand satisfies it.
type Random interface {
	Float64() float64
	IntN(n int) int
}

type realClock struct{}

type realTicker struct {
	t *time.Ticker
}

// RealClock is backed by package time.
func RealClock() Clock {
	return realClock{}
}

func (realClock) NewTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (r realTicker) C() <-chan time.Time {
	return r.t.C
}

func (r realTicker) Stop() {
	r.t.Stop()
}

type globalRandom struct{}

// DefaultRandom uses the goroutine-safe top-level functions of math/rand/v2.
func DefaultRandom() Random {
	return globalRandom{}
}

func (globalRandom) Float64() float64 {
	return rand.Float64()
}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n)
}
