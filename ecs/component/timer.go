package component

import "time"

type TimerMode int

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer counts game time. A repeating timer wraps and keeps the remainder; a once
// timer stops at its duration.
type Timer struct {
	Duration time.Duration
	Elapsed  time.Duration
	Mode     TimerMode

	finished     bool
	justFinished bool
	times        int
}

func NewTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{Duration: d, Mode: mode}
}

func TimerFromSeconds(seconds float64, mode TimerMode) Timer {
	return NewTimer(time.Duration(seconds*float64(time.Second)), mode)
}

// Tick advances the timer by d.
func (t *Timer) Tick(d time.Duration) {
	t.justFinished = false
	t.times = 0
	if t.Mode == TimerOnce && t.finished {
		return
	}
	if d < 0 {
		d = 0
	}
	t.Elapsed += d

	if t.Mode == TimerRepeating {
		if t.Duration <= 0 {
			t.Elapsed = 0
			t.justFinished = true
			t.finished = true
			t.times = 1
			return
		}
		t.finished = false
		if t.Elapsed >= t.Duration {
			t.times = int(t.Elapsed / t.Duration)
			t.Elapsed %= t.Duration
			t.justFinished = true
			t.finished = true
		}
		return
	}

	if t.Elapsed >= t.Duration {
		t.Elapsed = t.Duration
		t.finished = true
		t.justFinished = true
		t.times = 1
	}
}

// JustFinished reports whether the last Tick crossed the duration.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Finished reports whether a once timer is done, or a repeating timer wrapped on the last Tick.
func (t *Timer) Finished() bool {
	return t.finished
}

// TimesFinished is the number of wraps during the last Tick.
func (t *Timer) TimesFinished() int {
	return t.times
}

// Fraction is elapsed/duration clamped to [0,1].
func (t *Timer) Fraction() float64 {
	if t.Duration <= 0 {
		return 1
	}
	f := float64(t.Elapsed) / float64(t.Duration)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func (t *Timer) Remaining() time.Duration {
	if t.Elapsed >= t.Duration {
		return 0
	}
	return t.Duration - t.Elapsed
}

func (t *Timer) Reset() {
	t.Elapsed = 0
	t.finished = false
	t.justFinished = false
	t.times = 0
}

// SetDuration changes the duration without touching elapsed time.
func (t *Timer) SetDuration(d time.Duration) {
	t.Duration = d
}
