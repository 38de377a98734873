package session

import "time"

// Animation is the cancelable heating task. Progress is sampled against a
// monotonic start time on every frame, so a slow frame rate never slows the
// animation down, it only makes it coarser.
type Animation struct {
	ID       int
	start    time.Time
	duration time.Duration
	finished bool
	canceled bool
}

func newAnimation(id int, start time.Time, duration time.Duration) *Animation {
	return &Animation{ID: id, start: start, duration: duration}
}

// Progress returns min(elapsed/duration, 1) * 100 at now.
func (a *Animation) Progress(now time.Time) float64 {
	if a.duration <= 0 {
		return 100
	}
	elapsed := now.Sub(a.start)
	if elapsed <= 0 {
		return 0
	}
	f := float64(elapsed) / float64(a.duration)
	if f > 1 {
		f = 1
	}
	return f * 100
}

// Cancel stops the animation; later frames for it are ignored.
func (a *Animation) Cancel() {
	a.canceled = true
}

// Canceled reports whether Cancel was called.
func (a *Animation) Canceled() bool {
	return a.canceled
}

// Finished reports whether the animation reached 100.
func (a *Animation) Finished() bool {
	return a.finished
}

// Active reports whether frames should still be applied.
func (a *Animation) Active() bool {
	return !a.canceled && !a.finished
}
