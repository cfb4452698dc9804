// Package scan finds the times at which a body's altitude crosses a
// target value: sample the window coarsely to bracket a sign change,
// then bisect the bracket down to the requested tolerance.
package scan

import "time"

// AltitudeFunc returns a body's altitude in degrees at time t.
type AltitudeFunc func(t time.Time) float64

// Direction selects which kind of crossing to search for.
type Direction int

const (
	// Rising matches an upward crossing of the target altitude.
	Rising Direction = iota
	// Setting matches a downward crossing.
	Setting
)

// Crossing is the result of a search.
type Crossing struct {
	Time time.Time
	OK   bool
}

// FindCrossing searches [start, end] for a time where f crosses
// targetDeg in the given direction. samples controls how finely the
// window is scanned for a bracket; tol is the bisection stop width.
//
// A crossing narrower than the sample interval can be missed; callers
// pick a sample count suited to how fast their body moves.
func FindCrossing(f AltitudeFunc, start, end time.Time, targetDeg float64, dir Direction, samples int, tol time.Duration) Crossing {
	if !start.Before(end) {
		return Crossing{}
	}
	if samples < 2 {
		samples = 2
	}

	step := end.Sub(start) / time.Duration(samples-1)

	prevT := start
	prev := f(prevT) - targetDeg

	for i := 1; i < samples; i++ {
		t := start.Add(time.Duration(i) * step)
		cur := f(t) - targetDeg

		if crosses(prev, cur, dir) {
			return bisect(f, prevT, t, targetDeg, dir, tol)
		}

		prevT, prev = t, cur
	}

	return Crossing{}
}

// crosses reports whether the offset altitude moved through zero in the
// requested direction between two consecutive samples.
func crosses(a, b float64, dir Direction) bool {
	if dir == Rising {
		return a < 0 && b >= 0
	}
	return a > 0 && b <= 0
}

// bisect narrows a bracketing interval [a, b] until it is no wider than
// tol, then returns its midpoint.
func bisect(f AltitudeFunc, a, b time.Time, targetDeg float64, dir Direction, tol time.Duration) Crossing {
	fa := f(a) - targetDeg
	if !crosses(fa, f(b)-targetDeg, dir) {
		return Crossing{}
	}

	for b.Sub(a) > tol {
		mid := a.Add(b.Sub(a) / 2)
		fm := f(mid) - targetDeg

		if crosses(fa, fm, dir) {
			b = mid
		} else {
			a, fa = mid, fm
		}
	}

	return Crossing{Time: a.Add(b.Sub(a) / 2), OK: true}
}
