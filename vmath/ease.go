package vmath

import "math"

// Polynomial easing curves, named after the tween-library convention
// where powerN uses exponent N+1

// EaseOutPow decelerates: 1 - (1-t)^n
func EaseOutPow(t, n float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, n)
}

// EaseInPow accelerates: t^n
func EaseInPow(t, n float64) float64 {
	t = Clamp01(t)
	return math.Pow(t, n)
}

// Power2Out is a cubic ease-out
func Power2Out(t float64) float64 { return EaseOutPow(t, 3) }

// Power3Out is a quartic ease-out
func Power3Out(t float64) float64 { return EaseOutPow(t, 4) }

// Power2In is a cubic ease-in
func Power2In(t float64) float64 { return EaseInPow(t, 3) }

// Progress maps t into [0,1] across the window [start, start+duration]
func Progress(t, start, duration float64) float64 {
	if duration <= 0 {
		if t >= start {
			return 1
		}
		return 0
	}
	return Clamp01((t - start) / duration)
}
