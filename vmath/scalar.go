package vmath

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Falloff returns the linear proximity weight (1 - d/radius), zero at or beyond radius
func Falloff(d, radius float64) float64 {
	if radius <= 0 || d >= radius {
		return 0
	}
	return 1 - d/radius
}
