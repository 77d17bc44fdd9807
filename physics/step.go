// Package physics advances particle fields one frame at a time.
//
// The integrator is a damped spring toward a drifting anchor with an external point
// force from the pointer. Velocities are in px per frame; tuning constants exist for
// visual feel and are carried by field.Config.
package physics

import (
	"math"
	"time"

	"github.com/lixenwraith/constellation/field"
	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/vmath"
)

// Frame is the per-frame input shared by every particle
type Frame struct {
	// Elapsed is the clamped animation clock in milliseconds
	Elapsed float64
	// Pointer is surface-relative; the leave sentinel lies outside every radius
	Pointer vmath.Vec2
}

// ClampDelta bounds a frame delta to [0, max]
func ClampDelta(dt, max time.Duration) time.Duration {
	if dt < 0 {
		return 0
	}
	if dt > max {
		return max
	}
	return dt
}

// Millis converts a duration to fractional milliseconds, the unit of all speed constants
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// DriftTarget is the wandering anchor: base plus an independent oscillation per axis
func DriftTarget(p *field.Particle, t float64, d field.Drift) vmath.Vec2 {
	phase := t*d.Speed + p.DriftPhase
	return vmath.Vec2{
		X: p.BaseX + math.Sin(phase)*p.DriftAmpX,
		Y: p.BaseY + math.Cos(t*d.Speed*parameter.DriftYSpeedFactor+p.DriftPhase+parameter.DriftYPhaseOffset)*p.DriftAmpY,
	}
}

// PointerForce is the velocity impulse on a particle at pos
// Magnitude is (1 - dist/radius) * force inside the radius, directed toward the pointer
// for ForceAttract and away for ForceRepel; coincident points (dist <= 1) get none
func PointerForce(pos, pointer vmath.Vec2, pc field.Pointer) vmath.Vec2 {
	if pc.Radius <= 0 || pc.Force == 0 {
		return vmath.Vec2{}
	}
	d := vmath.V2Sub(pointer, pos)
	distSq := vmath.V2MagSq(d)
	if distSq >= pc.Radius*pc.Radius || distSq <= 1 {
		return vmath.Vec2{}
	}
	dist := math.Sqrt(distSq)
	mag := vmath.Falloff(dist, pc.Radius) * pc.Force * float64(pc.Mode)
	return vmath.V2Scale(d, mag/dist)
}

// Breath is the pulsing alpha, independent of position
func Breath(p *field.Particle, t float64, b field.Breath) float64 {
	speed := b.Speed
	if p.BreathSpeed > 0 {
		speed = p.BreathSpeed
	}
	return p.BaseAlpha * (b.Offset + b.Range*math.Sin(t*speed+p.BreathPhase))
}

// Step advances every particle by one frame, in collection order
func Step(particles []field.Particle, f Frame, cfg *field.Config) {
	switch cfg.Integrator {
	case field.IntegratorPosition:
		for i := range particles {
			stepPosition(&particles[i], f, cfg)
		}
	default:
		for i := range particles {
			stepVelocity(&particles[i], f, cfg)
		}
	}
}

// stepVelocity: drift target, pointer force, spring, damping, integrate, rotation, breath
func stepVelocity(p *field.Particle, f Frame, cfg *field.Config) {
	t := f.Elapsed
	target := DriftTarget(p, t, cfg.Drift)

	impulse := PointerForce(vmath.Vec2{X: p.X, Y: p.Y}, f.Pointer, cfg.Pointer)
	p.VX += impulse.X
	p.VY += impulse.Y

	p.VX += (target.X - p.X) * cfg.Spring
	p.VY += (target.Y - p.Y) * cfg.Spring

	p.VX *= cfg.Damping
	p.VY *= cfg.Damping

	p.X += p.VX
	p.Y += p.VY

	p.Rotation = t*cfg.RotationSpeed + p.RotationPhase
	p.Alpha = Breath(p, t, cfg.Breath)
}

// stepPosition measures the pointer from the fixed base, integrates, damps, then
// eases position toward base directly
func stepPosition(p *field.Particle, f Frame, cfg *field.Config) {
	t := f.Elapsed

	impulse := PointerForce(vmath.Vec2{X: p.BaseX, Y: p.BaseY}, f.Pointer, cfg.Pointer)
	p.VX += impulse.X
	p.VY += impulse.Y

	p.X += p.VX
	p.Y += p.VY
	p.VX *= cfg.Damping
	p.VY *= cfg.Damping

	p.X += (p.BaseX - p.X) * cfg.Spring
	p.Y += (p.BaseY - p.Y) * cfg.Spring

	p.Rotation = t*cfg.RotationSpeed + p.RotationPhase
	p.Alpha = Breath(p, t, cfg.Breath)
}
