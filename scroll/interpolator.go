package scroll

import "math"

// Interpolator maps elapsed fraction t in [0, 1] to progress in [0, 1].
type Interpolator interface {
	Interpolate(t float64) float64
}

// InterpolatorFunc adapts a plain function to Interpolator.
type InterpolatorFunc func(t float64) float64

// Interpolate calls f(t).
func (f InterpolatorFunc) Interpolate(t float64) float64 { return f(t) }

// Linear advances at constant speed. Slide flips use it so that the remaining
// distance maps proportionally to time.
var Linear Interpolator = InterpolatorFunc(func(t float64) float64 { return t })

// ViscousFluid approximates a fluid coming to rest: fast start, exponential
// settle. Progress at t=1 is exactly 1.
var ViscousFluid Interpolator = newViscousFluid(8)

type viscousFluid struct {
	scale  float64
	normal float64
	offset float64
}

func newViscousFluid(scale float64) *viscousFluid {
	v := &viscousFluid{scale: scale, normal: 1}
	v.normal = 1 / v.raw(1)
	v.offset = 1 - v.normal*v.raw(1)
	return v
}

func (v *viscousFluid) raw(t float64) float64 {
	t *= v.scale
	if t < 1 {
		return t - (1 - math.Exp(-t))
	}
	const start = 0.36787944117 // 1/e
	t = 1 - math.Exp(1-t)
	return start + t*(1-start)
}

func (v *viscousFluid) Interpolate(t float64) float64 {
	p := v.normal * v.raw(t)
	if p > 0 {
		return p + v.offset
	}
	return p
}
