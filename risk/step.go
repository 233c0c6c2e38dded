package risk

// StepPolicy proposes the next candidate fraction from the current one and
// the tail risk it produced. The search loop owns clamping and termination;
// a policy only picks the next point.
type StepPolicy interface {
	Step(fraction, tailRisk, tolerance float64) float64
}

// Proportional rescales the fraction by tolerance/tailRisk. Near the
// solution tail risk is roughly linear in fraction, so this typically lands
// within accuracy in a handful of iterations. It is a heuristic: on heavy
// tailed pools it can oscillate, which the iteration cap turns into a
// reported non-convergence instead of a hang.
type Proportional struct{}

func (Proportional) Step(fraction, tailRisk, tolerance float64) float64 {
	return fraction * tolerance / tailRisk
}

// Bisection brackets the fraction between a known-safe low and a known-risky
// high instead of rescaling. Slower than Proportional but monotone, for
// pools where the proportional update misbehaves.
type Bisection struct {
	// Upper end of the initial bracket. Zero means 100, matching the default
	// fraction clamp.
	High float64

	lo, hi float64
	active bool
}

func (b *Bisection) Step(fraction, tailRisk, tolerance float64) float64 {
	if !b.active {
		hi := b.High
		if hi == 0 {
			hi = 100
		}
		b.lo, b.hi = 0, hi
		b.active = true
	}
	if tailRisk > tolerance {
		b.hi = fraction
	} else {
		b.lo = fraction
	}
	return (b.lo + b.hi) / 2
}
