package accum

import (
	"math"

	"github.com/mario007/rtlib/color"
)

// ToneMap selects the resolve-to-display operator, per spec.md §4.11.
type ToneMap int

const (
	Linear ToneMap = iota
	Gamma
	Reinhard
)

const invGamma = float32(1.0 / 2.2)

func gammaCorrect(v float32) float32 {
	if v <= 0 {
		return 0
	}
	return float32(math.Pow(float64(v), float64(invGamma)))
}

// Apply tone maps a resolved linear color to display range, per
// spec.md §4.11: Linear is the identity, Gamma applies x^(1/2.2) per
// channel, Reinhard applies gamma(x/(1+x)) per channel.
func Apply(op ToneMap, c color.RGB) color.RGB {
	switch op {
	case Gamma:
		return color.New(gammaCorrect(c.R), gammaCorrect(c.G), gammaCorrect(c.B))
	case Reinhard:
		return color.New(
			gammaCorrect(c.R/(c.R+1)),
			gammaCorrect(c.G/(c.G+1)),
			gammaCorrect(c.B/(c.B+1)),
		)
	default:
		return c
	}
}
