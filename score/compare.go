package score

import (
	"errors"
	"math"
)

// ErrZeroBaseline is returned by ComparePasswords when the old candidate
// scores exactly zero, since percentage change against a zero baseline is
// undefined.
var ErrZeroBaseline = errors.New("old password scored zero, comparison undefined")

// Comparison reports how a new candidate's score moved relative to an old
// one. Delta is the percentage change, Ratio the plain quotient, both rounded
// to two decimals.
type Comparison struct {
	Delta    float64
	Ratio    float64
	OldScore int
	NewScore int
}

// ComparePasswords runs the full validation and scoring pipeline on both
// candidates with the same options and reports the relative movement.
func ComparePasswords(oldCandidate, newCandidate string, opts *Options) (Comparison, error) {
	oldScore := ComputeScore(oldCandidate, opts).Score
	newScore := ComputeScore(newCandidate, opts).Score

	if oldScore == 0 {
		return Comparison{}, ErrZeroBaseline
	}

	return Comparison{
		Delta:    round2(float64(newScore-oldScore) / float64(oldScore) * 100),
		Ratio:    round2(float64(newScore) / float64(oldScore)),
		OldScore: oldScore,
		NewScore: newScore,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
