// Package cracktime estimates how long a brute-force search would need to
// exhaust the space a candidate password lives in.
package cracktime

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// Defaults model an offline attack against a fast hash over the printable
// ASCII range.
const (
	DefaultGuessesPerSecond   = 5e11
	DefaultPossibleCharacters = 95
)

// Options overrides the attack model. Zero values fall back to the defaults.
type Options struct {
	GuessesPerSecond   float64
	PossibleCharacters float64
}

// Result carries the raw estimate and its human-readable breakdown. Results
// are recomputed on every call, never cached.
type Result struct {
	Seconds     float64
	Description string
}

// Estimate computes possibleCharacters^length / guessesPerSecond for the
// candidate. Only the candidate's length matters; its content never leaves
// the call.
func Estimate(candidate string, opts *Options) Result {
	rate := float64(DefaultGuessesPerSecond)
	chars := float64(DefaultPossibleCharacters)

	if opts != nil {
		if opts.GuessesPerSecond > 0 {
			rate = opts.GuessesPerSecond
		}
		if opts.PossibleCharacters > 0 {
			chars = opts.PossibleCharacters
		}
	}

	length := len([]rune(candidate))
	seconds := math.Pow(chars, float64(length)) / rate

	return Result{
		Seconds:     seconds,
		Description: Describe(seconds),
	}
}

const day = 86400

var units = []struct {
	singular string
	plural   string
	seconds  float64
}{
	{"millennium", "millennia", 1000 * 365.25 * day},
	{"century", "centuries", 100 * 365.25 * day},
	{"decade", "decades", 10 * 365.25 * day},
	{"year", "years", 365.25 * day},
	{"month", "months", 30.44 * day},
	{"day", "days", day},
	{"hour", "hours", 3600},
	{"minute", "minutes", 60},
	{"second", "seconds", 1},
}

// Describe breaks a duration into largest-unit-first components and joins the
// non-zero ones. Anything under a second reads as "instantly".
func Describe(seconds float64) string {
	var parts []string

	remaining := seconds
	for _, unit := range units {
		count := math.Floor(remaining / unit.seconds)
		if count < 1 {
			continue
		}
		remaining -= count * unit.seconds

		word := unit.plural
		if count == 1 {
			word = unit.singular
		}

		parts = append(parts, fmt.Sprintf("%s %s", humanize.Commaf(count), word))
	}

	if len(parts) == 0 {
		return "instantly"
	}

	return strings.Join(parts, ", ")
}
