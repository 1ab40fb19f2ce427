// Package score rates candidate passwords. It validates a candidate against
// an optional policy, sums a fixed set of bonus and deduction heuristics into
// an integer score, and compares the scores of two candidates. All functions
// are pure: no state survives a call, and concurrent use is safe as long as
// callers do not mutate the options mid-call.
package score

// Sentinel is the score reported when validation fails and the heuristics
// never run.
const Sentinel = -1

// Result is the outcome of scoring one candidate. Errors being non-empty
// implies Score is Sentinel; an empty Errors slice means Score is the real
// heuristic sum, which can still be negative for very weak candidates.
type Result struct {
	Score  int
	Errors []string
}

// Valid reports whether the candidate passed policy validation.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// ComputeScore validates the candidate and, if it passes, runs every
// heuristic in a fixed order and sums the contributions. Validation failures
// short-circuit scoring entirely.
func ComputeScore(candidate string, opts *Options) Result {
	if errs := Validate(candidate, opts); len(errs) > 0 {
		return Result{Score: Sentinel, Errors: errs}
	}

	runes := []rune(candidate)
	counts := countClasses(runes)
	folded := foldRunes(runes)
	foldedStr := string(folded)

	total := lengthBonus(len(runes))
	total += uppercaseBonus(len(runes), counts.upper)
	total += lowercaseBonus(len(runes), counts.lower)
	total += digitBonus(counts.digits)
	total += symbolBonus(counts.symbols)
	total += middleBonus(runes)
	total += requirementsBonus(len(runes), counts)
	total += entropyBonus(runes)

	total += lettersOnlyPenalty(runes)
	total += digitsOnlyPenalty(runes)
	total += consecutivePenalty(runes, isUpper)
	total += consecutivePenalty(runes, isLower)
	total += consecutivePenalty(runes, isDigit)
	total += sequentialPenalty(foldedStr, alphaSequence)
	total += sequentialPenalty(foldedStr, digitSequence)
	total += sequentialPenalty(foldedStr, symbolSequence)
	total += repeatPenalty(folded)
	total += datePenalty(candidate)
	total += keyboardPenalty(foldedStr)

	return Result{Score: total}
}
