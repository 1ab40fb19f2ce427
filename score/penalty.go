package score

import "strings"

// Deductions. Every function here returns zero or a negative number.

func lettersOnlyPenalty(runes []rune) int {
	if len(runes) == 0 {
		return 0
	}

	for _, r := range runes {
		if !isLetter(r) {
			return 0
		}
	}

	return -len(runes)
}

func digitsOnlyPenalty(runes []rune) int {
	if len(runes) == 0 {
		return 0
	}

	for _, r := range runes {
		if !isDigit(r) {
			return 0
		}
	}

	return -len(runes)
}

// consecutivePenalty counts adjacent same-class pairs: a run of n characters
// of the class contributes n-1, which reproduces an overlapping lookahead
// count with a single scan.
func consecutivePenalty(runes []rune, class func(rune) bool) int {
	pairs := 0
	run := 0

	for _, r := range runes {
		if class(r) {
			run++
			if run >= 2 {
				pairs++
			}
		} else {
			run = 0
		}
	}

	return pairs * -2
}

// sequentialPenalty slides a three-character window over the case-folded
// candidate and counts windows that appear in the reference sequence, so
// overlapping runs all count.
func sequentialPenalty(folded string, sequence string) int {
	count := 0

	for i := 0; i+3 <= len(folded); i++ {
		if strings.Contains(sequence, folded[i:i+3]) {
			count++
		}
	}

	return count * -3
}

// repeatPenalty squares the occurrence count of every case-folded character
// that appears more than once: three of a kind costs nine.
func repeatPenalty(folded []rune) int {
	occurrences := make(map[rune]int, len(folded))
	for _, r := range folded {
		occurrences[r]++
	}

	penalty := 0
	for _, n := range occurrences {
		if n > 1 {
			penalty += n * n
		}
	}

	return -penalty
}

// datePenalty counts non-overlapping matches of each date form separately and
// sums them; a digit run that reads as both DDMM and MMDD is counted twice.
func datePenalty(candidate string) int {
	count := 0

	for _, re := range datePatterns {
		count += len(re.FindAllStringIndex(candidate, -1))
	}

	return count * -5
}

// keyboardPenalty tests every table pattern and its character reversal as an
// independent case-insensitive substring match.
func keyboardPenalty(folded string) int {
	count := 0

	for _, pattern := range keyboardPatterns {
		if strings.Contains(folded, pattern) {
			count++
		}
		if strings.Contains(folded, reverse(pattern)) {
			count++
		}
	}

	return count * -5
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
