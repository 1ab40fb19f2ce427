package score

import "math"

// Additive contributions. The uppercase and lowercase bonuses intentionally
// reward the complement of the class count: a password made entirely of one
// class earns nothing for it, and a short password heavy in that class can
// even go negative once deductions land. That asymmetry is part of the
// scoring model, not an off-by-one.

func lengthBonus(length int) int {
	return length * 4
}

func uppercaseBonus(length, upper int) int {
	return (length - upper) * 2
}

func lowercaseBonus(length, lower int) int {
	return (length - lower) * 2
}

func digitBonus(digits int) int {
	return digits * 4
}

func symbolBonus(symbols int) int {
	return symbols * 6
}

// middleBonus rewards digits and symbols that are not in the first or last
// position. Too short to have a middle means no bonus.
func middleBonus(runes []rune) int {
	if len(runes) <= 2 {
		return 0
	}

	count := 0
	for _, r := range runes[1 : len(runes)-1] {
		if isDigit(r) || isSymbol(r) {
			count++
		}
	}

	return count * 2
}

// requirementsBonus checks five conditions: minimum length of 8 plus presence
// of each character class. Meeting fewer than three earns nothing.
func requirementsBonus(length int, counts classCounts) int {
	met := 0

	if length >= 8 {
		met++
	}
	if counts.upper > 0 {
		met++
	}
	if counts.lower > 0 {
		met++
	}
	if counts.digits > 0 {
		met++
	}
	if counts.symbols > 0 {
		met++
	}

	if met < 3 {
		return 0
	}

	return met * 2
}

// entropyBonus estimates length * log2(distinct characters), rounded. A
// single repeated character has zero entropy by this measure.
func entropyBonus(runes []rune) int {
	distinct := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		distinct[r] = struct{}{}
	}

	if len(distinct) == 0 {
		return 0
	}

	return int(math.Round(float64(len(runes)) * math.Log2(float64(len(distinct)))))
}
