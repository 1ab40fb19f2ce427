package score

// Character classification is deliberately ASCII-only. The scoring rules are
// defined against ASCII word-character classes, so a symbol is anything
// outside [A-Za-z0-9_]. Non-ASCII letters therefore classify as symbols,
// which changes their bonus weight. Extending this to full Unicode would
// silently shift scores, so the ASCII behavior is kept.

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isLower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isLetter(r rune) bool {
	return isUpper(r) || isLower(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSymbol(r rune) bool {
	return !isLetter(r) && !isDigit(r) && r != '_'
}

type classCounts struct {
	upper   int
	lower   int
	digits  int
	symbols int
}

func countClasses(runes []rune) classCounts {
	var c classCounts

	for _, r := range runes {
		switch {
		case isUpper(r):
			c.upper++
		case isLower(r):
			c.lower++
		case isDigit(r):
			c.digits++
		case isSymbol(r):
			c.symbols++
		}
	}

	return c
}

func foldRunes(runes []rune) []rune {
	folded := make([]rune, len(runes))

	for i, r := range runes {
		if isUpper(r) {
			r += 'a' - 'A'
		}
		folded[i] = r
	}

	return folded
}
