package score

import "strings"

// Validate checks a candidate password against the policy in opts and returns
// one message per failing rule, in rule order. An empty slice means the
// candidate passed. A nil opts applies no constraints beyond the empty-string
// check, which always runs.
func Validate(candidate string, opts *Options) []string {
	runes := []rune(candidate)
	counts := countClasses(runes)

	var errs []string
	fail := func(rule Rule) {
		errs = append(errs, opts.message(rule))
	}

	if len(runes) == 0 {
		fail(RuleEmpty)
	}

	if opts == nil {
		return errs
	}

	if opts.MinLength > 0 && len(runes) < opts.MinLength {
		fail(RuleMinLength)
	}

	if opts.MaxLength > 0 && len(runes) > opts.MaxLength {
		fail(RuleMaxLength)
	}

	if opts.MinUppercase > 0 && counts.upper < opts.MinUppercase {
		fail(RuleUppercase)
	}

	if opts.MinLowercase > 0 && counts.lower < opts.MinLowercase {
		fail(RuleLowercase)
	}

	if opts.MinDigits > 0 && counts.digits < opts.MinDigits {
		fail(RuleDigits)
	}

	if opts.MinSymbols > 0 && counts.symbols < opts.MinSymbols {
		fail(RuleSymbols)
	}

	if len(opts.Include) > 0 && !containsAll(candidate, opts.Include) {
		fail(RuleInclude)
	}

	if len(opts.Exclude) > 0 && containsAny(candidate, opts.Exclude) {
		fail(RuleExclude)
	}

	if opts.StartsWith != "" && !strings.HasPrefix(candidate, opts.StartsWith) {
		fail(RuleStartsWith)
	}

	if opts.EndsWith != "" && !strings.HasSuffix(candidate, opts.EndsWith) {
		fail(RuleEndsWith)
	}

	if len(opts.IncludeOne) > 0 && !containsAny(candidate, opts.IncludeOne) {
		fail(RuleIncludeOne)
	}

	return errs
}

func containsAll(candidate string, phrases []string) bool {
	for _, phrase := range phrases {
		if !strings.Contains(candidate, phrase) {
			return false
		}
	}

	return true
}

func containsAny(candidate string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(candidate, phrase) {
			return true
		}
	}

	return false
}
