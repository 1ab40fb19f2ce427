package score

// Rule identifies one validation rule. Rules are evaluated in declaration
// order so that error messages come back in a stable order.
type Rule int

const (
	RuleEmpty Rule = iota
	RuleMinLength
	RuleMaxLength
	RuleUppercase
	RuleLowercase
	RuleDigits
	RuleSymbols
	RuleInclude
	RuleExclude
	RuleStartsWith
	RuleEndsWith
	RuleIncludeOne
)

var defaultMessages = map[Rule]string{
	RuleEmpty:      "Password is empty.",
	RuleMinLength:  "Password is too short.",
	RuleMaxLength:  "Password is too long.",
	RuleUppercase:  "Password needs more uppercase letters.",
	RuleLowercase:  "Password needs more lowercase letters.",
	RuleDigits:     "Password needs more digits.",
	RuleSymbols:    "Password needs more symbols.",
	RuleInclude:    "Password is missing a required phrase.",
	RuleExclude:    "Password contains a forbidden phrase.",
	RuleStartsWith: "Password does not start with the required prefix.",
	RuleEndsWith:   "Password does not end with the required suffix.",
	RuleIncludeOne: "Password must contain at least one of the required phrases.",
}

// Options holds the policy constraints a candidate password is validated
// against before scoring. Every field is optional; the zero value means "no
// constraint". Options are read-only for the duration of a call.
type Options struct {
	MinLength int
	MaxLength int

	MinUppercase int
	MinLowercase int
	MinDigits    int
	MinSymbols   int

	// Include requires every listed phrase to appear as a substring.
	// IncludeOne requires at least one of the listed phrases. Exclude
	// forbids every listed phrase.
	Include    []string
	IncludeOne []string
	Exclude    []string

	StartsWith string
	EndsWith   string

	// Messages overrides the default message for individual rules. Rules
	// without an override keep their default.
	Messages map[Rule]string
}

func (o *Options) message(rule Rule) string {
	if o != nil && o.Messages != nil {
		if msg, ok := o.Messages[rule]; ok {
			return msg
		}
	}

	return defaultMessages[rule]
}
