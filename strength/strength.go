// Package strength maps numeric password scores onto discrete tiers using a
// caller-supplied boundary table.
package strength

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Tier is a discrete strength label, ordered from Invalid upward.
type Tier int

const (
	Invalid Tier = iota
	VeryWeak
	Weak
	Medium
	Strong
	VeryStrong
	Perfect
)

var tierNames = map[Tier]string{
	Invalid:    "invalid",
	VeryWeak:   "very weak",
	Weak:       "weak",
	Medium:     "medium",
	Strong:     "strong",
	VeryStrong: "very strong",
	Perfect:    "perfect",
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}

	return fmt.Sprintf("unknown tier (%d)", int(t))
}

// ParseTier resolves a tier name as used in configuration files.
func ParseTier(name string) (Tier, bool) {
	for tier, tierName := range tierNames {
		if tierName == name {
			return tier, true
		}
	}

	return Invalid, false
}

// Boundary assigns a tier its inclusive maximum score.
type Boundary struct {
	Tier     Tier
	MaxScore int
}

// Table lists one boundary per scored tier, in increasing severity, with
// non-decreasing maximum scores. Tables are built per session by the caller;
// Classify never mutates them.
type Table []Boundary

// scoredTiers are the tiers a table must cover, in severity order. Invalid is
// never in a table; it is reserved for the validation sentinel.
var scoredTiers = []Tier{VeryWeak, Weak, Medium, Strong, VeryStrong, Perfect}

// DefaultTable returns the boundaries used when the embedding application
// supplies none.
func DefaultTable() Table {
	return Table{
		{Tier: VeryWeak, MaxScore: 40},
		{Tier: Weak, MaxScore: 80},
		{Tier: Medium, MaxScore: 120},
		{Tier: Strong, MaxScore: 160},
		{Tier: VeryStrong, MaxScore: 200},
		{Tier: Perfect, MaxScore: 240},
	}
}

// Validate reports every defect in the table at once. A malformed table is a
// programmer error, so classification refuses to proceed rather than guess.
func (t Table) Validate() error {
	var result error

	seen := make(map[Tier]bool, len(t))
	for _, boundary := range t {
		if boundary.Tier <= Invalid || boundary.Tier > Perfect {
			result = multierror.Append(result, fmt.Errorf("tier table contains an unknown tier (%d)", int(boundary.Tier)))
			continue
		}

		if seen[boundary.Tier] {
			result = multierror.Append(result, fmt.Errorf("tier table lists %q more than once", boundary.Tier))
		}
		seen[boundary.Tier] = true
	}

	for _, tier := range scoredTiers {
		if !seen[tier] {
			result = multierror.Append(result, fmt.Errorf("tier table is missing %q", tier))
		}
	}

	for i := 1; i < len(t); i++ {
		if t[i].Tier <= t[i-1].Tier {
			result = multierror.Append(result, fmt.Errorf("tier table entry %q is out of severity order", t[i].Tier))
			continue
		}

		if t[i].MaxScore < t[i-1].MaxScore {
			result = multierror.Append(result, fmt.Errorf("max score for %q decreases", t[i].Tier))
		}
	}

	return result
}

// Classify maps a score onto the first tier whose bound reaches it. A score
// exactly on a boundary maps to the lower tier; a score beyond every bound is
// Perfect; any negative score is Invalid regardless of the table.
func Classify(score int, table Table) (Tier, error) {
	if err := table.Validate(); err != nil {
		return Invalid, err
	}

	if score < 0 {
		return Invalid, nil
	}

	for _, boundary := range table {
		if score <= boundary.MaxScore {
			return boundary.Tier, nil
		}
	}

	return Perfect, nil
}
