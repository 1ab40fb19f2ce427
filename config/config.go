// Package config loads policy files for the pass-meter CLI.
package config

import (
	"fmt"
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"

	"github.com/osec-tools/pass-meter/cracktime"
	"github.com/osec-tools/pass-meter/score"
	"github.com/osec-tools/pass-meter/strength"
)

// Load parses a YAML policy file.
func Load(bs []byte) (*Config, error) {
	c := &Config{}
	err := yaml.Unmarshal(bs, c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// LoadFile reads and parses the policy file at path.
func LoadFile(path string) (*Config, error) {
	bs, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Load(bs)
}

type Config struct {
	Policy struct {
		MinLength    int `yaml:"min_length"`
		MaxLength    int `yaml:"max_length"`
		MinUppercase int `yaml:"min_uppercase"`
		MinLowercase int `yaml:"min_lowercase"`
		MinDigits    int `yaml:"min_digits"`
		MinSymbols   int `yaml:"min_symbols"`

		Include    []string `yaml:"include"`
		IncludeOne []string `yaml:"include_one"`
		Exclude    []string `yaml:"exclude"`
		StartsWith string   `yaml:"starts_with"`
		EndsWith   string   `yaml:"ends_with"`

		Messages map[string]string `yaml:"messages"`
	} `yaml:"policy"`

	Tiers []struct {
		Tier     string `yaml:"tier"`
		MaxScore int    `yaml:"max_score"`
	} `yaml:"tiers"`

	CrackTime struct {
		GuessesPerSecond   float64 `yaml:"guesses_per_second"`
		PossibleCharacters float64 `yaml:"possible_characters"`
	} `yaml:"crack_time"`
}

var ruleNames = map[string]score.Rule{
	"empty":       score.RuleEmpty,
	"min_length":  score.RuleMinLength,
	"max_length":  score.RuleMaxLength,
	"uppercase":   score.RuleUppercase,
	"lowercase":   score.RuleLowercase,
	"digits":      score.RuleDigits,
	"symbols":     score.RuleSymbols,
	"include":     score.RuleInclude,
	"exclude":     score.RuleExclude,
	"starts_with": score.RuleStartsWith,
	"ends_with":   score.RuleEndsWith,
	"include_one": score.RuleIncludeOne,
}

// Validate reports every problem in the file at once so the operator can fix
// the file in one pass.
func (c *Config) Validate() []error {
	var errs []error

	for _, field := range []struct {
		name  string
		value int
	}{
		{"min_length", c.Policy.MinLength},
		{"max_length", c.Policy.MaxLength},
		{"min_uppercase", c.Policy.MinUppercase},
		{"min_lowercase", c.Policy.MinLowercase},
		{"min_digits", c.Policy.MinDigits},
		{"min_symbols", c.Policy.MinSymbols},
	} {
		if field.value < 0 {
			errs = append(errs, fmt.Errorf("policy %s must not be negative", field.name))
		}
	}

	if c.Policy.MinLength > 0 && c.Policy.MaxLength > 0 && c.Policy.MaxLength < c.Policy.MinLength {
		errs = append(errs, fmt.Errorf("policy max_length is below min_length"))
	}

	for name := range c.Policy.Messages {
		if _, ok := ruleNames[name]; !ok {
			errs = append(errs, fmt.Errorf("unknown rule %q in policy messages", name))
		}
	}

	for _, entry := range c.Tiers {
		if _, ok := strength.ParseTier(entry.Tier); !ok {
			errs = append(errs, fmt.Errorf("unknown tier %q in tier table", entry.Tier))
		}
	}

	if c.CrackTime.GuessesPerSecond < 0 {
		errs = append(errs, fmt.Errorf("crack_time guesses_per_second must not be negative"))
	}

	if c.CrackTime.PossibleCharacters < 0 {
		errs = append(errs, fmt.Errorf("crack_time possible_characters must not be negative"))
	}

	return errs
}

// ScoreOptions translates the policy section for the scoring engine.
func (c *Config) ScoreOptions() *score.Options {
	opts := &score.Options{
		MinLength:    c.Policy.MinLength,
		MaxLength:    c.Policy.MaxLength,
		MinUppercase: c.Policy.MinUppercase,
		MinLowercase: c.Policy.MinLowercase,
		MinDigits:    c.Policy.MinDigits,
		MinSymbols:   c.Policy.MinSymbols,
		Include:      c.Policy.Include,
		IncludeOne:   c.Policy.IncludeOne,
		Exclude:      c.Policy.Exclude,
		StartsWith:   c.Policy.StartsWith,
		EndsWith:     c.Policy.EndsWith,
	}

	if len(c.Policy.Messages) > 0 {
		opts.Messages = make(map[score.Rule]string, len(c.Policy.Messages))
		for name, message := range c.Policy.Messages {
			if rule, ok := ruleNames[name]; ok {
				opts.Messages[rule] = message
			}
		}
	}

	return opts
}

// TierTable translates the tiers section; with no tiers configured the
// default boundaries apply.
func (c *Config) TierTable() strength.Table {
	if len(c.Tiers) == 0 {
		return strength.DefaultTable()
	}

	table := make(strength.Table, 0, len(c.Tiers))
	for _, entry := range c.Tiers {
		tier, _ := strength.ParseTier(entry.Tier)
		table = append(table, strength.Boundary{Tier: tier, MaxScore: entry.MaxScore})
	}

	return table
}

// CrackTimeOptions translates the crack_time section; zero values keep the
// estimator defaults.
func (c *Config) CrackTimeOptions() *cracktime.Options {
	return &cracktime.Options{
		GuessesPerSecond:   c.CrackTime.GuessesPerSecond,
		PossibleCharacters: c.CrackTime.PossibleCharacters,
	}
}
