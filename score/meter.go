package score

import (
	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/osec-tools/pass-meter/scanners"
)

// Scanner yields candidates from some batch source, line by line.
type Scanner interface {
	Scan(lager.Logger) bool
	Candidate(lager.Logger) *scanners.Candidate
	Err() error
}

// ResultHandlerFunc receives the result for each scanned candidate.
type ResultHandlerFunc func(lager.Logger, scanners.Candidate, Result) error

// Meter scores candidates against one fixed policy, either individually or by
// draining a scanner.
type Meter interface {
	Score(string) Result
	ScoreEach(lager.Logger, Scanner, ResultHandlerFunc) error
}

type meter struct {
	opts *Options
}

// NewMeter returns a Meter bound to the given policy options. A nil opts
// scores without constraints.
func NewMeter(opts *Options) Meter {
	return &meter{
		opts: opts,
	}
}

func (m *meter) Score(candidate string) Result {
	return ComputeScore(candidate, m.opts)
}

// ScoreEach drains the scanner, scoring every candidate and passing the
// result to the handler. Handler errors do not stop the walk; they are
// accumulated and returned together.
func (m *meter) ScoreEach(logger lager.Logger, scanner Scanner, handle ResultHandlerFunc) error {
	logger = logger.Session("score-each")
	logger.Debug("starting")

	var result error

	for scanner.Scan(logger) {
		candidate := scanner.Candidate(logger)

		res := ComputeScore(candidate.Value, m.opts)

		err := handle(logger, *candidate, res)
		if err != nil {
			logger.Error("failed", err)
			result = multierror.Append(result, err)
		}
	}

	if err := scanner.Err(); err != nil {
		logger.Error("failed", err)
		result = multierror.Append(result, err)
	}

	logger.Debug("done")

	return result
}
