package scanners

import (
	"bufio"
	"io"

	"code.cloudfoundry.org/lager"
)

// LineScanner reads candidate passwords from a reader, one per line. Blank
// lines are skipped so trailing newlines in list files do not score as empty
// passwords.
type LineScanner struct {
	scanner    *bufio.Scanner
	source     string
	lineNumber int
	current    *Candidate
}

func New(r io.Reader, source string) *LineScanner {
	return &LineScanner{
		scanner: bufio.NewScanner(r),
		source:  source,
	}
}

func (s *LineScanner) Scan(logger lager.Logger) bool {
	logger = logger.Session("line-scanner").Session("scan")
	logger.Debug("starting")
	defer logger.Debug("done")

	for s.scanner.Scan() {
		s.lineNumber++

		line := s.scanner.Text()
		if line == "" {
			continue
		}

		s.current = &Candidate{
			Value:      line,
			Source:     s.source,
			LineNumber: s.lineNumber,
		}

		return true
	}

	s.current = nil

	return false
}

func (s *LineScanner) Candidate(logger lager.Logger) *Candidate {
	logger.Session("line-scanner").Debug("candidate", lager.Data{
		"line-number": s.lineNumber,
		"source":      s.source,
	})

	return s.current
}

func (s *LineScanner) Err() error {
	return s.scanner.Err()
}
