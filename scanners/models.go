package scanners

// Candidate is one password read from a batch source, tagged with where it
// came from so reports can point back at the offending line.
type Candidate struct {
	Value      string
	Source     string
	LineNumber int
}

// Masked returns the candidate with everything but the first and last
// character blanked out, safe to echo in logs and reports.
func (c Candidate) Masked() string {
	runes := []rune(c.Value)
	if len(runes) <= 2 {
		return "**"
	}

	masked := make([]rune, len(runes))
	masked[0] = runes[0]
	masked[len(runes)-1] = runes[len(runes)-1]
	for i := 1; i < len(runes)-1; i++ {
		masked[i] = '*'
	}

	return string(masked)
}
