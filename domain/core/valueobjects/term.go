package valueobjects

import (
	"strings"
)

// Term is a word or short phrase, either the original query or a
// model-suggested related item. Terms are compared by value.
type Term struct {
	value string
}

// NewTerm creates a term from raw text, trimming surrounding whitespace
func NewTerm(raw string) Term {
	return Term{value: strings.TrimSpace(raw)}
}

// String returns the term text
func (t Term) String() string {
	return t.value
}

// IsEmpty reports whether the term has no text
func (t Term) IsEmpty() bool {
	return t.value == ""
}

// Equals checks if two terms carry the same text
func (t Term) Equals(other Term) bool {
	return t.value == other.value
}

// ParseTerms splits a model completion into terms, one per line.
// The completion is trimmed as a whole, each line is trimmed, and lines that
// are blank after trimming are dropped.
func ParseTerms(completion string) []Term {
	completion = strings.TrimSpace(completion)
	if completion == "" {
		return []Term{}
	}

	lines := strings.Split(strings.ReplaceAll(completion, "\r\n", "\n"), "\n")
	terms := make([]Term, 0, len(lines))
	for _, line := range lines {
		term := NewTerm(line)
		if term.IsEmpty() {
			continue
		}
		terms = append(terms, term)
	}
	return terms
}
