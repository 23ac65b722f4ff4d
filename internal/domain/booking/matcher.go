package booking

import (
	"context"
	"strings"
	"unicode/utf8"
)

// Candidate pairs an element with the text extracted from it. Candidates are
// consumed right after extraction and never kept across navigation steps.
type Candidate struct {
	Text    string
	Element Element
}

// Matcher selects elements by an ordered vocabulary of literal patterns.
// Earlier patterns win over later ones; within a pattern the first candidate
// in page order wins.
type Matcher struct {
	Name       string
	Vocabulary []string
}

// Match returns the first candidate whose text contains a vocabulary pattern.
func (m Matcher) Match(cands []Candidate) (Candidate, bool) {
	return m.MatchFunc(cands, nil)
}

// MatchFunc is Match restricted to candidates accepted by accept. A rejected
// candidate does not stop the scan; the next candidate or pattern is tried.
func (m Matcher) MatchFunc(cands []Candidate, accept func(Candidate) bool) (Candidate, bool) {
	for _, pattern := range m.Vocabulary {
		p := normalize(pattern)
		if p == "" {
			continue
		}
		for _, c := range cands {
			t := normalize(c.Text)
			if t == "" || !strings.Contains(t, p) {
				continue
			}
			if accept != nil && !accept(c) {
				continue
			}
			return c, true
		}
	}
	return Candidate{}, false
}

// ContainsAny reports whether s contains any of the patterns.
func ContainsAny(s string, patterns []string) bool {
	s = normalize(s)
	if s == "" {
		return false
	}
	for _, p := range patterns {
		p = normalize(p)
		if p != "" && strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// ReadCandidates extracts trimmed text from each element. Elements whose text
// cannot be read or is empty are skipped.
func ReadCandidates(ctx context.Context, els []Element) []Candidate {
	out := make([]Candidate, 0, len(els))
	for _, el := range els {
		if el == nil {
			continue
		}
		txt, err := el.Text(ctx)
		if err != nil {
			continue
		}
		txt = strings.TrimSpace(txt)
		if txt == "" {
			continue
		}
		out = append(out, Candidate{Text: txt, Element: el})
	}
	return out
}

// LabelLen counts characters, not bytes, so CJK labels compare fairly.
func LabelLen(s string) int { return utf8.RuneCountInString(s) }

// Latin vocabulary is matched case-insensitively; CJK literals are unaffected.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
