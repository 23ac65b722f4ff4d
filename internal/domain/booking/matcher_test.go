package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubElement struct {
	text string
	err  error
}

func (s *stubElement) Text(context.Context) (string, error)              { return s.text, s.err }
func (s *stubElement) Attribute(context.Context, string) (string, error) { return "", nil }
func (s *stubElement) Visible(context.Context) (bool, error)             { return true, nil }
func (s *stubElement) Enabled(context.Context) (bool, error)             { return true, nil }
func (s *stubElement) Click(context.Context) error                       { return nil }
func (s *stubElement) Fill(context.Context, string) error                { return nil }
func (s *stubElement) SelectOption(context.Context, string) error        { return nil }

func cands(texts ...string) []Candidate {
	out := make([]Candidate, 0, len(texts))
	for _, t := range texts {
		out = append(out, Candidate{Text: t, Element: &stubElement{text: t}})
	}
	return out
}

func TestMatcherMatch(t *testing.T) {
	tests := []struct {
		name  string
		vocab []string
		texts []string
		want  string
		found bool
	}{
		{"vocabulary order beats page order", []string{"午餐", "12:00"}, []string{"12:00", "午餐 11:30"}, "午餐 11:30", true},
		{"first candidate within pattern", []string{"12:00"}, []string{"12:00 A", "12:00 B"}, "12:00 A", true},
		{"fullwidth colon", []string{"12:00", "12：00"}, []string{"11:30", "12：00"}, "12：00", true},
		{"exact equality", []string{"送出"}, []string{"送出"}, "送出", true},
		{"latin is case-insensitive", []string{"next"}, []string{"Next page"}, "Next page", true},
		{"empty text skipped", []string{"午餐"}, []string{"", "   "}, "", false},
		{"empty pattern ignored", []string{"", "午餐"}, []string{"晚餐", "午餐"}, "午餐", true},
		{"no match", []string{"午餐"}, []string{"晚餐", "18:00"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Matcher{Name: "t", Vocabulary: tt.vocab}
			got, ok := m.Match(cands(tt.texts...))
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got.Text)
		})
	}
}

func TestMatcherMatchFuncFallsThroughRejected(t *testing.T) {
	m := Matcher{Vocabulary: []string{"完成預訂", "送出"}}
	cs := cands("完成預訂", "送出")
	got, ok := m.MatchFunc(cs, func(c Candidate) bool { return c.Text != "完成預訂" })
	require.True(t, ok)
	assert.Equal(t, "送出", got.Text)

	_, ok = m.MatchFunc(cs, func(Candidate) bool { return false })
	assert.False(t, ok)
}

func TestReadCandidatesSkipsUnreadable(t *testing.T) {
	els := []Element{
		&stubElement{err: errors.New("detached")},
		&stubElement{text: "  午餐  "},
		&stubElement{text: ""},
		nil,
		&stubElement{text: "12:00"},
	}
	got := ReadCandidates(context.Background(), els)
	require.Len(t, got, 2)
	assert.Equal(t, "午餐", got[0].Text)
	assert.Equal(t, "12:00", got[1].Text)
}

func TestContainsAny(t *testing.T) {
	markers := []string{"年", "月", "日"}
	assert.True(t, ContainsAny("10月16日 (四)", markers))
	assert.False(t, ContainsAny("12:00", markers))
	assert.False(t, ContainsAny("", markers))
}

func TestLabelLenCountsRunes(t *testing.T) {
	assert.Equal(t, 6, LabelLen("10月16日"))
}
