package booking

import (
	"fmt"
	"time"
)

// ContactInfo is sourced once at process start. Empty fields are never
// written to the form.
type ContactInfo struct {
	Name  string
	Phone string
	Email string
}

type ContactField string

const (
	FieldName  ContactField = "name"
	FieldPhone ContactField = "phone"
	FieldEmail ContactField = "email"
)

func (c ContactInfo) Value(f ContactField) string {
	switch f {
	case FieldName:
		return c.Name
	case FieldPhone:
		return c.Phone
	case FieldEmail:
		return c.Email
	}
	return ""
}

type AttemptResult string

const (
	ResultSuccess              AttemptResult = "success"
	ResultNoSlotFound          AttemptResult = "no_slot_found"
	ResultSubmissionIncomplete AttemptResult = "submission_incomplete"
	ResultExhausted            AttemptResult = "exhausted"
)

func ParseAttemptResult(s string) (AttemptResult, error) {
	switch r := AttemptResult(s); r {
	case ResultSuccess, ResultNoSlotFound, ResultSubmissionIncomplete, ResultExhausted:
		return r, nil
	}
	return "", fmt.Errorf("unknown attempt result %q", s)
}

// Completed reports whether the attempt ran through to a form submission
// decision.
func (r AttemptResult) Completed() bool {
	return r == ResultSuccess || r == ResultSubmissionIncomplete
}

// Report is the terminal record of one attempt.
type Report struct {
	ID     string
	Result AttemptResult

	// Confirmed is false on a Success whose confirmation text never showed up;
	// those attempts need manual follow-up (SMS/LINE verification).
	Confirmed bool
	GuestsSet bool
	Advances  int
	Visited   []string

	StartedAt  time.Time
	FinishedAt time.Time
	Error      string
}

// VisitedLabels holds the date labels already activated in one attempt.
type VisitedLabels struct {
	seen  map[string]struct{}
	order []string
}

func NewVisitedLabels() *VisitedLabels {
	return &VisitedLabels{seen: make(map[string]struct{})}
}

func (v *VisitedLabels) Has(label string) bool {
	_, ok := v.seen[label]
	return ok
}

// Add returns false if label was already present.
func (v *VisitedLabels) Add(label string) bool {
	if v.Has(label) {
		return false
	}
	v.seen[label] = struct{}{}
	v.order = append(v.order, label)
	return true
}

func (v *VisitedLabels) Len() int { return len(v.order) }

// Labels returns the labels in activation order.
func (v *VisitedLabels) Labels() []string {
	out := make([]string, len(v.order))
	copy(out, v.order)
	return out
}
