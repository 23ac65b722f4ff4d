package booking

import (
	"errors"
	"fmt"
)

// SiteProfile is the vocabulary tuned to one booking page.
type SiteProfile struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`

	Guests GuestRules `yaml:"guests"`
	Slot   SlotRules  `yaml:"slot"`
	Dates  DateRules  `yaml:"dates"`
	Pager  PagerRules `yaml:"pager"`

	Fields []FieldRule `yaml:"fields"`
	Submit []string    `yaml:"submit"`

	SuccessText string `yaml:"success_text"`
}

type GuestRules struct {
	// Value is selected on the first single-choice control, if any.
	Value   string   `yaml:"value"`
	Buttons []string `yaml:"buttons"`
}

type SlotRules struct {
	Labels []string `yaml:"labels"`
}

type DateRules struct {
	Markers []string `yaml:"markers"`
	// MaxLabelLen guards against long unrelated strings that happen to
	// contain a date marker.
	MaxLabelLen int `yaml:"max_label_len"`
}

type PagerRules struct {
	AriaLabels []string `yaml:"aria_labels"`
	Texts      []string `yaml:"texts"`
}

// FieldRule maps an input to a contact field by placeholder or name attribute.
type FieldRule struct {
	Field       ContactField `yaml:"field"`
	Placeholder []string     `yaml:"placeholder"`
	Name        []string     `yaml:"name"`
}

func (p SiteProfile) GuestMatcher() Matcher {
	return Matcher{Name: "guests", Vocabulary: p.Guests.Buttons}
}

func (p SiteProfile) SlotMatcher() Matcher {
	return Matcher{Name: "lunch-slot", Vocabulary: p.Slot.Labels}
}

func (p SiteProfile) SubmitMatcher() Matcher {
	return Matcher{Name: "submit", Vocabulary: p.Submit}
}

func (p SiteProfile) Validate() error {
	var errs []error
	if p.URL == "" {
		errs = append(errs, errors.New("url required"))
	}
	if len(p.Slot.Labels) == 0 {
		errs = append(errs, errors.New("slot.labels required"))
	}
	if len(p.Dates.Markers) == 0 {
		errs = append(errs, errors.New("dates.markers required"))
	}
	if p.Dates.MaxLabelLen < 1 {
		errs = append(errs, errors.New("dates.max_label_len must be >= 1"))
	}
	if len(p.Submit) == 0 {
		errs = append(errs, errors.New("submit required"))
	}
	for i, f := range p.Fields {
		switch f.Field {
		case FieldName, FieldPhone, FieldEmail:
		default:
			errs = append(errs, fmt.Errorf("fields[%d]: unknown field %q", i, f.Field))
		}
	}
	return errors.Join(errs...)
}
