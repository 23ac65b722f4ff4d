package usecases

import (
	"context"
	"time"

	"github.com/example/lunchbook/internal/domain/booking"
	"github.com/example/lunchbook/internal/internaltypes"
)

// fakePage is a scripted page: a list of views, one of which is current.
// Clicking an element may switch the current view.
type fakePage struct {
	views []*fakeView
	cur   int

	clicks  []string
	opened  string
	openErr error
	closed  int

	// successAfterSubmit makes WaitForText succeed once a submit was clicked.
	successAfterSubmit bool
	submitted          bool
	waited             string
}

type fakeView struct {
	buttons []*fakeEl
	inputs  []*fakeEl
	selects []*fakeEl
}

type fakeEl struct {
	page  *fakePage
	text  string
	attrs map[string]string

	hidden   bool
	disabled bool
	detached bool
	clickErr error
	selErr   error

	// goTo switches the current view on click when >= 0.
	goTo   int
	submit bool

	filled   []string
	selected string
}

func newFakePage(views ...*fakeView) *fakePage {
	p := &fakePage{views: views}
	for _, v := range views {
		for _, group := range [][]*fakeEl{v.buttons, v.inputs, v.selects} {
			for _, el := range group {
				el.page = p
			}
		}
	}
	return p
}

func button(text string) *fakeEl { return &fakeEl{text: text, goTo: -1} }

func dateButton(text string, goTo int) *fakeEl { return &fakeEl{text: text, goTo: goTo} }

func submitButton(text string) *fakeEl { return &fakeEl{text: text, goTo: -1, submit: true} }

func input(placeholder, name string) *fakeEl {
	return &fakeEl{goTo: -1, attrs: map[string]string{"placeholder": placeholder, "name": name}}
}

func (p *fakePage) view() *fakeView {
	if p.cur < 0 || p.cur >= len(p.views) {
		return &fakeView{}
	}
	return p.views[p.cur]
}

func (p *fakePage) clickCount(text string) int {
	n := 0
	for _, c := range p.clicks {
		if c == text {
			n++
		}
	}
	return n
}

func (p *fakePage) NewSession(context.Context) (booking.Session, error) { return p, nil }

func (p *fakePage) Open(_ context.Context, url string, _ time.Duration) error {
	p.opened = url
	return p.openErr
}

func (p *fakePage) Close() error {
	p.closed++
	return nil
}

func (p *fakePage) Buttons(context.Context) ([]booking.Element, error) {
	return elements(p.view().buttons), nil
}

func (p *fakePage) Inputs(context.Context) ([]booking.Element, error) {
	return elements(p.view().inputs), nil
}

func (p *fakePage) Selects(context.Context) ([]booking.Element, error) {
	return elements(p.view().selects), nil
}

func (p *fakePage) WaitForText(_ context.Context, text string, _ time.Duration) (bool, error) {
	p.waited = text
	return p.successAfterSubmit && p.submitted, nil
}

func elements(els []*fakeEl) []booking.Element {
	out := make([]booking.Element, 0, len(els))
	for _, el := range els {
		out = append(out, el)
	}
	return out
}

func (e *fakeEl) Text(context.Context) (string, error) {
	if e.detached {
		return "", internaltypes.ErrElementDetached
	}
	return e.text, nil
}

func (e *fakeEl) Attribute(_ context.Context, name string) (string, error) {
	if e.detached {
		return "", internaltypes.ErrElementDetached
	}
	return e.attrs[name], nil
}

func (e *fakeEl) Visible(context.Context) (bool, error) {
	if e.detached {
		return false, internaltypes.ErrElementDetached
	}
	return !e.hidden, nil
}

func (e *fakeEl) Enabled(context.Context) (bool, error) {
	if e.detached {
		return false, internaltypes.ErrElementDetached
	}
	return !e.disabled, nil
}

func (e *fakeEl) Click(context.Context) error {
	if e.detached {
		return internaltypes.ErrElementDetached
	}
	if e.clickErr != nil {
		return e.clickErr
	}
	e.page.clicks = append(e.page.clicks, e.text)
	if e.submit {
		e.page.submitted = true
	}
	if e.goTo >= 0 {
		e.page.cur = e.goTo
	}
	return nil
}

func (e *fakeEl) Fill(_ context.Context, value string) error {
	if e.detached {
		return internaltypes.ErrElementDetached
	}
	e.filled = append(e.filled, value)
	return nil
}

func (e *fakeEl) SelectOption(_ context.Context, value string) error {
	if e.detached {
		return internaltypes.ErrElementDetached
	}
	if e.selErr != nil {
		return e.selErr
	}
	e.selected = value
	return nil
}

// testProfile mirrors the embedded inline.app profile.
func testProfile() booking.SiteProfile {
	return booking.SiteProfile{
		Name:   "test",
		URL:    "https://booking.test/lunch",
		Guests: booking.GuestRules{Value: "2", Buttons: []string{"2 大", "2位大人", "2位"}},
		Slot:   booking.SlotRules{Labels: []string{"午餐", "12:00", "12：00"}},
		Dates:  booking.DateRules{Markers: []string{"年", "月", "日"}, MaxLabelLen: 40},
		Pager:  booking.PagerRules{AriaLabels: []string{"Next"}, Texts: []string{"›"}},
		Fields: []booking.FieldRule{
			{Field: booking.FieldName, Placeholder: []string{"name", "姓名"}, Name: []string{"name"}},
			{Field: booking.FieldPhone, Placeholder: []string{"phone", "手機"}, Name: []string{"tel", "phone"}},
			{Field: booking.FieldEmail, Placeholder: []string{"email", "信箱"}, Name: []string{"email"}},
		},
		Submit:      []string{"完成預訂", "送出", "確認預訂", "完成預約"},
		SuccessText: "訂位成功",
	}
}
