package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/lunchbook/internal/domain/booking"
	"github.com/example/lunchbook/internal/logging"
)

func formFor(p *fakePage, c booking.ContactInfo) FillContactForm {
	return FillContactForm{Probe: p, Profile: testProfile(), Contact: c, Log: logging.NewNop()}
}

func TestFillContactFormMatchesFields(t *testing.T) {
	name := input("請輸入姓名", "")
	phone := input("手機號碼", "")
	email := input("", "email")
	tel := input("", "tel")
	other := input("備註", "note")
	stale := input("姓名", "name")
	stale.detached = true
	p := newFakePage(&fakeView{inputs: []*fakeEl{name, phone, email, tel, other, stale}})

	n := formFor(p, booking.ContactInfo{Name: "王小明", Phone: "0912345678", Email: "a@b.tw"}).Fill(context.Background())
	assert.Equal(t, 4, n)
	assert.Equal(t, []string{"王小明"}, name.filled)
	assert.Equal(t, []string{"0912345678"}, phone.filled)
	assert.Equal(t, []string{"a@b.tw"}, email.filled)
	assert.Equal(t, []string{"0912345678"}, tel.filled)
	assert.Empty(t, other.filled)
	assert.Empty(t, stale.filled)
}

func TestFillContactFormSkipsEmptyContactFields(t *testing.T) {
	name := input("Name", "")
	phone := input("Phone", "")
	email := input("Email", "")
	p := newFakePage(&fakeView{inputs: []*fakeEl{name, phone, email}})

	n := formFor(p, booking.ContactInfo{Phone: "0912345678"}).Fill(context.Background())
	assert.Equal(t, 1, n)
	assert.Empty(t, name.filled)
	assert.Equal(t, []string{"0912345678"}, phone.filled)
	assert.Empty(t, email.filled)
}

func TestFillContactFormFirstCategoryWins(t *testing.T) {
	// "name" placeholder plus "phone" name attribute: name is checked first.
	ambiguous := input("Your name", "phone")
	p := newFakePage(&fakeView{inputs: []*fakeEl{ambiguous}})

	formFor(p, booking.ContactInfo{Name: "Lin", Phone: "0912"}).Fill(context.Background())
	assert.Equal(t, []string{"Lin"}, ambiguous.filled)

	// The winning category is empty, so the input is left alone.
	ambiguous.filled = nil
	formFor(p, booking.ContactInfo{Phone: "0912"}).Fill(context.Background())
	assert.Empty(t, ambiguous.filled)
}

func TestSubmitFallsBackToAvailableLabel(t *testing.T) {
	first := submitButton("完成預訂")
	first.disabled = true
	second := submitButton("送出")
	p := newFakePage(&fakeView{buttons: []*fakeEl{first, second}})

	assert.True(t, formFor(p, booking.ContactInfo{}).Submit(context.Background()))
	assert.Equal(t, []string{"送出"}, p.clicks)
}

func TestSubmitPrefersVocabularyOrder(t *testing.T) {
	p := newFakePage(&fakeView{buttons: []*fakeEl{submitButton("送出"), submitButton("完成預訂")}})

	assert.True(t, formFor(p, booking.ContactInfo{}).Submit(context.Background()))
	assert.Equal(t, []string{"完成預訂"}, p.clicks)
}

func TestSubmitTriesNextWhenClickFails(t *testing.T) {
	broken := submitButton("完成預訂")
	broken.clickErr = errors.New("intercepted")
	hidden := submitButton("送出")
	hidden.hidden = true
	p := newFakePage(&fakeView{buttons: []*fakeEl{broken, hidden, submitButton("確認預訂")}})

	assert.True(t, formFor(p, booking.ContactInfo{}).Submit(context.Background()))
	assert.Equal(t, []string{"確認預訂"}, p.clicks)
}

func TestSubmitNoMatch(t *testing.T) {
	p := newFakePage(&fakeView{buttons: []*fakeEl{button("返回"), button("取消")}})
	assert.False(t, formFor(p, booking.ContactInfo{}).Submit(context.Background()))
	assert.Empty(t, p.clicks)
}
