package importer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/clubledger/pkg/club"
	"github.com/dmitrymomot/clubledger/pkg/payfact"
)

// Row is one imported client record with raw textual values.
type Row struct {
	Line             int    `json:"-"`
	FullName         string `json:"fullName" validate:"required,max=200"`
	ParentName       string `json:"parentName" validate:"max=200"`
	Phone            string `json:"phone" validate:"max=40"`
	WhatsApp         string `json:"whatsApp" validate:"max=40"`
	Telegram         string `json:"telegram" validate:"max=100"`
	Instagram        string `json:"instagram" validate:"max=100"`
	Area             string `json:"area" validate:"required_with=Group"`
	Group            string `json:"group" validate:"required_with=Area"`
	SubscriptionPlan string `json:"subscriptionPlan" validate:"omitempty,plan"`
	PayAmount        string `json:"payAmount" validate:"omitempty,amount"`
	PayDate          string `json:"payDate" validate:"omitempty,day"`
	StartDate        string `json:"startDate" validate:"omitempty,day"`
	RemainingLessons string `json:"remainingLessons" validate:"omitempty,lessons"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails on empty tags or nil functions.
	_ = v.RegisterValidation("plan", func(fl validator.FieldLevel) bool {
		return club.Plan(strings.TrimSpace(fl.Field().String())).Known()
	})
	_ = v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		n, ok := payfact.ParseAmount(fl.Field().String())
		return ok && n >= 0
	})
	_ = v.RegisterValidation("day", func(fl validator.FieldLevel) bool {
		_, ok := club.ParseDay(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("lessons", func(fl validator.FieldLevel) bool {
		_, ok := payfact.ParseLessonCount(fl.Field().String())
		return ok
	})
	return v
}

func (im *Importer) validate(r Row) error {
	err := im.validator.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidRow, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidRow, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "required_with":
		return fe.Field() + " is required when " + lowerFirst(fe.Param()) + " is set"
	case "max":
		return fe.Field() + " is too long"
	case "plan":
		return fmt.Sprintf("%s %q is not a known plan", fe.Field(), fe.Value())
	case "amount":
		return fmt.Sprintf("%s %q is not a valid amount", fe.Field(), fe.Value())
	case "day":
		return fmt.Sprintf("%s %q is not a valid date", fe.Field(), fe.Value())
	case "lessons":
		return fmt.Sprintf("%s %q is not a lesson count", fe.Field(), fe.Value())
	}
	return fe.Field() + " is invalid"
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// terms converts the validated row into placement terms.
func (r Row) terms() club.Terms {
	t := club.Terms{
		Area:             strings.TrimSpace(r.Area),
		Group:            strings.TrimSpace(r.Group),
		SubscriptionPlan: club.Plan(strings.TrimSpace(r.SubscriptionPlan)),
	}
	if n, ok := payfact.ParseAmount(r.PayAmount); ok {
		t.PayAmount = n
	}
	if d, ok := club.ParseDay(r.PayDate); ok {
		t.PayDate = club.FormatDate(d)
	}
	if d, ok := club.ParseDay(r.StartDate); ok {
		t.StartDate = club.FormatDate(d)
	}
	if n, ok := payfact.ParseLessonCount(r.RemainingLessons); ok {
		t.RemainingLessons = club.IntPtr(n)
	}
	return t
}
