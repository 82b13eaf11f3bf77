package validators

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/vet-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/vet-clinic/internal/httperr"
	"github.com/BruksfildServices01/vet-clinic/internal/timezone"
)

const (
	msgInvalidField = "Valor inválido."
	msgInvalidType  = "Tipo de dado inválido."
	msgInvalidBody  = "Corpo da requisição inválido."
)

var clockTimeRe = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)

var validate = newValidator()

// Catalog is implemented by request types that carry their own messages.
// Keys are "field.tag" or "field" as a fallback for every tag.
type Catalog interface {
	ValidationMessages() map[string]string
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names, the ones clients actually send
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	must(v.RegisterValidation("clocktime", func(fl validator.FieldLevel) bool {
		return IsClockTime(fl.Field().String())
	}))
	must(v.RegisterValidation("calendardate", func(fl validator.FieldLevel) bool {
		_, err := ParseCalendarDate(fl.Field().String())
		return err == nil
	}))
	must(v.RegisterValidation("appointmentstatus", func(fl validator.FieldLevel) bool {
		_, ok := appointment.ParseStatus(fl.Field().String())
		return ok
	}))

	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// ======================================================
// FIELD RULES
// ======================================================

func IsClockTime(s string) bool {
	return clockTimeRe.MatchString(s)
}

// ParseCalendarDate accepts YYYY-MM-DD or an RFC 3339 timestamp, whose date
// part is kept. The result is midnight UTC.
func ParseCalendarDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	if d, err := time.Parse(timezone.DateLayout, s); err == nil {
		return d, nil
	}

	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// NormalizeClockTime pads "9:05" to "09:05:00".
func NormalizeClockTime(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !IsClockTime(s) {
		return "", errors.New("invalid clock time")
	}

	layout := "15:04:05"
	if strings.Count(s, ":") == 1 {
		layout = "15:04"
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return "", err
	}
	return t.Format("15:04:05"), nil
}

// ======================================================
// STRUCT VALIDATION
// ======================================================

// Struct validates s and returns a *httperr.ValidationError listing one
// message per failing field, or nil.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := catalog(s)
	out := &httperr.ValidationError{}
	seen := make(map[string]bool, len(verrs))

	for _, fe := range verrs {
		field := fe.Field()
		if seen[field] {
			continue
		}
		seen[field] = true
		out.Add(field, lookup(msgs, field, fe.Tag(), msgInvalidField))
	}

	return out
}

// FromBindError turns a JSON decoding failure into a validation error.
// An empty body decodes to nothing and is left for Struct to report.
func FromBindError(err error, s any) error {
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return httperr.NewValidation(
			typeErr.Field,
			lookup(catalog(s), typeErr.Field, "type", msgInvalidType),
		)
	}

	return httperr.NewValidation("body", msgInvalidBody)
}

func catalog(s any) map[string]string {
	if c, ok := s.(Catalog); ok {
		return c.ValidationMessages()
	}
	return nil
}

func lookup(msgs map[string]string, field, tag, fallback string) string {
	if m, ok := msgs[field+"."+tag]; ok {
		return m
	}
	if m, ok := msgs[field]; ok {
		return m
	}
	return fallback
}
