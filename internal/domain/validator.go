package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// MinLunchBreak is the shortest gap allowed between the second and third
// entries of a day.
const MinLunchBreak = 60 * time.Minute

// entryInput carries a raw entry through the stateless checks. Tags run in
// order and stop at the first failure.
type entryInput struct {
	Momento string `validate:"required,momento,workday"`
}

// inputErrors maps a failed validation tag to its rejection.
var inputErrors = map[string]error{
	"required": ErrMissingField,
	"momento":  ErrInvalidFormat,
	"workday":  ErrWeekendEntry,
}

var inputValidator = newInputValidator()

func newInputValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "momento", func(fl validator.FieldLevel) bool {
		_, err := ParseTimeEntry(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "workday", func(fl validator.FieldLevel) bool {
		entry, err := ParseTimeEntry(fl.Field().String())
		return err == nil && !IsWeekend(entry)
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// ValidateInput runs the checks that need no stored state: presence,
// format and weekend. It returns the parsed entry.
func ValidateInput(raw string) (time.Time, error) {
	in := entryInput{Momento: strings.TrimSpace(raw)}
	if err := inputValidator.Struct(in); err != nil {
		return time.Time{}, inputError(err)
	}
	return ParseTimeEntry(in.Momento)
}

func inputError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if rejection, ok := inputErrors[fe.Tag()]; ok {
				return rejection
			}
		}
	}
	return err
}

// ValidateAgainst checks a parsed entry against the entries already accepted
// for the same user and date. existing must be sorted ascending.
func ValidateAgainst(existing []time.Time, entry time.Time) error {
	if len(existing) >= MaxEntriesPerDay {
		return ErrMaxEntries
	}

	for _, t := range existing {
		if SameSecond(t, entry) {
			return ErrDuplicateEntry
		}
	}

	candidate := make([]time.Time, 0, len(existing)+1)
	candidate = append(candidate, existing...)
	candidate = append(candidate, entry)
	sortTimes(candidate)

	if len(candidate) >= 3 && candidate[2].Sub(candidate[1]) < MinLunchBreak {
		return ErrLunchViolation
	}
	return nil
}

// Validate runs every check in order and returns the accepted entry.
func Validate(existing []time.Time, raw string) (time.Time, error) {
	entry, err := ValidateInput(raw)
	if err != nil {
		return time.Time{}, err
	}
	if err := ValidateAgainst(existing, entry); err != nil {
		return time.Time{}, err
	}
	return entry, nil
}
