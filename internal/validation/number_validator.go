package validation

import (
	"errors"
	"regexp"
	"strings"

	"github.com/AlenaMolokova/cardauth/internal/constants"
)

var (
	ErrEmptyNumber = errors.New("card number is required")
	ErrTooLong     = errors.New("card number is too long")
	ErrNonDigit    = errors.New("card number must be digits")
)

type NumberValidator interface {
	ValidateNumber(number string) (string, error)
}

// DigitsValidator rejects input the card package would only ever report
// as all-false, so callers can tell malformed input from an invalid card.
type DigitsValidator struct {
	digitRegex *regexp.Regexp
}

func NewDigitsValidator() *DigitsValidator {
	return &DigitsValidator{
		digitRegex: regexp.MustCompile(`^\d+$`),
	}
}

// ValidateNumber returns number with surrounding whitespace removed.
func (v *DigitsValidator) ValidateNumber(number string) (string, error) {
	if len(number) > constants.MaxInputLength {
		return "", ErrTooLong
	}

	number = strings.TrimSpace(number)
	if number == "" {
		return "", ErrEmptyNumber
	}

	if !v.digitRegex.MatchString(number) {
		return "", ErrNonDigit
	}

	return number, nil
}
