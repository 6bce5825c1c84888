package card

import (
	"fmt"
	"regexp"
)

// Issuer is the payment network a card number is classified as.
type Issuer int

const (
	Unknown Issuer = iota
	Visa
	Discover
	Amex
	MasterCard
)

var (
	visaPrefix       = regexp.MustCompile(`^4+[0-9]+$`)
	discoverPrefix   = regexp.MustCompile(`^[601]+[0-9]+$`)
	amexPrefix       = regexp.MustCompile(`^[37]+[0-9]+$`)
	mastercardPrefix = regexp.MustCompile(`^5+[1-5]+[0-9]+$`)
	otherPrefix      = regexp.MustCompile(`^[0-9]+$`)

	visaLength       = regexp.MustCompile(`^(?:[0-9]{13}|[0-9]{16})$`)
	discoverLength   = regexp.MustCompile(`^[0-9]{16}$`)
	amexLength       = regexp.MustCompile(`^[0-9]{15}$`)
	mastercardLength = regexp.MustCompile(`^[0-9]{16}$`)
	otherLength      = regexp.MustCompile(`^[0-9]{12,19}$`)
)

// Issuers returns the known issuers in classification order.
func Issuers() []Issuer {
	return []Issuer{Visa, Discover, Amex, MasterCard}
}

// ParseIssuer is the inverse of Name.
func ParseIssuer(name string) (Issuer, error) {
	switch name {
	case "visa":
		return Visa, nil
	case "discover":
		return Discover, nil
	case "amex":
		return Amex, nil
	case "mastercard":
		return MasterCard, nil
	case "other":
		return Unknown, nil
	}
	return Unknown, fmt.Errorf("unknown issuer %q", name)
}

func (i Issuer) Name() string {
	switch i {
	case Visa:
		return "visa"
	case Discover:
		return "discover"
	case Amex:
		return "amex"
	case MasterCard:
		return "mastercard"
	default:
		return "other"
	}
}

func (i Issuer) String() string {
	return i.Name()
}

// Recognized reports whether cards of this issuer can be valid at all.
func (i Issuer) Recognized() bool {
	switch i {
	case Visa, Discover, Amex, MasterCard:
		return true
	default:
		return false
	}
}

// Lengths lists the digit counts the issuer accepts.
func (i Issuer) Lengths() []int {
	switch i {
	case Visa:
		return []int{13, 16}
	case Discover, MasterCard:
		return []int{16}
	case Amex:
		return []int{15}
	default:
		return []int{12, 13, 14, 15, 16, 17, 18, 19}
	}
}

// MatchesPrefix reports whether the whole number is shaped like this
// issuer's cards. The rules are character classes, not BIN ranges.
func (i Issuer) MatchesPrefix(number string) bool {
	return i.prefixPattern().MatchString(number)
}

// LengthOK reports whether number is all digits and has an accepted length.
func (i Issuer) LengthOK(number string) bool {
	return i.lengthPattern().MatchString(number)
}

func (i Issuer) prefixPattern() *regexp.Regexp {
	switch i {
	case Visa:
		return visaPrefix
	case Discover:
		return discoverPrefix
	case Amex:
		return amexPrefix
	case MasterCard:
		return mastercardPrefix
	default:
		return otherPrefix
	}
}

func (i Issuer) lengthPattern() *regexp.Regexp {
	switch i {
	case Visa:
		return visaLength
	case Discover:
		return discoverLength
	case Amex:
		return amexLength
	case MasterCard:
		return mastercardLength
	default:
		return otherLength
	}
}

func (i Issuer) MarshalText() ([]byte, error) {
	return []byte(i.Name()), nil
}

func (i *Issuer) UnmarshalText(text []byte) error {
	parsed, err := ParseIssuer(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// Classify returns the first known issuer whose prefix rule matches,
// falling back to Unknown.
func Classify(number string) Issuer {
	for _, issuer := range Issuers() {
		if issuer.MatchesPrefix(number) {
			return issuer
		}
	}
	return Unknown
}
