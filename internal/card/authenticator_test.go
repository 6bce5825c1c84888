package card

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func visaNumbers() []string {
	return []string{
		"4539571147647251",
		"4532983409238819",
		"4485600412608021",
		"4916252910064718",
		"4916738103790259",
		"4222222222222",
	}
}

func amexNumbers() []string {
	return []string{
		"343380440754432",
		"377156543570043",
		"340173808718013",
		"375801706141502",
		"372728319416034",
	}
}

func mastercardNumbers() []string {
	return []string{
		"5236313877109142",
		"5431604665471808",
		"5571788302926264",
		"5411516521560216",
		"5320524083396284",
	}
}

func discoverNumbers() []string {
	return []string{
		"6011297718292606",
		"6011993225918523",
		"6011420510510997",
		"6011618637473995",
		"6011786207277235",
	}
}

func TestAuthenticateValidCards(t *testing.T) {
	tests := []struct {
		issuer  string
		numbers []string
	}{
		{"visa", visaNumbers()},
		{"amex", amexNumbers()},
		{"mastercard", mastercardNumbers()},
		{"discover", discoverNumbers()},
	}

	for _, tt := range tests {
		for _, number := range tt.numbers {
			t.Run(tt.issuer+"/"+number, func(t *testing.T) {
				result := Authenticate(number)

				assert.Equal(t, tt.issuer, result.IssuerName())
				assert.True(t, result.LengthValid, "length check")
				assert.True(t, result.LuhnValid, "luhn check")
				assert.True(t, result.Valid, "overall")
			})
		}
	}
}

func TestAuthenticateInvalidCards(t *testing.T) {
	tests := []struct {
		name     string
		number   string
		expected Result
	}{
		{
			name:   "bad checksum",
			number: "4539571147647250",
			expected: Result{
				Issuer:      Visa,
				LengthValid: true,
			},
		},
		{
			name:   "visa wrong length",
			number: "45395711476472",
			expected: Result{
				Issuer:    Visa,
				LuhnValid: LuhnCheck("45395711476472"),
			},
		},
		{
			name:   "all fours",
			number: strings.Repeat("4", 9),
			expected: Result{
				Issuer:    Visa,
				LuhnValid: LuhnCheck(strings.Repeat("4", 9)),
			},
		},
		{
			name:   "unknown issuer with valid shape",
			number: "999999999999",
			expected: Result{
				Issuer:      Unknown,
				LengthValid: true,
			},
		},
		{
			name:   "unknown issuer passing luhn",
			number: "9999999999999995",
			expected: Result{
				Issuer:      Unknown,
				LengthValid: true,
				LuhnValid:   true,
			},
		},
		{
			name:     "empty",
			number:   "",
			expected: Result{Issuer: Unknown},
		},
		{
			name:     "letters",
			number:   "not a card",
			expected: Result{Issuer: Unknown},
		},
		{
			name:   "single zero",
			number: "0",
			expected: Result{
				Issuer:    Unknown,
				LuhnValid: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Authenticate(tt.number))
		})
	}
}

func TestAuthenticateAllFoursIsVisaShaped(t *testing.T) {
	for n := 2; n <= 20; n++ {
		number := strings.Repeat("4", n)
		result := Authenticate(number)

		assert.Equal(t, Visa, result.Issuer, number)
		assert.Equal(t, n == 13 || n == 16, result.LengthValid, number)
	}
}

func TestAuthenticateInvariant(t *testing.T) {
	inputs := append(append(visaNumbers(), amexNumbers()...), "", "0", "999999999999", "4539571147647250", "6011", "abc")

	for _, number := range inputs {
		result := Authenticate(number)
		assert.Equal(t, result.LengthValid && result.LuhnValid && result.Issuer.Recognized(), result.Valid, number)
	}
}

func TestAuthenticateIdempotent(t *testing.T) {
	for _, number := range append(mastercardNumbers(), discoverNumbers()...) {
		assert.Equal(t, Authenticate(number), Authenticate(number))
	}
}
