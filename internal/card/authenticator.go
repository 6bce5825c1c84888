// Package card classifies payment card numbers by issuer and validates
// them with a length rule and the Luhn checksum.
package card

// Result is the outcome of a single Authenticate call.
type Result struct {
	Issuer      Issuer `json:"issuer" yaml:"issuer"`
	Valid       bool   `json:"valid" yaml:"valid"`
	LengthValid bool   `json:"length_valid" yaml:"length_valid"`
	LuhnValid   bool   `json:"luhn_valid" yaml:"luhn_valid"`
}

func (r Result) IssuerName() string {
	return r.Issuer.Name()
}

// Authenticate classifies number and runs the length and Luhn checks.
// It never fails: malformed input yields a result with false flags.
func Authenticate(number string) Result {
	issuer := Classify(number)
	lengthValid := issuer.LengthOK(number)
	luhnValid := LuhnCheck(number)

	return Result{
		Issuer:      issuer,
		Valid:       lengthValid && luhnValid && issuer.Recognized(),
		LengthValid: lengthValid,
		LuhnValid:   luhnValid,
	}
}
