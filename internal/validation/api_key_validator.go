package validation

type APIKeyValidator interface {
	ValidateAPIKey(key string) bool
}

type DefaultAPIKeyValidator struct{}

func NewDefaultAPIKeyValidator() *DefaultAPIKeyValidator {
	return &DefaultAPIKeyValidator{}
}

// bcrypt ignores everything past 72 bytes.
func (v *DefaultAPIKeyValidator) ValidateAPIKey(key string) bool {
	return len(key) >= 16 && len(key) <= 72
}
