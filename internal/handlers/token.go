package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/AlenaMolokova/cardauth/internal/utils"
	"github.com/AlenaMolokova/cardauth/internal/validation"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// StatsSubject is the token subject granted access to the stats endpoint.
const StatsSubject = "stats"

type TokenHandler struct {
	apiKeyHash []byte
	secret     string
	ttl        time.Duration
	validator  validation.APIKeyValidator
}

func NewTokenHandler(apiKeyHash, secret string, ttl time.Duration, validator validation.APIKeyValidator) *TokenHandler {
	return &TokenHandler{
		apiKeyHash: []byte(apiKeyHash),
		secret:     secret,
		ttl:        ttl,
		validator:  validator,
	}
}

func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if len(h.apiKeyHash) == 0 {
		utils.WriteJSONError(w, http.StatusServiceUnavailable, "Token issuance is disabled")
		return
	}

	var req struct {
		APIKey string `json:"api_key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Debug("Failed to decode token request")
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if !h.validator.ValidateAPIKey(req.APIKey) {
		utils.WriteJSONError(w, http.StatusUnauthorized, "Invalid API key")
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.apiKeyHash, []byte(req.APIKey)); err != nil {
		log.Warn("Rejected token request with wrong API key")
		utils.WriteJSONError(w, http.StatusUnauthorized, "Invalid API key")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": StatsSubject,
		"exp": time.Now().Add(h.ttl).Unix(),
	})
	tokenString, err := token.SignedString([]byte(h.secret))
	if err != nil {
		log.WithError(err).Error("Failed to sign token")
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Authorization", "Bearer "+tokenString)
	w.WriteHeader(http.StatusOK)
	log.Info("Issued stats token")
}
