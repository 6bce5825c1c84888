package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlenaMolokova/cardauth/internal/constants"
	"github.com/AlenaMolokova/cardauth/internal/usecase"
	"github.com/AlenaMolokova/cardauth/internal/utils"
	"github.com/AlenaMolokova/cardauth/internal/validation"
	log "github.com/sirupsen/logrus"
)

type AuthenticateHandler struct {
	authUC usecase.AuthenticationUseCase
}

func NewAuthenticateHandler(authUC usecase.AuthenticationUseCase) *AuthenticateHandler {
	return &AuthenticateHandler{authUC: authUC}
}

func (h *AuthenticateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Number string `json:"number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Debug("Failed to decode authenticate request")
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	check, err := h.authUC.Authenticate(r.Context(), req.Number)
	if err != nil {
		if isValidationError(err) {
			utils.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.WithError(err).Error("Failed to authenticate card")
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, check)
}

type BatchAuthenticateHandler struct {
	authUC usecase.AuthenticationUseCase
}

func NewBatchAuthenticateHandler(authUC usecase.AuthenticationUseCase) *BatchAuthenticateHandler {
	return &BatchAuthenticateHandler{authUC: authUC}
}

func (h *BatchAuthenticateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Numbers []string `json:"numbers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Debug("Failed to decode batch request")
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if len(req.Numbers) == 0 {
		utils.WriteJSONError(w, http.StatusBadRequest, "At least one card number is required")
		return
	}

	if len(req.Numbers) > constants.MaxBatchSize {
		utils.WriteJSONError(w, http.StatusRequestEntityTooLarge, "Too many card numbers")
		return
	}

	checks := h.authUC.AuthenticateBatch(r.Context(), req.Numbers)
	utils.WriteJSON(w, http.StatusOK, checks)
}

func isValidationError(err error) bool {
	return errors.Is(err, validation.ErrEmptyNumber) ||
		errors.Is(err, validation.ErrNonDigit) ||
		errors.Is(err, validation.ErrTooLong)
}
