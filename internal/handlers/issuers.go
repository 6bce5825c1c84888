package handlers

import (
	"net/http"

	"github.com/AlenaMolokova/cardauth/internal/card"
	"github.com/AlenaMolokova/cardauth/internal/models"
	"github.com/AlenaMolokova/cardauth/internal/utils"
)

type IssuersHandler struct{}

func NewIssuersHandler() *IssuersHandler {
	return &IssuersHandler{}
}

func (h *IssuersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	issuers := append(card.Issuers(), card.Unknown)

	response := make([]models.IssuerInfo, 0, len(issuers))
	for _, issuer := range issuers {
		response = append(response, models.IssuerInfo{
			Name:       issuer.Name(),
			Recognized: issuer.Recognized(),
			Lengths:    issuer.Lengths(),
		})
	}

	utils.WriteJSON(w, http.StatusOK, response)
}
