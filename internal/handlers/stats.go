package handlers

import (
	"net/http"

	"github.com/AlenaMolokova/cardauth/internal/middleware"
	"github.com/AlenaMolokova/cardauth/internal/usecase"
	"github.com/AlenaMolokova/cardauth/internal/utils"
	log "github.com/sirupsen/logrus"
)

type StatsHandler struct {
	authUC usecase.AuthenticationUseCase
}

func NewStatsHandler(authUC usecase.AuthenticationUseCase) *StatsHandler {
	return &StatsHandler{authUC: authUC}
}

func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetClientID(r)
	if !ok {
		utils.WriteJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	stats, err := h.authUC.GetIssuerStats(r.Context())
	if err != nil {
		log.WithError(err).WithField("client", clientID).Error("Failed to get issuer stats")
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, stats)
}
