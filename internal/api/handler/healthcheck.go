package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/transaction-dashboard/internal/usecases/dashboarding"
)

type HealthcheckResponse struct {
	Status   string    `json:"status"`
	Time     time.Time `json:"time"`
	Sessions int       `json:"sessions"`
}

// HealthcheckHandler responde a liveness com o número de sessões abertas
func HealthcheckHandler(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthcheckResponse{
			Status:   "ok",
			Time:     time.Now(),
			Sessions: service.Sessions(),
		})
	})
}
