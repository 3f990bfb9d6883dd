package handler

import (
	"net/http"

	"github.com/vfg2006/transaction-dashboard/internal/usecases/dashboarding"
)

// ListMonths devolve as opções do seletor de mês (01..12)
func ListMonths(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Months())
	})
}
