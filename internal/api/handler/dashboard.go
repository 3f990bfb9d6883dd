package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/transaction-dashboard/internal/domain"
	"github.com/vfg2006/transaction-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/transaction-dashboard/pkg/apiErrors"
	"github.com/vfg2006/transaction-dashboard/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type CreateDashboardRequest struct {
	Month string `json:"month"`
}

type SetMonthRequest struct {
	Month string `json:"month"`
}

type SetSearchRequest struct {
	Search string `json:"search"`
}

func CreateDashboard(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// corpo é opcional: sem ele a sessão abre no mês padrão
		var req CreateDashboardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body: "+err.Error(), nil)
			return
		}

		view, err := service.Create(r.Context(), req.Month)
		if err != nil {
			writeDashboardError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, view)
	})
}

// GetDashboard devolve o view-model atual; ?wait=true espera as três visões assentarem
func GetDashboard(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := sessionID(r)

		wait := false
		if raw := r.URL.Query().Get("wait"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "wait must be a boolean", nil)
				return
			}
			wait = parsed
		}

		view, err := service.View(r.Context(), id, wait)
		if err != nil {
			writeDashboardError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	})
}

func SetDashboardMonth(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req SetMonthRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body: "+err.Error(), nil)
			return
		}

		if req.Month == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "month is required", nil)
			return
		}

		respond(w, r, func() (*domain.DashboardView, error) {
			return service.SetMonth(r.Context(), sessionID(r), req.Month)
		})
	})
}

func SetDashboardSearch(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req SetSearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body: "+err.Error(), nil)
			return
		}

		respond(w, r, func() (*domain.DashboardView, error) {
			return service.SetSearch(r.Context(), sessionID(r), req.Search)
		})
	})
}

func NextTransactionsPage(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, func() (*domain.DashboardView, error) {
			return service.NextPage(r.Context(), sessionID(r))
		})
	})
}

func PreviousTransactionsPage(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, func() (*domain.DashboardView, error) {
			return service.PreviousPage(r.Context(), sessionID(r))
		})
	})
}

func RefreshDashboard(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, func() (*domain.DashboardView, error) {
			return service.Refresh(r.Context(), sessionID(r))
		})
	})
}

func CloseDashboard(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := service.Close(r.Context(), sessionID(r)); err != nil {
			writeDashboardError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func sessionID(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("id")
}

func respond(w http.ResponseWriter, r *http.Request, fn func() (*domain.DashboardView, error)) {
	view, err := fn()
	if err != nil {
		writeDashboardError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func writeDashboardError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(log.WithSessionID(r.Context(), sessionID(r))).WithError(err)

	// Verificar se é um DashboardError para obter o código específico
	var dashErr *dashboarding.DashboardError
	if errors.As(err, &dashErr) {
		if apiErrors.StatusFor(dashErr.Code) >= http.StatusInternalServerError {
			logger.Error("dashboard: request failed")
		} else {
			logger.Debug("dashboard: request rejected")
		}
		apiErrors.WriteError(w, dashErr.Code, dashErr.Error(), nil)
		return
	}

	logger.Error("dashboard: unexpected error")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "unexpected error", nil)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("http: error encoding response")
	}
}
