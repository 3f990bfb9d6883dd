package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transaction-dashboard/internal/api/handler/router"
	"github.com/vfg2006/transaction-dashboard/internal/domain"
	"github.com/vfg2006/transaction-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/transaction-dashboard/internal/usecases/dashboarding/mocks"
	"github.com/vfg2006/transaction-dashboard/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newTestRouter(service dashboarding.DashboardService) http.Handler {
	return router.New(
		router.WithRoutes(Healthcheck(service)...),
		router.WithRoutes(Months(service)...),
		router.WithRoutes(Dashboards(service)...),
	)
}

func sampleView(id string) *domain.DashboardView {
	return &domain.DashboardView{
		SessionID: id,
		Month:     domain.MonthOption{Code: "03", Label: "Mar", Name: "March"},
		Transactions: domain.TransactionsPanel{
			Title:     "All Transactions",
			Status:    domain.ViewStatusLoading,
			Page:      1,
			PageLabel: "Page 1 of 1",
		},
	}
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestDashboardRoutes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setup      func(service *mocks.MockDashboardService)
		wantStatus int
		validate   func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "cria sessão sem corpo usa mês padrão",
			method: http.MethodPost,
			path:   "/v1/dashboards",
			setup: func(service *mocks.MockDashboardService) {
				service.EXPECT().Create(gomock.Any(), "").Return(sampleView("abc"), nil)
			},
			wantStatus: http.StatusCreated,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				view := decodeBody[domain.DashboardView](t, rec)
				assert.Equal(t, "abc", view.SessionID)
				assert.Equal(t, "Page 1 of 1", view.Transactions.PageLabel)
			},
		},
		{
			name:   "cria sessão com mês",
			method: http.MethodPost,
			path:   "/v1/dashboards",
			body:   `{"month":"07"}`,
			setup: func(service *mocks.MockDashboardService) {
				service.EXPECT().Create(gomock.Any(), "07").Return(sampleView("abc"), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "cria sessão com mês inválido",
			method: http.MethodPost,
			path:   "/v1/dashboards",
			body:   `{"month":"13"}`,
			setup: func(service *mocks.MockDashboardService) {
				service.EXPECT().Create(gomock.Any(), "13").
					Return(nil, dashboarding.NewDashboardError(domain.ErrInvalidMonth, apiErrors.ErrInvalidFormat, "month \"13\""))
			},
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				apiErr := decodeBody[apiErrors.APIError](t, rec)
				assert.Equal(t, apiErrors.ErrInvalidFormat, apiErr.Code)
			},
		},
		{
			name:       "corpo inválido",
			method:     http.MethodPost,
			path:       "/v1/dashboards",
			body:       `{`,
			setup:      func(service *mocks.MockDashboardService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "consulta com espera",
			method: http.MethodGet,
			path:   "/v1/dashboards/abc?wait=true",
			setup: func(service *mocks.MockDashboardService) {
				service.EXPECT().View(gomock.Any(), "abc", true).Return(sampleView("abc"), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "wait inválido",
			method:     http.MethodGet,
			path:       "/v1/dashboards/abc?wait=talvez",
			setup:      func(service *mocks.MockDashboardService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "sessão inexistente",
			method: http.MethodGet,
			path:   "/v1/dashboards/nope",
			setup: func(service *mocks.MockDashboardService) {
				service.EXPECT().View(gomock.Any(), "nope", false).
					Return(nil, dashboarding.NewDashboardError(dashboarding.ErrSessionNotFound, apiErrors.ErrDashboardNotFound, ""))
			},
			wantStatus: http.StatusNotFound,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				apiErr := decodeBody[apiErrors.APIError](t, rec)
				assert.Equal(t, apiErrors.ErrDashboardNotFound, apiErr.Code)
			},
		},
		{
			name:   "troca de mês",
			method: http.MethodPut,
			path:   "/v1/dashboards/abc/month",
			body:   `{"month":"05"}`,
			setup: func(service *mocks.MockDashboardService) {
				service.EXPECT().SetMonth(gomock.Any(), "abc", "05").Return(sampleView("abc"), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "troca de mês sem mês",
			method:     http.MethodPut,
			path:       "/v1/dashboards/abc/month",
			body:       `{}`,
			setup:      func(service *mocks.MockDashboardService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "busca vazia limpa o filtro",
			method: http.MethodPut,
			path:   "/v1/dashboards/abc/search",
			body:   `{"search":""}`,
			setup: func(service *mocks.MockDashboardService) {
				service.EXPECT().SetSearch(gomock.Any(), "abc", "").Return(sampleView("abc"), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "próxima página desabilitada",
			method: http.MethodPost,
			path:   "/v1/dashboards/abc/transactions/next",
			setup: func(service *mocks.MockDashboardService) {
				service.EXPECT().NextPage(gomock.Any(), "abc").
					Return(nil, dashboarding.NewDashboardError(dashboarding.ErrNoNextPage, apiErrors.ErrPageUnavailable, ""))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "página anterior",
			method: http.MethodPost,
			path:   "/v1/dashboards/abc/transactions/previous",
			setup: func(service *mocks.MockDashboardService) {
				service.EXPECT().PreviousPage(gomock.Any(), "abc").Return(sampleView("abc"), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "atualizar",
			method: http.MethodPost,
			path:   "/v1/dashboards/abc/refresh",
			setup: func(service *mocks.MockDashboardService) {
				service.EXPECT().Refresh(gomock.Any(), "abc").Return(sampleView("abc"), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "encerrar",
			method: http.MethodDelete,
			path:   "/v1/dashboards/abc",
			setup: func(service *mocks.MockDashboardService) {
				service.EXPECT().Close(gomock.Any(), "abc").Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "lista de meses",
			method: http.MethodGet,
			path:   "/v1/months",
			setup: func(service *mocks.MockDashboardService) {
				service.EXPECT().Months().Return(dashboarding.MonthOptions())
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				months := decodeBody[[]domain.MonthOption](t, rec)
				require.Len(t, months, 12)
				assert.Equal(t, domain.MonthOption{Code: "01", Label: "Jan", Name: "January"}, months[0])
			},
		},
		{
			name:       "rota inexistente",
			method:     http.MethodGet,
			path:       "/v1/unknown",
			setup:      func(service *mocks.MockDashboardService) {},
			wantStatus: http.StatusNotFound,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				apiErr := decodeBody[apiErrors.APIError](t, rec)
				assert.Equal(t, apiErrors.ErrNotFound, apiErr.Code)
			},
		},
		{
			name:   "healthcheck",
			method: http.MethodGet,
			path:   "/healthcheck",
			setup: func(service *mocks.MockDashboardService) {
				service.EXPECT().Sessions().Return(2)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				health := decodeBody[HealthcheckResponse](t, rec)
				assert.Equal(t, "ok", health.Status)
				assert.Equal(t, 2, health.Sessions)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockDashboardService(ctrl)
			tt.setup(service)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			newTestRouter(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}
