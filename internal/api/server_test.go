package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/franbz1/hotel-san-miguel/internal/config"
	"github.com/franbz1/hotel-san-miguel/internal/domain"
	"github.com/franbz1/hotel-san-miguel/internal/usecases/authenticating"
	authmocks "github.com/franbz1/hotel-san-miguel/internal/usecases/authenticating/mocks"
	"github.com/franbz1/hotel-san-miguel/internal/usecases/reporting/mocks"
	"github.com/franbz1/hotel-san-miguel/pkg/log"
	"github.com/franbz1/hotel-san-miguel/pkg/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

type fakeCronJob struct {
	triggered bool
}

func (f *fakeCronJob) TriggerManualSync() bool {
	f.triggered = true
	return true
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"is_running": false}
}

func newTestServer(t *testing.T) (*Server, *authmocks.MockAuthenticator, *mocks.MockRevenueReporter, *fakeCronJob) {
	t.Helper()

	ctrl := gomock.NewController(t)
	authenticator := authmocks.NewMockAuthenticator(ctrl)
	revenue := mocks.NewMockRevenueReporter(ctrl)
	cronJob := &fakeCronJob{}

	srv, err := New(&config.Config{Server: config.Server{Host: "localhost", Port: "0"}}, Services{
		Authenticator:  authenticator,
		Revenue:        revenue,
		Occupancy:      mocks.NewMockOccupancyReporter(ctrl),
		Closing:        mocks.NewMockClosingManager(ctrl),
		RevenueClosing: cronJob,
	})
	require.NoError(t, err)

	return srv, authenticator, revenue, cronJob
}

func TestServer_ReportRoutesRequireManagerRole(t *testing.T) {
	tests := []struct {
		name         string
		roleID       int
		expectedCode int
	}{
		{name: "admin", roleID: middleware.RoleAdmin, expectedCode: http.StatusOK},
		{name: "gerente", roleID: middleware.RoleGerente, expectedCode: http.StatusOK},
		{name: "recepcionista", roleID: middleware.RoleRecepcionista, expectedCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, authenticator, revenue, _ := newTestServer(t)

			authenticator.EXPECT().ValidateToken("token").Return(&domain.Claims{UserID: 7, UserRoleID: tt.roleID}, nil)
			if tt.expectedCode == http.StatusOK {
				revenue.EXPECT().DailyRevenue(gomock.Any(), "2024-01-15").Return(&domain.DailyRevenue{
					Date:              "2024-01-15",
					TotalRevenue:      decimal.Zero,
					AveragePerInvoice: decimal.Zero,
				}, nil)
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/reportes/ingresos/diario?date=2024-01-15", nil)
			req.Header.Set("Authorization", "Bearer token")
			rec := httptest.NewRecorder()

			srv.Handler().ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestServer_ReportRoutesRejectMissingToken(t *testing.T) {
	srv, _, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/reportes/ingresos/mensual?month=1", nil)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_ExpiredToken(t *testing.T) {
	srv, authenticator, _, _ := newTestServer(t)
	authenticator.EXPECT().ValidateToken("velho").Return(nil, authenticating.ErrExpiredToken)

	req := httptest.NewRequest(http.MethodGet, "/v1/reportes/facturas?start_date=2024-01-01&end_date=2024-01-02", nil)
	req.Header.Set("Authorization", "Bearer velho")
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "AUTH_007")
}

func TestServer_HealthcheckIsPublic(t *testing.T) {
	srv, _, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestServer_RunRevenueClosingJob(t *testing.T) {
	t.Run("admin dispara o fechamento", func(t *testing.T) {
		srv, authenticator, _, cronJob := newTestServer(t)
		authenticator.EXPECT().ValidateToken("token").Return(&domain.Claims{UserID: 1, UserRoleID: middleware.RoleAdmin}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/cron/revenue-closing/run", nil)
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()

		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.True(t, cronJob.triggered)
	})

	t.Run("gerente não dispara", func(t *testing.T) {
		srv, authenticator, _, cronJob := newTestServer(t)
		authenticator.EXPECT().ValidateToken("token").Return(&domain.Claims{UserID: 2, UserRoleID: middleware.RoleGerente}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/cron/revenue-closing/run", nil)
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()

		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, cronJob.triggered)
	})

	t.Run("tipo desconhecido", func(t *testing.T) {
		srv, authenticator, _, _ := newTestServer(t)
		authenticator.EXPECT().ValidateToken("token").Return(&domain.Claims{UserID: 1, UserRoleID: middleware.RoleAdmin}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/cron/meta-sync/run", nil)
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()

		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
