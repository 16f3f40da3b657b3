package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/storage"
	"gearguard/pkg/customvalidator"
	"gearguard/pkg/eventbus"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	logger := zap.NewNop()

	v := validator.New()
	require.NoError(t, customvalidator.RegisterCustomValidations(v))
	e.Validator = utils.NewValidator(v)

	st := storage.NewMemoryStorage()
	jwtSvc := service.NewJWTService("test-secret", time.Hour, 24*time.Hour, logger)
	bus := eventbus.New(logger)

	require.NoError(t, InitRouter(context.Background(), e, st, jwtSvc, bus, logger))
	return e
}

func startSession(t *testing.T, e *echo.Echo, email string) string {
	t.Helper()

	body := `{"external_user_id":"ext-1","display_name":"Test","email":"` + email + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/session", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, "сессия должна открываться: %s", rec.Body.String())

	var envelope struct {
		Body struct {
			AccessToken string `json:"access_token"`
		} `json:"body"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Body.AccessToken)
	return envelope.Body.AccessToken
}

func TestTechnicianStatsRoute(t *testing.T) {
	e := newTestServer(t)
	token := startSession(t, e, "admin@example.com")

	req := httptest.NewRequest(http.MethodGet, "/api/technicians/t1/stats", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "маршрут статистики техника зарегистрирован и доступен")

	var envelope struct {
		Status bool `json:"status"`
		Body   struct {
			PendingCount   int `json:"pending_count"`
			CompletedCount int `json:"completed_count"`
			ScrapCount     int `json:"scrap_count"`
		} `json:"body"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Status)
	assert.Zero(t, envelope.Body.PendingCount, "в пустом хранилище заявок нет")
}

func TestTechnicianStatsRoute_RequiresAuth(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/technicians/t1/stats", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code, "без токена доступ закрыт")
}
