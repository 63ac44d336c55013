package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/voll-fit/voll-api/internal/handler"
	"github.com/voll-fit/voll-api/pkg/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := &config.Config{
		Env:       "test",
		APIPrefix: "/api",
	}
	h := Handlers{
		Students:  handler.NewStudentHandler(nil),
		Schedules: handler.NewScheduleHandler(nil),
		Financial: handler.NewFinancialHandler(nil, nil),
		Metrics:   handler.NewMetricsHandler(nil, nil),
	}
	return New(cfg, zap.NewNop(), h, nil)
}

func perform(r *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRouterMethodNotAllowedOnStudents(t *testing.T) {
	r := newTestRouter(t)

	w := perform(r, http.MethodPut, "/api/students")

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "GET, POST, DELETE", w.Header().Get("Allow"))
	assert.JSONEq(t, `{"message":"Método não permitido"}`, w.Body.String())
}

func TestRouterMethodNotAllowedOnStudentByID(t *testing.T) {
	r := newTestRouter(t)

	w := perform(r, http.MethodPatch, "/api/students/s1")

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "GET, POST, DELETE", w.Header().Get("Allow"))
}

func TestRouterMethodNotAllowedOnFinancial(t *testing.T) {
	r := newTestRouter(t)

	w := perform(r, http.MethodPut, "/api/financial")

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "GET, POST, PATCH, DELETE", w.Header().Get("Allow"))
	assert.JSONEq(t, `{"message":"Método não permitido"}`, w.Body.String())
}

func TestRouterUnknownPath(t *testing.T) {
	r := newTestRouter(t)

	w := perform(r, http.MethodGet, "/api/unknown")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouterHealth(t *testing.T) {
	r := newTestRouter(t)

	w := perform(r, http.MethodGet, "/health")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouterSummaryRouteAbsentWhenDisabled(t *testing.T) {
	r := newTestRouter(t)

	w := perform(r, http.MethodGet, "/api/summary")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
