package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/DjordjeVuckovic/model-hub-proxy/docs"
	"github.com/DjordjeVuckovic/model-hub-proxy/internal/apperr"
	pkgserver "github.com/DjordjeVuckovic/model-hub-proxy/pkg/server"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(hc pkgserver.HealthChecker) *Server {
	cfg := &Config{Port: "0", CorsOrigins: []string{"http://localhost:3000"}, CorsAllowCredentials: true}
	return New(cfg, hc).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

func TestServer_HealthCheck(t *testing.T) {
	s := newTestServer(pkgserver.NewOkHealthChecker())

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_HealthCheckUnhealthy(t *testing.T) {
	s := newTestServer(pkgserver.HealthCheckerFunc(func(context.Context) bool { return false }))

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestServer_ErrorHandlerInstalled(t *testing.T) {
	s := newTestServer(pkgserver.NewOkHealthChecker())
	s.Echo.GET("/private", func(c echo.Context) error {
		return apperr.NewUnauthorized("Failed to get access token!")
	})

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/private", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Failed to get access token!"}`, rec.Body.String())
}

func TestServer_CorsAllowsConfiguredOriginWithCredentials(t *testing.T) {
	s := newTestServer(pkgserver.NewOkHealthChecker())
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")

	rec := serve(s, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
}

func TestServer_OpenApiDocument(t *testing.T) {
	s := newTestServer(pkgserver.NewOkHealthChecker())

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/models/account")
}

func TestServer_RecoversFromPanics(t *testing.T) {
	s := newTestServer(pkgserver.NewOkHealthChecker())
	s.Echo.GET("/panic", func(c echo.Context) error {
		panic("boom")
	})

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
