package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deppfellow/recipes-api/internal/config"
	"github.com/deppfellow/recipes-api/internal/errs"
	"github.com/deppfellow/recipes-api/internal/server"
	"github.com/deppfellow/recipes-api/internal/sqlerr"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(buf *bytes.Buffer, serverCfg config.ServerConfig) *server.Server {
	logger := zerolog.New(buf)
	return &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Server:        serverCfg,
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}
}

func newTestEcho(s *server.Server, handler echo.HandlerFunc) *echo.Echo {
	mw := NewMiddlewares(s)

	e := echo.New()
	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler
	e.Use(
		RequestID(),
		mw.Global.AllowAnyOrigin(),
		mw.Global.CORS(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.RateLimit.RateLimiter(),
	)
	e.GET("/things/:id", handler)
	return e
}

func decodeHTTPError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequestID(t *testing.T) {
	s := newTestServer(&bytes.Buffer{}, config.ServerConfig{CORSAllowedOrigins: []string{"*"}})
	e := newTestEcho(s, func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/things/1", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/things/1", nil))
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
}

func TestAllowAnyOrigin_OnErrors(t *testing.T) {
	s := newTestServer(&bytes.Buffer{}, config.ServerConfig{CORSAllowedOrigins: []string{"*"}})
	e := newTestEcho(s, func(c echo.Context) error {
		return sqlerr.NotFound("recipe")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/things/1", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "Recipe not found", decodeHTTPError(t, rec).Message)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "Route not found", decodeHTTPError(t, rec).Message)
}

func TestAllowAnyOrigin_RestrictedOrigins(t *testing.T) {
	s := newTestServer(&bytes.Buffer{}, config.ServerConfig{CORSAllowedOrigins: []string{"https://app.example.com"}})
	e := newTestEcho(s, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/things/1", nil))
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestGlobalErrorHandler_InternalError(t *testing.T) {
	var logs bytes.Buffer
	s := newTestServer(&logs, config.ServerConfig{CORSAllowedOrigins: []string{"*"}})
	e := newTestEcho(s, func(c echo.Context) error {
		return errors.New("connection reset")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/things/1", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeHTTPError(t, rec)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Code)
	assert.NotContains(t, body.Message, "connection reset")
	assert.Contains(t, logs.String(), "connection reset")
}

func TestEnhanceContext_LoggerInRequestContext(t *testing.T) {
	var logs bytes.Buffer
	s := newTestServer(&logs, config.ServerConfig{CORSAllowedOrigins: []string{"*"}})
	e := newTestEcho(s, func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("from service")
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/things/7", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	e.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, logs.String(), `"request_id":"req-7"`)
	assert.Contains(t, logs.String(), `"path":"/things/:id"`)
	assert.Contains(t, logs.String(), "from service")
}

func TestRateLimiter(t *testing.T) {
	s := newTestServer(&bytes.Buffer{}, config.ServerConfig{
		CORSAllowedOrigins: []string{"*"},
		RateLimitRequests:  2,
		RateLimitWindow:    time.Minute,
	})
	e := newTestEcho(s, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/things/1", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/things/1", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decodeHTTPError(t, rec).Code)
}

func TestRateLimiter_Disabled(t *testing.T) {
	s := newTestServer(&bytes.Buffer{}, config.ServerConfig{CORSAllowedOrigins: []string{"*"}})
	e := newTestEcho(s, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/things/1", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}
