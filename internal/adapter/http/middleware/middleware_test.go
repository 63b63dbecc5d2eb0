package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/test")

	handler := RequestID()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))

	reqID := rec.Header().Get(RequestIDHeader)
	assert.Len(t, reqID, 36, "generated IDs are UUIDs")
	assert.Equal(t, reqID, GetRequestID(c), "context ID should match header ID")
}

func TestRequestID_PropagatesExistingID(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/test")
	c.Request().Header.Set(RequestIDHeader, "existing-request-id-12345")

	handler := RequestID()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))

	assert.Equal(t, "existing-request-id-12345", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "existing-request-id-12345", GetRequestID(c))
}

func TestGetRequestID_ReturnsEmptyWhenNotSet(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/test")

	assert.Empty(t, GetRequestID(c))
}

func TestRequestLogger_LogsRequestDetails(t *testing.T) {
	var logBuf bytes.Buffer
	log := zerolog.New(&logBuf)

	c, _ := newContext(http.MethodPost, "/api/v1/flights/search?debug=1")
	c.Request().Header.Set("User-Agent", "TestAgent/1.0")
	c.Set("request_id", "test-req-id-123")

	handler := RequestLogger(log)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(logBuf.Bytes(), &entry))
	assert.Equal(t, "test-req-id-123", entry["request_id"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/api/v1/flights/search", entry["path"])
	assert.Equal(t, "debug=1", entry["query"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Contains(t, entry, "duration_ms")
	assert.Equal(t, "TestAgent/1.0", entry["user_agent"])
	assert.Equal(t, "HTTP request", entry["message"])
}

func TestRequestLogger_LevelPerStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "2xx logs info", status: http.StatusOK, wantLevel: "info"},
		{name: "4xx logs warn", status: http.StatusNotFound, wantLevel: "warn"},
		{name: "5xx logs error", status: http.StatusInternalServerError, wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			log := zerolog.New(&logBuf)

			c, _ := newContext(http.MethodGet, "/test")
			handler := RequestLogger(log)(func(c echo.Context) error {
				return c.String(tt.status, "body")
			})
			require.NoError(t, handler(c))

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(logBuf.Bytes(), &entry))
			assert.Equal(t, float64(tt.status), entry["status"])
			assert.Equal(t, tt.wantLevel, entry["level"])
		})
	}
}

func TestRequestLogger_LogsClientIP(t *testing.T) {
	var logBuf bytes.Buffer
	log := zerolog.New(&logBuf)

	c, _ := newContext(http.MethodGet, "/test")
	c.Request().Header.Set("X-Real-IP", "192.168.1.100")

	handler := RequestLogger(log)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(logBuf.Bytes(), &entry))
	assert.Equal(t, "192.168.1.100", entry["client_ip"])
}

func TestRecover_CatchesPanicAndReturns500(t *testing.T) {
	var logBuf bytes.Buffer
	log := zerolog.New(&logBuf)

	c, rec := newContext(http.MethodGet, "/panic")
	c.Set("request_id", "panic-test-id")

	handler := Recover(log)(func(c echo.Context) error {
		panic("test panic message")
	})

	assert.NotPanics(t, func() {
		_ = handler(c)
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal_error", body["code"])

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(logBuf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "panic-test-id", entry["request_id"])
	assert.Equal(t, "test panic message", entry["panic"])
	assert.Contains(t, entry, "stack")
	assert.Equal(t, "Panic recovered", entry["message"])
}

func TestRecover_HandlesRuntimePanic(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/panic")

	handler := Recover(zerolog.Nop())(func(c echo.Context) error {
		var slice []int
		_ = slice[10] // index out of range
		return nil
	})

	assert.NotPanics(t, func() {
		_ = handler(c)
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRecover_PassesThroughNormalRequests(t *testing.T) {
	var logBuf bytes.Buffer
	log := zerolog.New(&logBuf)

	c, rec := newContext(http.MethodGet, "/normal")

	handler := Recover(log)(func(c echo.Context) error {
		return c.String(http.StatusOK, "normal response")
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "normal response", rec.Body.String())
	assert.Empty(t, logBuf.String())
}

func TestRecoverWithConfig_DisableStackPrint(t *testing.T) {
	var logBuf bytes.Buffer
	log := zerolog.New(&logBuf)

	c, _ := newContext(http.MethodGet, "/panic")

	handler := RecoverWithConfig(log, RecoveryConfig{DisablePrintStack: true})(func(c echo.Context) error {
		panic("no stack test")
	})
	_ = handler(c)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(logBuf.Bytes(), &entry))
	assert.NotContains(t, entry, "stack")
}

func TestSetup_FullStack(t *testing.T) {
	var logBuf bytes.Buffer
	log := zerolog.New(&logBuf)

	e := echo.New()
	Setup(e, log)

	e.GET("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "setup test")
	})
	e.GET("/panic", func(c echo.Context) error {
		panic("setup panic test")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	assert.NotEmpty(t, logBuf.String())

	// The logged request ID matches the one returned to the client
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.Split(logBuf.Bytes(), []byte("\n"))[0], &entry))
	assert.Equal(t, rec.Header().Get(RequestIDHeader), entry["request_id"])

	req = httptest.NewRequest(http.MethodGet, "/panic", nil)
	rec = httptest.NewRecorder()
	assert.NotPanics(t, func() {
		e.ServeHTTP(rec, req)
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
