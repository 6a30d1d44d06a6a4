package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecovery_NoPanic(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Recovery(logger)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, buf.String(), "no panic should produce no log output")
}

func TestRecovery_Panic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		method    string
		path      string
		value     any
		wantInLog []string
	}{
		{
			name:      "string value",
			method:    http.MethodGet,
			path:      "/panic",
			value:     "test panic",
			wantInLog: []string{"panic recovered", "test panic", "path=/panic"},
		},
		{
			name:      "non-string value",
			method:    http.MethodPost,
			path:      "/api/v1/check",
			value:     42,
			wantInLog: []string{"42", "method=POST"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			e := echo.New()
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.Set(requestIDKey, "req-1")

			handler := Recovery(logger)(func(echo.Context) error {
				panic(tt.value)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t,
				`{"title":"Internal Server Error","status":500,"detail":"internal server error"}`,
				rec.Body.String(),
			)

			logOutput := buf.String()
			for _, want := range tt.wantInLog {
				assert.Contains(t, logOutput, want)
			}
			assert.Contains(t, logOutput, "request_id=req-1")
		})
	}
}

func TestRecovery_AbortHandlerRepanics(t *testing.T) {
	t.Parallel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/stream", http.NoBody)
	c := e.NewContext(req, httptest.NewRecorder())

	handler := Recovery(slog.New(slog.DiscardHandler))(func(echo.Context) error {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() { _ = handler(c) })
}
