package openapi_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/steam-price-tracker/api/openapi"
)

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	e := echo.New()
	openapi.RegisterRoutes(e, "Steam Price Tracker API")

	tests := []struct {
		name         string
		path         string
		wantStatus   int
		wantLocation string
		wantBody     []string
	}{
		{
			name:       "renders ui pointing at the generated spec",
			path:       "/swagger/index.html",
			wantStatus: http.StatusOK,
			wantBody:   []string{"<title>Steam Price Tracker API</title>", "openapi.json"},
		},
		{
			name:         "bare path redirects",
			path:         "/swagger",
			wantStatus:   http.StatusMovedPermanently,
			wantLocation: "/swagger/index.html",
		},
		{
			name:         "trailing slash redirects",
			path:         "/swagger/",
			wantStatus:   http.StatusMovedPermanently,
			wantLocation: "/swagger/index.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			}
			for _, want := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}
