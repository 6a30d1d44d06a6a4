package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

func loadTestCatalog(t *testing.T) *catalog {
	t.Helper()
	cat, err := loadFixture(filepath.Join("testdata", "appdetails.json"))
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	return cat
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(t *testing.T, cat *catalog, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader = http.NoBody
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	w := httptest.NewRecorder()
	newMux(testLogger(), cat).ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder, appID string) appEnvelope {
	t.Helper()
	var resp map[string]appEnvelope
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	env, ok := resp[appID]
	if !ok {
		t.Fatalf("response missing key %q", appID)
	}
	return env
}

func TestLoadFixture(t *testing.T) {
	cat := loadTestCatalog(t)
	if len(cat.apps) == 0 {
		t.Fatal("expected apps in fixture")
	}
	app, ok := cat.lookup("1091500")
	if !ok {
		t.Fatal("expected app 1091500 in fixture")
	}
	if app.PriceOverview == nil || app.PriceOverview.Final != 2999 {
		t.Errorf("price_overview=%+v, want final 2999", app.PriceOverview)
	}
}

func TestLoadFixture_Missing(t *testing.T) {
	if _, err := loadFixture(filepath.Join("testdata", "missing.json")); err == nil {
		t.Fatal("expected error for missing fixture")
	}
}

func TestAppDetails_Found(t *testing.T) {
	w := serve(t, loadTestCatalog(t), http.MethodGet, "/api/appdetails?appids=1091500&cc=us", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}
	env := decodeEnvelope(t, w, "1091500")
	if !env.Success {
		t.Fatal("expected success=true")
	}
	if env.Data.Name != "Cyberpunk 2077" {
		t.Errorf("name=%s, want Cyberpunk 2077", env.Data.Name)
	}
	if env.Data.PriceOverview.DiscountPercent != 50 {
		t.Errorf("discount=%d, want 50", env.Data.PriceOverview.DiscountPercent)
	}
}

func TestAppDetails_Unknown(t *testing.T) {
	w := serve(t, loadTestCatalog(t), http.MethodGet, "/api/appdetails?appids=1", "")

	env := decodeEnvelope(t, w, "1")
	if env.Success {
		t.Error("expected success=false for unknown app")
	}
}

func TestAppDetails_MissingAppID(t *testing.T) {
	w := serve(t, loadTestCatalog(t), http.MethodGet, "/api/appdetails", "")

	if got := strings.TrimSpace(w.Body.String()); got != "null" {
		t.Errorf("body=%q, want null", got)
	}
}

func TestSetPrice(t *testing.T) {
	cat := loadTestCatalog(t)

	w := serve(t, cat, http.MethodPost, "/admin/apps/1145360/price?final=1249", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}

	w = serve(t, cat, http.MethodGet, "/api/appdetails?appids=1145360", "")
	env := decodeEnvelope(t, w, "1145360")
	po := env.Data.PriceOverview
	if po.Final != 1249 {
		t.Errorf("final=%d, want 1249", po.Final)
	}
	if po.DiscountPercent != 50 {
		t.Errorf("discount=%d, want 50", po.DiscountPercent)
	}
	if po.FinalFormatted != "$12.49" {
		t.Errorf("final_formatted=%s, want $12.49", po.FinalFormatted)
	}
}

func TestSetPrice_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   int
	}{
		{name: "free app", target: "/admin/apps/570/price?final=100", want: http.StatusNotFound},
		{name: "unknown app", target: "/admin/apps/1/price?final=100", want: http.StatusNotFound},
		{name: "missing final", target: "/admin/apps/1145360/price", want: http.StatusBadRequest},
		{name: "negative final", target: "/admin/apps/1145360/price?final=-1", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, loadTestCatalog(t), http.MethodPost, tt.target, "")
			if w.Code != tt.want {
				t.Errorf("status=%d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestNotifyHandler(t *testing.T) {
	cat := loadTestCatalog(t)
	body := `{"title":"Steam Price Alert: Hades","body":"<b>price</b>","type":"success","format":"html"}`

	for _, target := range []string{"/notify", "/notify/steam"} {
		w := serve(t, cat, http.MethodPost, target, body)
		if w.Code != http.StatusOK {
			t.Errorf("%s: status=%d, want %d", target, w.Code, http.StatusOK)
		}
	}

	w := serve(t, cat, http.MethodPost, "/notify", `{"title":"no body"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status=%d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestTelegramHandler(t *testing.T) {
	cat := loadTestCatalog(t)

	w := serve(t, cat, http.MethodPost, "/telegram/bot123:abc/sendMessage",
		`{"chat_id":"-100","text":"hello","parse_mode":"HTML"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}
	var resp map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["ok"] != true {
		t.Errorf("ok=%v, want true", resp["ok"])
	}

	w = serve(t, cat, http.MethodPost, "/telegram/bot123:abc/sendMessage", `{"text":"no chat"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status=%d, want %d", w.Code, http.StatusBadRequest)
	}

	w = serve(t, cat, http.MethodPost, "/telegram/nottoken/sendMessage", `{"chat_id":"1","text":"x"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("status=%d, want %d", w.Code, http.StatusNotFound)
	}
}
