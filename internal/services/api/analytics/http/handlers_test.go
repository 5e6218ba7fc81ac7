package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chatlens/internal/core/analyze"
	"chatlens/internal/core/emojis"
	"chatlens/internal/core/links"
	"chatlens/internal/core/stopwords"
	phttp "chatlens/internal/platform/net/http"
	anhttp "chatlens/internal/services/api/analytics/http"
	ansvc "chatlens/internal/services/api/analytics/service"

	"github.com/go-chi/chi/v5"
)

const sample = "1/1/23, 10:00 AM - Alice: Hello there friend\n" +
	"1/1/23, 10:01 AM - Bob: hi again friend\n"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	svc := ansvc.New(analyze.New(links.New(), emojis.New(), stopwords.Load("")))
	mux := chi.NewRouter()
	anhttp.Register(phttp.AdaptChi(mux), anhttp.Deps{Svc: svc, MaxBytes: 1 << 20})
	return mux
}

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var env map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad envelope: %v\n%s", err, rr.Body.String())
	}
	return env
}

func TestSummaryEndpoint(t *testing.T) {
	h := newTestRouter(t)

	body, _ := json.Marshal(map[string]string{"content": sample})
	rr := postJSON(t, h, "/summary", string(body))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rr.Code, rr.Body.String())
	}

	env := decodeEnvelope(t, rr)
	data, ok := env["data"].(map[string]any)
	if !ok {
		t.Fatalf("missing data block: %v", env)
	}
	if data["messages"] != float64(2) {
		t.Fatalf("messages = %v, want 2", data["messages"])
	}
}

func TestSummaryEndpoint_MissingContentIs400(t *testing.T) {
	h := newTestRouter(t)

	rr := postJSON(t, h, "/summary", `{"author":"Alice"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestSummaryEndpoint_UnknownFieldIs400(t *testing.T) {
	h := newTestRouter(t)

	rr := postJSON(t, h, "/summary", `{"content":"x","bogus":true}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestSummaryEndpoint_UnparseableIs422(t *testing.T) {
	h := newTestRouter(t)

	rr := postJSON(t, h, "/summary", `{"content":"no message boundaries in this text"}`)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d body = %s", rr.Code, rr.Body.String())
	}
}

func TestReportEndpoint(t *testing.T) {
	h := newTestRouter(t)

	body, _ := json.Marshal(map[string]string{"content": sample})
	rr := postJSON(t, h, "/report", string(body))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rr.Code, rr.Body.String())
	}

	env := decodeEnvelope(t, rr)
	data, ok := env["data"].(map[string]any)
	if !ok {
		t.Fatalf("missing data block: %v", env)
	}
	for _, k := range []string{"id", "generated_at", "summary", "busy_users", "heatmap"} {
		if _, ok := data[k]; !ok {
			t.Fatalf("report missing %q: %v", k, data)
		}
	}
}

func TestHeatmapEndpoint_GridShape(t *testing.T) {
	h := newTestRouter(t)

	body, _ := json.Marshal(map[string]string{"content": sample})
	rr := postJSON(t, h, "/activity/heatmap", string(body))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rr.Code, rr.Body.String())
	}

	env := decodeEnvelope(t, rr)
	data := env["data"].(map[string]any)
	days, _ := data["days"].([]any)
	periods, _ := data["periods"].([]any)
	if len(days) != 7 || len(periods) != 24 {
		t.Fatalf("grid shape = %dx%d", len(days), len(periods))
	}
}
