package httpkit

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "chatlens/internal/platform/errors"
)

// run executes a Handler and returns status code and decoded envelope
func run(t *testing.T, h Handler, r *http.Request) (int, Envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h(rec, r)
	res := rec.Result()
	defer func() { _ = res.Body.Close() }()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var env Envelope
	if len(b) > 0 {
		if err := json.Unmarshal(b, &env); err != nil {
			t.Fatalf("decode envelope: %v (body %q)", err, b)
		}
	}
	return rec.Code, env
}

func TestOK(t *testing.T) {
	resp := OK(map[string]int{"messages": 12})
	if resp.Status != http.StatusOK {
		t.Fatalf("OK status = %d, want 200", resp.Status)
	}
}

func TestNoContent(t *testing.T) {
	resp := NoContent()
	if resp.Status != http.StatusNoContent || resp.Body != nil {
		t.Fatalf("NoContent = %+v, want 204 and nil body", resp)
	}
}

func TestHandle_WritesEnvelope(t *testing.T) {
	h := Handle(func(r *http.Request) Response {
		return OK(map[string]string{"period": "20-21"})
	})
	req := httptest.NewRequest(http.MethodGet, "/x", nil)

	code, env := run(t, h, req)
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if env.Status != "ok" {
		t.Fatalf("envelope status = %q, want ok", env.Status)
	}
}

func TestCall_Success(t *testing.T) {
	h := Call(func(r *http.Request) (any, error) {
		return map[string]any{"authors": []string{"Ana", "Bruno"}}, nil
	})
	req := httptest.NewRequest(http.MethodGet, "/authors", nil)

	code, env := run(t, h, req)
	if code != http.StatusOK || env.Status != "ok" {
		t.Fatalf("got %d/%q, want 200/ok", code, env.Status)
	}
}

func TestCall_PassesThroughResponse(t *testing.T) {
	h := Call(func(r *http.Request) (any, error) {
		return NoContent(), nil
	})
	req := httptest.NewRequest(http.MethodGet, "/x", nil)

	rec := httptest.NewRecorder()
	h(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}

func TestCall_MapsError(t *testing.T) {
	h := Call(func(r *http.Request) (any, error) {
		return nil, perr.Parsef("no message line matched a known layout")
	})
	req := httptest.NewRequest(http.MethodGet, "/x", nil)

	code, env := run(t, h, req)
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", code)
	}
	if env.Code != perr.ErrorCodeParse {
		t.Fatalf("envelope code = %q, want %q", env.Code, perr.ErrorCodeParse)
	}
}

func TestError_GenericFailure(t *testing.T) {
	resp := Error(io.ErrUnexpectedEOF)
	if resp.Status != http.StatusInternalServerError {
		t.Fatalf("Error status = %d, want 500", resp.Status)
	}
}
