package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestAdaptChi_RootGroupRouteAndMux(t *testing.T) {
	t.Parallel()

	m := chi.NewRouter()
	r := AdaptChi(m)

	r.Use(func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.Header().Set("X-Root", "1")
			next.ServeHTTP(w, req)
		})
	})

	r.Get("/root", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte("root"))
	})

	r.Group(func(gr Router) {
		gr.Use(func(next stdhttp.Handler) stdhttp.Handler {
			return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
				w.Header().Set("X-Group", "1")
				next.ServeHTTP(w, req)
			})
		})
		if gr.Mux() == nil {
			t.Fatalf("group Mux() returned nil")
		}
		gr.Get("/g/ping", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.WriteHeader(200)
			_, _ = w.Write([]byte("g"))
		})
	})

	r.Route("/api", func(sr Router) {
		sr.Use(func(next stdhttp.Handler) stdhttp.Handler {
			return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
				w.Header().Set("X-Route", "1")
				next.ServeHTTP(w, req)
			})
		})
		if sr.Mux() == nil {
			t.Fatalf("route Mux() returned nil")
		}
		sr.Get("/ping", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.WriteHeader(200)
			_, _ = w.Write([]byte("pong"))
		})
	})

	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(stdhttp.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, req)
		return rr
	}

	rr := get("/root")
	if rr.Code != 200 || rr.Body.String() != "root" {
		t.Fatalf("GET /root => code=%d body=%q", rr.Code, rr.Body.String())
	}
	if rr.Header().Get("X-Root") != "1" {
		t.Fatalf("root middleware header missing")
	}

	rr = get("/g/ping")
	if rr.Code != 200 || rr.Body.String() != "g" {
		t.Fatalf("GET /g/ping => code=%d body=%q", rr.Code, rr.Body.String())
	}
	if rr.Header().Get("X-Root") != "1" || rr.Header().Get("X-Group") != "1" {
		t.Fatalf("group route missing middleware headers: %v", rr.Header())
	}

	rr = get("/api/ping")
	if rr.Code != 200 || rr.Body.String() != "pong" {
		t.Fatalf("GET /api/ping => code=%d body=%q", rr.Code, rr.Body.String())
	}
	if rr.Header().Get("X-Root") != "1" || rr.Header().Get("X-Route") != "1" {
		t.Fatalf("subrouter missing middleware headers: %v", rr.Header())
	}
}

func TestAdaptChi_PostHandleAndNesting(t *testing.T) {
	t.Parallel()

	m := chi.NewRouter()
	r := AdaptChi(m)

	r.Handle("/std", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte("std"))
	}))

	r.Group(func(gr Router) {
		gr.Post("/g/parse", func(w stdhttp.ResponseWriter, req *stdhttp.Request) { w.WriteHeader(201) })
		gr.Handle("/g/std", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.WriteHeader(200)
			_, _ = w.Write([]byte("gstd"))
		}))
		gr.Group(func(ngr Router) {
			ngr.Get("/g/nested", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
				w.WriteHeader(200)
				_, _ = w.Write([]byte("nested"))
			})
		})
	})

	r.Route("/api", func(sr Router) {
		sr.Post("/analyze", func(w stdhttp.ResponseWriter, req *stdhttp.Request) { w.WriteHeader(201) })
		sr.Route("/v1", func(nr Router) {
			nr.Get("/ok", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
				w.WriteHeader(200)
				_, _ = w.Write([]byte("v1ok"))
			})
		})
	})

	do := func(method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, req)
		return rr
	}

	if rr := do(stdhttp.MethodGet, "/std"); rr.Code != 200 || rr.Body.String() != "std" {
		t.Fatalf("GET /std => code=%d body=%q", rr.Code, rr.Body.String())
	}
	if rr := do(stdhttp.MethodPost, "/g/parse"); rr.Code != 201 {
		t.Fatalf("POST /g/parse => %d", rr.Code)
	}
	if rr := do(stdhttp.MethodGet, "/g/std"); rr.Code != 200 || rr.Body.String() != "gstd" {
		t.Fatalf("GET /g/std => code=%d body=%q", rr.Code, rr.Body.String())
	}
	if rr := do(stdhttp.MethodGet, "/g/nested"); rr.Code != 200 || rr.Body.String() != "nested" {
		t.Fatalf("GET /g/nested => code=%d body=%q", rr.Code, rr.Body.String())
	}
	if rr := do(stdhttp.MethodPost, "/api/analyze"); rr.Code != 201 {
		t.Fatalf("POST /api/analyze => %d", rr.Code)
	}
	if rr := do(stdhttp.MethodGet, "/api/v1/ok"); rr.Code != 200 || rr.Body.String() != "v1ok" {
		t.Fatalf("GET /api/v1/ok => code=%d body=%q", rr.Code, rr.Body.String())
	}
}
