package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-invoice-dashboard/internal/cache"
	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
)

// ---- trace id ----

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "reuses incoming id", incoming: "my-custom-trace-id"},
		{name: "generates uuid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()

			h.withTraceID(next).ServeHTTP(rec, req)

			traceID := rec.Header().Get(traceIDHeader)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, traceID)
			} else {
				_, err := uuid.Parse(traceID)
				assert.NoError(t, err)
			}
			assert.Contains(t, buf.String(), `"trace_id":"`+traceID+`"`)
		})
	}
}

// ---- access log ----

func TestWithLogging_RecordsStatusAndSize(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(cacheStatusHeader, "HIT")
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("hello"))
	})

	req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices?page=2", nil)
	req = req.WithContext(log.WithContext(req.Context()))
	rec := httptest.NewRecorder()

	h.withLogging(next).ServeHTTP(rec, req)

	out := buf.String()
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"size":5`)
	assert.Contains(t, out, `"uri":"/dashboard/invoices?page=2"`)
	assert.Contains(t, out, `"cache":"HIT"`)
	assert.Contains(t, out, `"level":"warn"`)
}

func TestWithLogging_DefaultStatusAndRoute(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	h := &Handler{logger: logger.Nop()}

	router := chi.NewRouter()
	router.Use(h.withLogging)
	router.Get("/dashboard/invoices/{id}/edit", func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices/42/edit", nil)
	req = req.WithContext(log.WithContext(req.Context()))
	router.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"route":"/dashboard/invoices/{id}/edit"`)
}

func TestWithLogging_ServerErrorsLoggedAsErrors(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(log.WithContext(req.Context()))

	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.Write([]byte("abc"))
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte("de"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, "abcde", rec.Body.String())
}

// ---- gzip ----

func gunzip(t *testing.T, body []byte) string {
	t.Helper()
	r, err := gzip.NewReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer r.Close()
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestGZip_CompressesWhenAccepted(t *testing.T) {
	payload := strings.Repeat(`{"id":"0195f3c2"}`, 100)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rec := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Contains(t, rec.Header().Values("Vary"), "Accept-Encoding")
	assert.Less(t, rec.Body.Len(), len(payload))
	assert.Equal(t, payload, gunzip(t, rec.Body.Bytes()))
}

func TestGZip_PassThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain"))
	})

	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", rec.Body.String())
}

func TestGZip_NoBodyStatusesAreNotCompressed(t *testing.T) {
	for _, status := range []int{http.StatusNoContent, http.StatusNotModified} {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()

		withGZip(next).ServeHTTP(rec, req)

		assert.Equal(t, status, rec.Code)
		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Zero(t, rec.Body.Len())
	}
}

func TestGZip_DecompressesRequestBody(t *testing.T) {
	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	zw.Write([]byte("amount=12.5"))
	require.NoError(t, zw.Close())

	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got = string(body)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
	})

	req := httptest.NewRequest(http.MethodPost, "/", &compressed)
	req.Header.Set("Content-Encoding", "gzip")
	withGZip(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "amount=12.5", got)
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(http.NotFoundHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHasToken(t *testing.T) {
	assert.True(t, hasToken("gzip", "gzip"))
	assert.True(t, hasToken("deflate, GZIP;q=0.8", "gzip"))
	assert.False(t, hasToken("x-gzip-like", "gzip"))
	assert.False(t, hasToken("", "gzip"))
}

// ---- method check ----

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	router.Post("/items", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusCreated) })
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/items/1", http.StatusOK},
		{http.MethodPost, "/items", http.StatusCreated},
		{http.MethodDelete, "/items/1", http.StatusNotFound},
		{http.MethodGet, "/items", http.StatusNotFound},
		{http.MethodGet, "/nothing", http.StatusNotFound},
	}

	for _, tc := range tests {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, tc.want, rec.Code, "%s %s", tc.method, tc.path)
	}
}

// ---- page cache ----

type failingPageCache struct{}

func (failingPageCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("cache down")
}

func (failingPageCache) Generation(context.Context, string) (int64, error) {
	return 0, errors.New("cache down")
}

func (failingPageCache) Set(context.Context, string, string, int64, []byte) error {
	return errors.New("cache down")
}

func (failingPageCache) Revalidate(context.Context, string) error {
	return errors.New("cache down")
}

func TestWithPageCache_ETagAndNotModified(t *testing.T) {
	h := &Handler{pageCache: cache.NewMemoryCache(time.Minute), logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"invoices":[]}`))
	})
	mw := h.withPageCache("/dashboard/invoices")(next)

	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil))
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	mw.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestWithPageCache_ErrorsAreNotCached(t *testing.T) {
	calls := 0
	h := &Handler{pageCache: cache.NewMemoryCache(time.Minute), logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"boom"}`))
	})
	mw := h.withPageCache("/dashboard/invoices")(next)

	for range 2 {
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, `{"error":"boom"}`, rec.Body.String())
	}
	assert.Equal(t, 2, calls)
}

func TestWithPageCache_CacheFailureFallsThrough(t *testing.T) {
	h := &Handler{pageCache: failingPageCache{}, logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fresh"))
	})

	rec := httptest.NewRecorder()
	h.withPageCache("/dashboard/invoices")(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fresh", rec.Body.String())
}

func TestWithPageCache_RevalidationDuringRenderIsNotCached(t *testing.T) {
	pages := cache.NewMemoryCache(0)
	h := &Handler{pageCache: pages, logger: logger.Nop()}

	stored := "old"
	renders := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		renders++
		body := stored
		if renders == 1 {
			// a mutation commits and revalidates after the list was read
			stored = "new"
			require.NoError(t, pages.Revalidate(r.Context(), "/dashboard/invoices"))
		}
		w.Write([]byte(body))
	})
	mw := h.withPageCache("/dashboard/invoices")(next)

	first := httptest.NewRecorder()
	mw.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil))
	assert.Equal(t, "old", first.Body.String())
	assert.Equal(t, "MISS", first.Header().Get(cacheStatusHeader))

	second := httptest.NewRecorder()
	mw.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil))
	assert.Equal(t, "new", second.Body.String())
	assert.Equal(t, "MISS", second.Header().Get(cacheStatusHeader))

	third := httptest.NewRecorder()
	mw.ServeHTTP(third, httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil))
	assert.Equal(t, "new", third.Body.String())
	assert.Equal(t, "HIT", third.Header().Get(cacheStatusHeader))
	assert.Equal(t, 2, renders)
}
