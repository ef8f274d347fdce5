package http

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-invoice-dashboard/internal/cache"
	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
	"github.com/MKhiriev/go-invoice-dashboard/internal/utils"
)

const cacheStatusHeader = "X-Cache"

// withPageCache serves GET responses of path from the page cache. Entries
// are keyed by the request URI so every query and page number is cached
// separately, and are all dropped when path is revalidated. Responses carry
// an ETag; a matching If-None-Match is answered with 304.
//
// Only 200 responses are stored, and only when path was not revalidated
// while next was rendering. Cache failures are logged and the request falls
// through to next.
func (h *Handler) withPageCache(path string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if h.pageCache == nil || r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			log := logger.FromRequest(r)
			key := r.URL.RequestURI()

			body, ok, err := h.pageCache.Get(ctx, key)
			if err != nil {
				log.Err(err).Str("func", "*Handler.withPageCache").Str("key", key).Msg("page cache lookup failed")
			}
			if ok {
				writeCachedPage(w, r, body, "HIT")
				return
			}

			// read before rendering: a revalidation from here on makes the
			// rendered page stale
			generation, genErr := h.pageCache.Generation(ctx, path)
			if genErr != nil {
				log.Err(genErr).Str("func", "*Handler.withPageCache").Str("path", path).Msg("page cache generation lookup failed")
			}

			rec := &bufferedResponseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.status != http.StatusOK {
				rec.flush()
				return
			}

			if genErr == nil {
				err = h.pageCache.Set(ctx, path, key, generation, rec.body.Bytes())
				switch {
				case errors.Is(err, cache.ErrStaleGeneration):
					log.Debug().Str("func", "*Handler.withPageCache").Str("key", key).Msg("page revalidated while rendering, not cached")
				case err != nil:
					log.Err(err).Str("func", "*Handler.withPageCache").Str("key", key).Msg("page cache store failed")
				}
			}
			writeCachedPage(w, r, rec.body.Bytes(), "MISS")
		})
	}
}

func writeCachedPage(w http.ResponseWriter, r *http.Request, body []byte, cacheStatus string) {
	etag := utils.ETag(body)

	w.Header().Set("ETag", etag)
	w.Header().Set(cacheStatusHeader, cacheStatus)

	if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// bufferedResponseWriter holds the status and body back until the page
// cache decides what to do with them. Headers go straight to the wrapped
// writer.
type bufferedResponseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func (w *bufferedResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
}

func (w *bufferedResponseWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.body.Write(b)
}

func (w *bufferedResponseWriter) flush() {
	w.ResponseWriter.WriteHeader(w.status)
	w.ResponseWriter.Write(w.body.Bytes())
}
