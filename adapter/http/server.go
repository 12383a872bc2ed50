package http

import (
	"log"
	"net/http"
	"time"

	"github.com/viant/venuely/adapter/http/venue"
)

// NewServer returns an http.Handler exposing the venue resource:
//
//	GET    /venues       -> list
//	POST   /venues       -> create (id assigned by the server)
//	GET    /venues/{id}  -> get
//	PUT    /venues/{id}  -> replace
//	DELETE /venues/{id}  -> delete
//
// The handler is wrapped with CORS, restricted to origins when given, and
// request logging.
func NewServer(store *venue.Store, origins []string, logger *log.Logger) http.Handler {
	return RequestLogger(WithCORS(origins, venue.New(store)), logger)
}

// RequestLogger logs basic request details and latency.
func RequestLogger(next http.Handler, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Printf("request method=%s path=%s status=%d duration=%s", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
