package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddleware_LabelsByPattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/testimonials/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	h := Middleware(mux)

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "GET /api/testimonials/{id}", "404"))
	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/testimonials/"+id, nil))
	}
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "GET /api/testimonials/{id}", "404"))
	if after-before != 2 {
		t.Errorf("expected 2 requests recorded under the route pattern, got %v", after-before)
	}
}

func TestRecordDBQuery_Status(t *testing.T) {
	okBefore := testutil.ToFloat64(dbQueriesTotal.WithLabelValues("test_op", "success"))
	errBefore := testutil.ToFloat64(dbQueriesTotal.WithLabelValues("test_op", "error"))

	RecordDBQuery("test_op", time.Millisecond, nil)
	RecordDBQuery("test_op", time.Millisecond, errors.New("boom"))

	if got := testutil.ToFloat64(dbQueriesTotal.WithLabelValues("test_op", "success")) - okBefore; got != 1 {
		t.Errorf("expected 1 success, got %v", got)
	}
	if got := testutil.ToFloat64(dbQueriesTotal.WithLabelValues("test_op", "error")) - errBefore; got != 1 {
		t.Errorf("expected 1 error, got %v", got)
	}
}

func TestSetRepositoryMode_ResetsPrevious(t *testing.T) {
	SetRepositoryMode("postgres")
	SetRepositoryMode("memory")

	if got := testutil.ToFloat64(repositoryMode.WithLabelValues("memory")); got != 1 {
		t.Errorf("expected memory=1, got %v", got)
	}
	if n := testutil.CollectAndCount(repositoryMode); n != 1 {
		t.Errorf("expected a single mode series, got %d", n)
	}
}
