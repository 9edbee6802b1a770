package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"formfillout-service/internal/app/config"
	"formfillout-service/internal/pkg/constvars"
	"formfillout-service/internal/pkg/metrics"
	"formfillout-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares()

	t.Run("Generates an id when the client sends none", func(t *testing.T) {
		var seen string
		handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = utils.GetRequestID(r.Context())
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
		assert.Equal(t, seen, rec.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Keeps the client id", func(t *testing.T) {
		var seen string
		var isClient bool
		handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = utils.GetRequestID(r.Context())
			isClient, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "client-id", seen)
		assert.True(t, isClient)
		assert.Equal(t, "client-id", rec.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestErrorHandler(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestLogging(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.Logging(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestMetrics(t *testing.T) {
	m := newTestMiddlewares()
	router := chi.NewRouter()
	router.Use(m.Metrics)
	router.Get("/{form_id}/filteredResponses", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/{form_id}/filteredResponses", "200")
	before := testutil.ToFloat64(counter)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/abc/filteredResponses", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/xyz/filteredResponses", nil))

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}
