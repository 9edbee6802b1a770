package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"formfillout-service/internal/app/config"
	"formfillout-service/internal/app/delivery/http/middlewares"
	filteredResponses "formfillout-service/internal/app/services/core/filtered_responses"
	"formfillout-service/internal/pkg/constvars"
	"formfillout-service/internal/pkg/dto/requests"
	"formfillout-service/internal/pkg/fillout_dto"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockFilteredResponseUsecase struct {
	mock.Mock
}

func (m *MockFilteredResponseUsecase) FindFilteredResponses(ctx context.Context, formID string, request *requests.PageRequest) (*fillout_dto.PagedResult, error) {
	args := m.Called(ctx, formID, request)
	page, _ := args.Get(0).(*fillout_dto.PagedResult)
	return page, args.Error(1)
}

func setupTestRouter(usecase filteredResponses.FilteredResponseUsecase) *chi.Mux {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			Env:                     constvars.AppEnvDevelopment,
			Version:                 "v-test",
			MaxRequests:             100,
			RequestTimeoutInSeconds: 5,
			CorsAllowedOrigins:      "*",
		},
	}

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig),
		filteredResponses.NewFilteredResponseController(logger, usecase, internalConfig),
	)
	return router
}

func TestSetupRoutes(t *testing.T) {
	t.Run("Filtered responses route carries the form id and request id", func(t *testing.T) {
		usecase := new(MockFilteredResponseUsecase)
		usecase.On("FindFilteredResponses", mock.MatchedBy(func(ctx context.Context) bool {
			requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			return requestID == "req-1"
		}), "cLZojxk94ous", mock.Anything).Return(&fillout_dto.PagedResult{Responses: []fillout_dto.Response{}, PageCount: 1}, nil).Once()
		router := setupTestRouter(usecase)

		req := httptest.NewRequest(http.MethodGet, "/cLZojxk94ous/filteredResponses", nil)
		req.Header.Set(constvars.HeaderXRequestID, "req-1")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"responses":[],"totalResponses":0,"pageCount":1}`, rec.Body.String())
		assert.Equal(t, "req-1", rec.Header().Get(constvars.HeaderXRequestID))
		usecase.AssertExpectations(t)
	})

	t.Run("Health check", func(t *testing.T) {
		router := setupTestRouter(new(MockFilteredResponseUsecase))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, constvars.RouteHealthCheck, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"version":"v-test"`)
	})

	t.Run("Metrics endpoint", func(t *testing.T) {
		router := setupTestRouter(new(MockFilteredResponseUsecase))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, constvars.RouteMetrics, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "formfillout_filter_survivors")
	})

	t.Run("Unknown route", func(t *testing.T) {
		router := setupTestRouter(new(MockFilteredResponseUsecase))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/form/somethingElse", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
