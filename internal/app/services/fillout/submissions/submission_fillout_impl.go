package submissions

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"formfillout-service/internal/app/config"
	"formfillout-service/internal/app/contracts"
	"formfillout-service/internal/app/drivers/logger"
	"formfillout-service/internal/pkg/constvars"
	"formfillout-service/internal/pkg/dto/requests"
	"formfillout-service/internal/pkg/exceptions"
	"formfillout-service/internal/pkg/fillout_dto"
	"formfillout-service/internal/pkg/metrics"
	"io"
	"math"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/goccy/go-json"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/klauspost/compress/gzip"
	"github.com/sony/gobreaker"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	submissionFilloutClientInstance contracts.SubmissionClient
	onceSubmissionFilloutClient     sync.Once
)

type submissionFilloutClient struct {
	Config  config.Fillout
	Client  *retryablehttp.Client
	Limiter *rate.Limiter
	Breaker *gobreaker.CircuitBreaker
	Log     *zap.Logger
}

// statusError carries the upstream status code through the circuit breaker.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	if e.body == "" {
		return fmt.Sprintf("status %d", e.code)
	}
	return fmt.Sprintf("status %d: %s", e.code, e.body)
}

func NewSubmissionFilloutClient(filloutConfig config.Fillout, logger *zap.Logger) contracts.SubmissionClient {
	onceSubmissionFilloutClient.Do(func() {
		submissionFilloutClientInstance = newSubmissionFilloutClient(filloutConfig, logger)
	})
	return submissionFilloutClientInstance
}

func newSubmissionFilloutClient(filloutConfig config.Fillout, log *zap.Logger) *submissionFilloutClient {
	client := retryablehttp.NewClient()
	client.RetryMax = filloutConfig.RetryMax
	client.HTTPClient.Timeout = time.Duration(filloutConfig.HTTPTimeoutInSeconds) * time.Second
	client.Logger = logger.NewLeveledLogger(log)
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	limiter := rate.NewLimiter(rate.Inf, 1)
	if filloutConfig.MaxRequestsPerSecond > 0 {
		burst := int(math.Ceil(filloutConfig.MaxRequestsPerSecond))
		limiter = rate.NewLimiter(rate.Limit(filloutConfig.MaxRequestsPerSecond), burst)
	}

	maxFailures := uint32(filloutConfig.BreakerMaxFailures)
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    constvars.FilloutUpstreamName,
		Timeout: time.Duration(filloutConfig.BreakerOpenTimeoutInSeconds) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return maxFailures > 0 && counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: isBreakerSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.UpstreamBreakerState.WithLabelValues(name).Set(float64(to))
			log.Warn("submissionFilloutClient circuit breaker state changed",
				zap.String(constvars.LoggingBreakerStateKey, to.String()),
				zap.String("previous_state", from.String()),
			)
		},
	})

	return &submissionFilloutClient{
		Config:  filloutConfig,
		Client:  client,
		Limiter: limiter,
		Breaker: breaker,
		Log:     log,
	}
}

// isBreakerSuccess keeps client side failures from tripping the breaker: a
// 4xx answer or a canceled caller says nothing about upstream health.
func isBreakerSuccess(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return statusErr.code < constvars.StatusInternalServerError
	}
	return false
}

func (c *submissionFilloutClient) FindSubmissions(ctx context.Context, formID string, request *requests.PageRequest) (*fillout_dto.PagedResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	query := buildSubmissionsQuery(request)
	c.Log.Info("submissionFilloutClient.FindSubmissions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFormIDKey, formID),
		zap.String(constvars.LoggingQueryParamsKey, query.Encode()),
	)

	err := c.Limiter.Wait(ctx)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(constvars.FilloutUpstreamName, metrics.UpstreamStatusThrottled).Inc()
		c.Log.Error("submissionFilloutClient.FindSubmissions error waiting for rate limiter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, exceptions.ErrUpstreamThrottle(err, constvars.FilloutUpstreamName)
	}

	result, err := c.Breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, requestID, formID, query)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.UpstreamRequestsTotal.WithLabelValues(constvars.FilloutUpstreamName, metrics.UpstreamStatusCircuitOpen).Inc()
			c.Log.Error("submissionFilloutClient.FindSubmissions circuit breaker rejected request",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingBreakerStateKey, c.Breaker.State().String()),
			)
			return nil, exceptions.ErrUpstreamUnavailable(err, constvars.FilloutUpstreamName)
		}
		return nil, err
	}

	page := result.(*fillout_dto.PagedResult)
	c.Log.Info("submissionFilloutClient.FindSubmissions succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(page.Responses)),
		zap.Int(constvars.LoggingTotalResponsesKey, page.TotalResponses),
	)
	return page, nil
}

func (c *submissionFilloutClient) fetch(ctx context.Context, requestID, formID string, query url.Values) (*fillout_dto.PagedResult, error) {
	endpoint := buildSubmissionsURL(c.Config.BaseUrl, formID, c.Config.SubmissionsPath) + "?" + query.Encode()

	req, err := retryablehttp.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		c.Log.Error("submissionFilloutClient.FindSubmissions error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, fmt.Sprintf(constvars.AuthorizationBearerFormat, c.Config.APIKey))
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAcceptEncoding, constvars.StrBr+", "+constvars.StrGzip)

	start := time.Now()
	resp, err := c.Client.Do(req)
	metrics.UpstreamLatency.WithLabelValues(constvars.FilloutUpstreamName).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(constvars.FilloutUpstreamName, metrics.UpstreamStatusError).Inc()
		c.Log.Error("submissionFilloutClient.FindSubmissions error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUpstreamUrlKey, endpoint),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()
	metrics.UpstreamRequestsTotal.WithLabelValues(constvars.FilloutUpstreamName, strconv.Itoa(resp.StatusCode)).Inc()

	contentEncoding := resp.Header.Get(constvars.HeaderContentEncoding)
	body, err := readBody(resp.Body, contentEncoding)
	if err != nil {
		c.Log.Error("submissionFilloutClient.FindSubmissions error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingContentEncodingKey, contentEncoding),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecompressResponse(err, constvars.ResourceSubmissions)
	}

	if resp.StatusCode/100 != 2 {
		statusErr := &statusError{code: resp.StatusCode, body: gjson.GetBytes(body, "message").String()}
		c.Log.Error("submissionFilloutClient.FindSubmissions unexpected status code",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(statusErr),
		)
		return nil, exceptions.ErrUpstreamStatus(statusErr, resp.StatusCode, constvars.ResourceSubmissions)
	}

	if !gjson.ValidBytes(body) || !gjson.GetBytes(body, "responses").IsArray() {
		err := fmt.Errorf("body is not a submissions page: %q", truncate(body, 128))
		c.Log.Error("submissionFilloutClient.FindSubmissions malformed response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrUpstreamMalformedBody(err, constvars.ResourceSubmissions)
	}

	page := new(fillout_dto.PagedResult)
	err = json.Unmarshal(body, page)
	if err != nil {
		c.Log.Error("submissionFilloutClient.FindSubmissions error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceSubmissions)
	}

	return page, nil
}

// buildSubmissionsQuery forwards every pagination field. Empty strings are
// left out, numbers and booleans always go through.
func buildSubmissionsQuery(request *requests.PageRequest) url.Values {
	query := url.Values{}
	query.Set(constvars.URLQueryParamLimit, strconv.Itoa(request.Limit))
	query.Set(constvars.URLQueryParamOffset, strconv.Itoa(request.Offset))
	query.Set(constvars.URLQueryParamIncludeEditLink, strconv.FormatBool(request.IncludeEditLink))

	optional := map[string]string{
		constvars.URLQueryParamAfterDate:  request.AfterDate,
		constvars.URLQueryParamBeforeDate: request.BeforeDate,
		constvars.URLQueryParamStatus:     request.Status,
		constvars.URLQueryParamSort:       request.Sort,
	}
	for key, value := range optional {
		if value != "" {
			query.Set(key, value)
		}
	}
	return query
}

func buildSubmissionsURL(baseURL, formID, submissionsPath string) string {
	return strings.TrimRight(baseURL, "/") + "/" + url.PathEscape(formID) + "/" + strings.TrimLeft(submissionsPath, "/")
}

func readBody(body io.Reader, contentEncoding string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(contentEncoding)) {
	case "", constvars.StrIdentity:
		return io.ReadAll(body)
	case constvars.StrBr:
		return io.ReadAll(brotli.NewReader(body))
	case constvars.StrGzip:
		reader, err := gzip.NewReader(body)
		if err != nil {
			return nil, err
		}
		defer reader.Close()
		return io.ReadAll(reader)
	default:
		return nil, fmt.Errorf("unsupported content encoding %q", contentEncoding)
	}
}

func truncate(body []byte, limit int) []byte {
	body = bytes.TrimSpace(body)
	if len(body) > limit {
		return body[:limit]
	}
	return body
}
