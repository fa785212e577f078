package utils

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const DefaultUserAgent = "jobcrawler-cli/1.0"

type RequestConfig struct {
	Timeout   time.Duration // Client timeout for a single request
	Interval  time.Duration // Minimum spacing between requests, 0 disables pacing
	UserAgent string
	Client    *http.Client // Optional, overrides Timeout when set
}

type HTTPRequestImpl struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

func NewHTTPRequest(config RequestConfig) *HTTPRequestImpl {
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}

	client := config.Client
	if client == nil {
		client = &http.Client{
			Timeout: config.Timeout,
		}
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if config.Interval > 0 {
		limiter = rate.NewLimiter(rate.Every(config.Interval), 1)
	}

	return &HTTPRequestImpl{
		client:    client,
		limiter:   limiter,
		userAgent: config.UserAgent,
	}
}

// Get issues a single GET. Transport errors from the underlying client are
// returned as-is; the caller owns the response body.
func (s *HTTPRequestImpl) Get(ctx context.Context, url string, headers http.Header) (*http.Response, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "application/json")
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	return s.client.Do(req)
}
