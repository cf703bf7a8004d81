package requests

import (
	"context"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// ExternalAPIService owns one pooled HTTP client for an external service. The
// client is created on first use and released by Close; a request after Close
// creates a fresh one.
type ExternalAPIService struct {
	token   string
	timeout time.Duration

	mu     sync.Mutex
	client *resty.Client
}

// NewExternalAPIService creates a service that authenticates with a bearer
// token and applies timeout to every request.
func NewExternalAPIService(token string, timeout time.Duration) *ExternalAPIService {
	return &ExternalAPIService{token: token, timeout: timeout}
}

func (s *ExternalAPIService) getClient() *resty.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		s.client = resty.New().
			SetTimeout(s.timeout).
			SetAuthToken(s.token).
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json")
	}
	return s.client
}

// Started reports whether the underlying client currently exists.
func (s *ExternalAPIService) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client != nil
}

// Post sends body as JSON to endpoint. Transport failures are returned as
// errors; any HTTP status is returned in the response.
func (s *ExternalAPIService) Post(ctx context.Context, endpoint string, body interface{}) (*resty.Response, error) {
	return s.getClient().R().
		SetContext(ctx).
		SetBody(body).
		Post(endpoint)
}

// Close drops idle connections and forgets the client.
func (s *ExternalAPIService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return
	}
	s.client.GetClient().CloseIdleConnections()
	s.client = nil
}
