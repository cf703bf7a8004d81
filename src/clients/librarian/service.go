package librarian

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/venoajie/trading-web-project/src/config"
	"github.com/venoajie/trading-web-project/src/models"
	"github.com/venoajie/trading-web-project/src/utils"
	"github.com/venoajie/trading-web-project/src/utils/requests"
)

const (
	unavailableMessage = "The AI service is currently unavailable."
	connectionMessage  = "Error connecting to the AI service."
)

type LibrarianServiceClientI interface {
	Query(ctx context.Context, userID, prompt string, history []models.ChatMessage) (QueryResponse, error)
	Close()
}

// LibrarianServiceClient forwards chat prompts to the Librarian RAG service.
// A single instance is shared by every request for the process lifetime.
type LibrarianServiceClient struct {
	API *requests.ExternalAPIService
	URL string
}

// NewClient builds the client from config. The API key secret is read here,
// the HTTP connection pool only on the first query.
func NewClient(cfg *config.Config) (*LibrarianServiceClient, error) {
	apiKey, err := cfg.LibrarianAPIKey()
	if err != nil {
		return nil, err
	}
	lc := cfg.ExternalClients.Librarian
	return NewClientWithKey(lc.URL, apiKey, lc), nil
}

func NewClientWithKey(url, apiKey string, lc config.LibrarianConfig) *LibrarianServiceClient {
	timeout := lc.Timeout()
	if timeout <= 0 {
		timeout = config.DefaultLibrarianTimeout
	}
	return &LibrarianServiceClient{
		API: requests.NewExternalAPIService(apiKey, timeout),
		URL: url,
	}
}

// Query sends one prompt to the Librarian. Any failure is reported as a 503
// HTTPError with a generic message; the upstream detail only goes to the log.
func (c *LibrarianServiceClient) Query(ctx context.Context, userID, prompt string, history []models.ChatMessage) (QueryResponse, error) {
	logger := utils.LoggerFromContext(ctx)
	if history == nil {
		history = []models.ChatMessage{}
	}
	payload := QueryRequest{
		Prompt:              prompt,
		UserID:              userID,
		ConversationHistory: history,
	}

	resp, err := c.API.Post(ctx, c.URL, payload)
	if err != nil {
		logger.WithError(err).Error("Could not connect to Librarian service")
		return nil, utils.ServiceUnavailable(connectionMessage)
	}

	if resp.StatusCode() != http.StatusOK {
		logger.WithField("status", resp.StatusCode()).
			Errorf("Librarian service returned error %d: %s", resp.StatusCode(), resp.String())
		return nil, utils.ServiceUnavailable(unavailableMessage)
	}

	var result QueryResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil || result == nil {
		logger.WithError(err).Errorf("Librarian service returned an unreadable body: %s", resp.String())
		return nil, utils.ServiceUnavailable(unavailableMessage)
	}
	return result, nil
}

// Close releases the connection pool. Safe to call more than once.
func (c *LibrarianServiceClient) Close() {
	c.API.Close()
}
