package librarian

import "github.com/venoajie/trading-web-project/src/models"

type QueryRequest struct {
	Prompt              string               `json:"prompt"`
	UserID              string               `json:"user_id"`
	ConversationHistory []models.ChatMessage `json:"conversation_history"`
}

// QueryResponse is the Librarian's JSON object, passed through untouched.
type QueryResponse map[string]interface{}

// Answer returns the answer field when it is present and a string.
func (r QueryResponse) Answer() (string, bool) {
	answer, ok := r["answer"].(string)
	return answer, ok
}

// Sources returns the sources field, or an empty list when it is missing or
// not a list of objects.
func (r QueryResponse) Sources() []map[string]interface{} {
	raw, ok := r["sources"].([]interface{})
	if !ok {
		return []map[string]interface{}{}
	}
	sources := make([]map[string]interface{}, 0, len(raw))
	for _, item := range raw {
		if source, ok := item.(map[string]interface{}); ok {
			sources = append(sources, source)
		}
	}
	return sources
}
