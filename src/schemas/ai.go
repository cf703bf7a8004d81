package schemas

type AIChatRequest struct {
	Prompt string `json:"prompt" validate:"min=1,max=2000"`
	// ConversationID is accepted for forward compatibility; each chat call
	// currently starts a new conversation.
	ConversationID *string `json:"conversation_id,omitempty"`
}

type AIChatResponse struct {
	Answer         string                   `json:"answer"`
	ConversationID string                   `json:"conversation_id"`
	Sources        []map[string]interface{} `json:"sources"`
}
