package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/venoajie/trading-web-project/src/models"
	"gorm.io/gorm"
)

// SummaryLength is how many characters of the prompt are kept as summary.
const SummaryLength = 100

type ConversationRepository interface {
	Save(ctx context.Context, userID uuid.UUID, prompt string, response map[string]interface{}) (*models.AIConversation, error)
}

type conversationRepo struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepo{db: db}
}

// Save stores a single user/assistant turn as a new conversation row. The
// assistant content is the response's answer, or empty when it has none.
func (r *conversationRepo) Save(ctx context.Context, userID uuid.UUID, prompt string, response map[string]interface{}) (*models.AIConversation, error) {
	answer, _ := response["answer"].(string)
	summary := Summarize(prompt)

	conversation := &models.AIConversation{
		UserID:  userID,
		Summary: &summary,
	}
	err := conversation.SetMessages([]models.ChatMessage{
		{Role: models.RoleUser, Content: prompt},
		{Role: models.RoleAssistant, Content: answer},
	})
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(conversation).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return conversation, nil
}

// Summarize returns the first SummaryLength characters of prompt.
func Summarize(prompt string) string {
	runes := []rune(prompt)
	if len(runes) <= SummaryLength {
		return prompt
	}
	return string(runes[:SummaryLength])
}
