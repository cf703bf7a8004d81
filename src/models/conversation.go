package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AIConversation is one chat turn. History holds the ordered messages as JSON.
type AIConversation struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;column:id"`
	UserID    uuid.UUID      `gorm:"type:uuid;column:user_id;index;not null"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	History   datatypes.JSON `gorm:"column:history;type:jsonb;not null"`
	Summary   *string        `gorm:"column:summary;type:text"`
}

func (c *AIConversation) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *AIConversation) SetMessages(messages []ChatMessage) error {
	raw, err := json.Marshal(messages)
	if err != nil {
		return err
	}
	c.History = datatypes.JSON(raw)
	return nil
}

func (c *AIConversation) Messages() ([]ChatMessage, error) {
	var messages []ChatMessage
	if len(c.History) == 0 {
		return messages, nil
	}
	if err := json.Unmarshal(c.History, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
