package repositories_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venoajie/trading-web-project/src/database/testdb"
	"github.com/venoajie/trading-web-project/src/models"
	"github.com/venoajie/trading-web-project/src/repositories"
	"gorm.io/gorm"
)

func loadConversation(t *testing.T, db *gorm.DB, id uuid.UUID) *models.AIConversation {
	t.Helper()
	var c models.AIConversation
	require.NoError(t, db.Where("id = ?", id).First(&c).Error)
	return &c
}

func TestConversationRepository(t *testing.T) {
	db := testdb.New(t)
	user := createUser(t, repositories.NewUserRepository(db), "dave@example.com")
	repo := repositories.NewConversationRepository(db)
	ctx := context.Background()

	t.Run("Save stores the user and assistant turn", func(t *testing.T) {
		saved, err := repo.Save(ctx, user.ID, "P", map[string]interface{}{"answer": "X", "sources": []interface{}{}})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, saved.ID)
		assert.False(t, saved.CreatedAt.IsZero())

		found := loadConversation(t, db, saved.ID)
		assert.Equal(t, user.ID, found.UserID)
		require.NotNil(t, found.Summary)
		assert.Equal(t, "P", *found.Summary)

		messages, err := found.Messages()
		require.NoError(t, err)
		assert.Equal(t, []models.ChatMessage{
			{Role: models.RoleUser, Content: "P"},
			{Role: models.RoleAssistant, Content: "X"},
		}, messages)
	})

	t.Run("missing answer stores empty assistant content", func(t *testing.T) {
		saved, err := repo.Save(ctx, user.ID, "Q", map[string]interface{}{"detail": "no answer"})
		require.NoError(t, err)

		messages, err := saved.Messages()
		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, "", messages[1].Content)
	})

	t.Run("long prompts are summarized", func(t *testing.T) {
		prompt := strings.Repeat("abcdefghij", 200)
		saved, err := repo.Save(ctx, user.ID, prompt, map[string]interface{}{"answer": "X"})
		require.NoError(t, err)

		found := loadConversation(t, db, saved.ID)
		assert.Equal(t, prompt[:100], *found.Summary)

		messages, err := found.Messages()
		require.NoError(t, err)
		assert.Equal(t, prompt, messages[0].Content)
	})

	t.Run("every call adds one row", func(t *testing.T) {
		before := testdb.Count(t, db, &models.AIConversation{})
		_, err := repo.Save(ctx, user.ID, "again", map[string]interface{}{"answer": "X"})
		require.NoError(t, err)
		assert.Equal(t, before+1, testdb.Count(t, db, &models.AIConversation{}))
	})
}

func TestSummarize(t *testing.T) {
	for _, n := range []int{0, 1, 99, 100, 101, 500, 2000} {
		prompt := strings.Repeat("x", n)
		want := prompt
		if n > repositories.SummaryLength {
			want = prompt[:repositories.SummaryLength]
		}
		assert.Equal(t, want, repositories.Summarize(prompt), "length %d", n)
	}

	t.Run("counts characters, not bytes", func(t *testing.T) {
		prompt := strings.Repeat("é", 150)
		summary := repositories.Summarize(prompt)
		assert.Equal(t, strings.Repeat("é", 100), summary)
	})
}
