package repositories_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venoajie/trading-web-project/src/database/testdb"
	"github.com/venoajie/trading-web-project/src/models"
	"github.com/venoajie/trading-web-project/src/repositories"
)

func createUser(t *testing.T, repo repositories.UserRepository, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, HashedPassword: "hash", IsActive: true}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestUserRepository(t *testing.T) {
	db := testdb.New(t)
	repo := repositories.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Create and GetByEmail", func(t *testing.T) {
		user := createUser(t, repo, "alice@example.com")
		assert.NotEqual(t, uuid.Nil, user.ID)

		found, err := repo.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.True(t, found.IsActive)
		assert.False(t, found.CreatedAt.IsZero())
	})

	t.Run("missing user is ErrNotFound", func(t *testing.T) {
		_, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		createUser(t, repo, "carol@example.com")

		err := repo.Create(ctx, &models.User{Email: "carol@example.com", HashedPassword: "hash"})
		assert.Error(t, err)
		var n int64
		require.NoError(t, db.Model(&models.User{}).Where("email = ?", "carol@example.com").Count(&n).Error)
		assert.Equal(t, int64(1), n)
	})
}

