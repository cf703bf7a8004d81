package controllers_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/venoajie/trading-web-project/src/api/controllers"
	"github.com/venoajie/trading-web-project/src/clients/librarian"
	"github.com/venoajie/trading-web-project/src/database/testdb"
	"github.com/venoajie/trading-web-project/src/models"
	"github.com/venoajie/trading-web-project/src/schemas"
	"github.com/venoajie/trading-web-project/src/utils"
	"github.com/venoajie/trading-web-project/src/utils/auth"
	"gorm.io/gorm"
)

type mockLibrarian struct {
	response librarian.QueryResponse
	err      error
	prompts  []string
}

func (m *mockLibrarian) Query(_ context.Context, _, prompt string, _ []models.ChatMessage) (librarian.QueryResponse, error) {
	m.prompts = append(m.prompts, prompt)
	return m.response, m.err
}

func (m *mockLibrarian) Close() {}

type fixture struct {
	db         *gorm.DB
	tokens     *auth.TokenManager
	librarian  *mockLibrarian
	controller *controllers.Controller
	ctx        context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.New(t)
	tokens := auth.NewTokenManager("test-secret", "HS256", time.Hour)
	lib := &mockLibrarian{}
	return &fixture{
		db:         db,
		tokens:     tokens,
		librarian:  lib,
		controller: controllers.NewController(db, lib, tokens),
		ctx:        utils.WithLogger(context.Background(), utils.NewDiscardLogger()),
	}
}

func (f *fixture) register(t *testing.T, email, password string) *models.User {
	t.Helper()
	_, err := f.controller.AuthController.Register(f.ctx, &schemas.UserCreate{Email: email, Password: password})
	require.NoError(t, err)
	user, err := f.controller.AuthController.CurrentUser(f.ctx, email)
	require.NoError(t, err)
	return user
}
