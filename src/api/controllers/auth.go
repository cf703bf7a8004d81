package controllers

import (
	"context"
	"errors"

	"github.com/venoajie/trading-web-project/src/models"
	"github.com/venoajie/trading-web-project/src/repositories"
	"github.com/venoajie/trading-web-project/src/schemas"
	"github.com/venoajie/trading-web-project/src/utils"
	"github.com/venoajie/trading-web-project/src/utils/auth"
	"gorm.io/gorm"
)

const (
	emailTakenMessage         = "Email already registered"
	badCredentialsMessage     = "Incorrect email or password"
	invalidCredentialsMessage = "Could not validate credentials"
	passwordTooLongMessage    = "password: at most 72 bytes"
)

type AuthControllerI interface {
	Register(ctx context.Context, req *schemas.UserCreate) (*schemas.UserRead, error)
	Login(ctx context.Context, req *schemas.TokenRequest) (*schemas.TokenResponse, error)
	CurrentUser(ctx context.Context, email string) (*models.User, error)
}

type AuthController struct {
	DB     *gorm.DB
	Users  repositories.UserRepository
	Tokens *auth.TokenManager
}

func NewAuthController(db *gorm.DB, users repositories.UserRepository, tokens *auth.TokenManager) *AuthController {
	return &AuthController{DB: db, Users: users, Tokens: tokens}
}

// Register creates an active user. The email check and insert share one
// transaction; a concurrent insert that trips the unique index gets the same
// answer as the check.
func (c *AuthController) Register(ctx context.Context, req *schemas.UserCreate) (*schemas.UserRead, error) {
	if len(req.Password) > auth.MaxPasswordBytes {
		return nil, utils.UnprocessableEntity(passwordTooLongMessage)
	}
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Email:          req.Email,
		HashedPassword: hashed,
		IsActive:       true,
	}

	err = c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := c.Users.WithTx(tx)
		_, err := users.GetByEmail(ctx, req.Email)
		if err == nil {
			return utils.BadRequest(emailTakenMessage)
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		return users.Create(ctx, user)
	})
	if errors.Is(err, repositories.ErrDuplicate) {
		return nil, utils.BadRequest(emailTakenMessage)
	}
	if err != nil {
		return nil, err
	}

	return &schemas.UserRead{ID: user.ID, Email: user.Email, IsActive: user.IsActive}, nil
}

// Login exchanges credentials for an access token. Unknown emails and wrong
// passwords produce the same error.
func (c *AuthController) Login(ctx context.Context, req *schemas.TokenRequest) (*schemas.TokenResponse, error) {
	user, err := c.Users.GetByEmail(ctx, req.Username)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	if user == nil || !auth.VerifyPassword(req.Password, user.HashedPassword) {
		return nil, utils.BadRequest(badCredentialsMessage)
	}

	token, err := c.Tokens.Issue(user.Email)
	if err != nil {
		return nil, err
	}
	return &schemas.TokenResponse{AccessToken: token, TokenType: auth.TokenType}, nil
}

// CurrentUser resolves the subject of a verified token to an active user.
func (c *AuthController) CurrentUser(ctx context.Context, email string) (*models.User, error) {
	user, err := c.Users.GetByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, utils.Unauthorized(invalidCredentialsMessage)
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, utils.Unauthorized(invalidCredentialsMessage)
	}
	return user, nil
}
