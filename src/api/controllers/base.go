package controllers

import (
	"github.com/venoajie/trading-web-project/src/clients/librarian"
	"github.com/venoajie/trading-web-project/src/repositories"
	"github.com/venoajie/trading-web-project/src/utils/auth"
	"gorm.io/gorm"
)

// Controller groups the per-area controllers built over one database handle.
type Controller struct {
	AuthController      *AuthController
	AIController        *AIController
	PortfolioController *PortfolioController
}

func NewController(db *gorm.DB, librarianClient librarian.LibrarianServiceClientI, tokens *auth.TokenManager) *Controller {
	users := repositories.NewUserRepository(db)
	return &Controller{
		AuthController:      NewAuthController(db, users, tokens),
		AIController:        NewAIController(librarianClient, repositories.NewConversationRepository(db)),
		PortfolioController: NewPortfolioController(repositories.NewPortfolioRepository(db), repositories.NewTransactionRepository(db)),
	}
}
