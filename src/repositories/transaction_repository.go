package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/venoajie/trading-web-project/src/models"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	GetByPortfolioID(ctx context.Context, portfolioID uuid.UUID) ([]models.Transaction, error)
	Create(ctx context.Context, t *models.Transaction) error
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) GetByPortfolioID(ctx context.Context, portfolioID uuid.UUID) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	err := r.db.WithContext(ctx).
		Where("portfolio_id = ?", portfolioID).
		Order("transaction_date").
		Find(&transactions).Error
	return transactions, translate(err)
}

// Create inserts t and commits in its own transaction.
func (r *transactionRepo) Create(ctx context.Context, t *models.Transaction) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(t).Error
	}))
}
