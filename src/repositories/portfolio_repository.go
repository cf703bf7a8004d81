package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/venoajie/trading-web-project/src/models"
	"gorm.io/gorm"
)

type PortfolioRepository interface {
	Create(ctx context.Context, p *models.Portfolio) error
	GetForUser(ctx context.Context, id, userID uuid.UUID) (*models.Portfolio, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Portfolio, error)
}

type portfolioRepo struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepo{db: db}
}

func (r *portfolioRepo) Create(ctx context.Context, p *models.Portfolio) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

// GetForUser returns the portfolio only when userID owns it.
func (r *portfolioRepo) GetForUser(ctx context.Context, id, userID uuid.UUID) (*models.Portfolio, error) {
	var p models.Portfolio
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&p).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *portfolioRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Portfolio, error) {
	portfolios := []models.Portfolio{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name").
		Find(&portfolios).Error
	return portfolios, translate(err)
}
