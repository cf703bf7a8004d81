package controllers

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/venoajie/trading-web-project/src/models"
	"github.com/venoajie/trading-web-project/src/repositories"
	"github.com/venoajie/trading-web-project/src/schemas"
	"github.com/venoajie/trading-web-project/src/utils"
)

const (
	portfolioNotFoundMessage = "Portfolio not found"
	// numeric(19,8): eight fractional digits, eleven integer digits.
	decimalScale = 8
)

var decimalLimit = decimal.New(1, 19-decimalScale)

type PortfolioControllerI interface {
	CreatePortfolio(ctx context.Context, user *models.User, req *schemas.PortfolioCreate) (*schemas.PortfolioRead, error)
	ListPortfolios(ctx context.Context, user *models.User) ([]schemas.PortfolioRead, error)
	CreateTransaction(ctx context.Context, user *models.User, req *schemas.TransactionCreate) (*schemas.TransactionRead, error)
	ListTransactions(ctx context.Context, user *models.User, portfolioID uuid.UUID) ([]schemas.TransactionRead, error)
}

type PortfolioController struct {
	Portfolios   repositories.PortfolioRepository
	Transactions repositories.TransactionRepository
}

func NewPortfolioController(portfolios repositories.PortfolioRepository, transactions repositories.TransactionRepository) *PortfolioController {
	return &PortfolioController{Portfolios: portfolios, Transactions: transactions}
}

func (c *PortfolioController) CreatePortfolio(ctx context.Context, user *models.User, req *schemas.PortfolioCreate) (*schemas.PortfolioRead, error) {
	portfolio := &models.Portfolio{
		Name:        req.Name,
		Description: req.Description,
		UserID:      user.ID,
	}
	if err := c.Portfolios.Create(ctx, portfolio); err != nil {
		return nil, err
	}
	read := toPortfolioRead(portfolio)
	return &read, nil
}

func (c *PortfolioController) ListPortfolios(ctx context.Context, user *models.User) ([]schemas.PortfolioRead, error) {
	portfolios, err := c.Portfolios.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	res := make([]schemas.PortfolioRead, 0, len(portfolios))
	for i := range portfolios {
		res = append(res, toPortfolioRead(&portfolios[i]))
	}
	return res, nil
}

// CreateTransaction records a trade in one of the caller's portfolios. A
// portfolio owned by someone else is reported as missing.
func (c *PortfolioController) CreateTransaction(ctx context.Context, user *models.User, req *schemas.TransactionCreate) (*schemas.TransactionRead, error) {
	if err := checkAmount("quantity", req.Quantity); err != nil {
		return nil, err
	}
	if err := checkAmount("price", req.Price); err != nil {
		return nil, err
	}
	if _, err := c.ownedPortfolio(ctx, user, req.PortfolioID); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		PortfolioID:      req.PortfolioID,
		InstrumentTicker: req.InstrumentTicker,
		TransactionType:  models.TransactionType(req.TransactionType),
		Quantity:         req.Quantity,
		Price:            req.Price,
		TransactionDate:  req.TransactionDate,
	}
	if err := c.Transactions.Create(ctx, transaction); err != nil {
		return nil, err
	}
	read := toTransactionRead(transaction)
	return &read, nil
}

func (c *PortfolioController) ListTransactions(ctx context.Context, user *models.User, portfolioID uuid.UUID) ([]schemas.TransactionRead, error) {
	if _, err := c.ownedPortfolio(ctx, user, portfolioID); err != nil {
		return nil, err
	}
	transactions, err := c.Transactions.GetByPortfolioID(ctx, portfolioID)
	if err != nil {
		return nil, err
	}
	res := make([]schemas.TransactionRead, 0, len(transactions))
	for i := range transactions {
		res = append(res, toTransactionRead(&transactions[i]))
	}
	return res, nil
}

func (c *PortfolioController) ownedPortfolio(ctx context.Context, user *models.User, id uuid.UUID) (*models.Portfolio, error) {
	portfolio, err := c.Portfolios.GetForUser(ctx, id, user.ID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, utils.NotFound(portfolioNotFoundMessage)
	}
	return portfolio, err
}

// checkAmount rejects values the numeric(19,8) columns cannot hold exactly.
func checkAmount(field string, d decimal.Decimal) error {
	if !d.IsPositive() {
		return utils.UnprocessableEntity(field + ": must be greater than 0")
	}
	if !d.Round(decimalScale).Equal(d) {
		return utils.UnprocessableEntity(field + ": at most 8 decimal places")
	}
	if d.GreaterThanOrEqual(decimalLimit) {
		return utils.UnprocessableEntity(field + ": too large")
	}
	return nil
}

func toPortfolioRead(p *models.Portfolio) schemas.PortfolioRead {
	return schemas.PortfolioRead{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		UserID:      p.UserID,
	}
}

func toTransactionRead(t *models.Transaction) schemas.TransactionRead {
	return schemas.TransactionRead{
		ID:               t.ID,
		PortfolioID:      t.PortfolioID,
		InstrumentTicker: t.InstrumentTicker,
		TransactionType:  string(t.TransactionType),
		Quantity:         t.Quantity,
		Price:            t.Price,
		TransactionDate:  t.TransactionDate,
	}
}
