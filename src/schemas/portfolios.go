package schemas

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PortfolioCreate struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description,omitempty"`
}

type PortfolioRead struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	UserID      uuid.UUID `json:"user_id"`
}

type TransactionCreate struct {
	PortfolioID      uuid.UUID       `json:"portfolio_id" validate:"required"`
	InstrumentTicker string          `json:"instrument_ticker" validate:"required,max=20"`
	TransactionType  string          `json:"transaction_type" validate:"required,oneof=BUY SELL"`
	Quantity         decimal.Decimal `json:"quantity" validate:"gt=0"`
	Price            decimal.Decimal `json:"price" validate:"gt=0"`
	TransactionDate  time.Time       `json:"transaction_date" validate:"required"`
}

type TransactionRead struct {
	ID               uuid.UUID       `json:"id"`
	PortfolioID      uuid.UUID       `json:"portfolio_id"`
	InstrumentTicker string          `json:"instrument_ticker"`
	TransactionType  string          `json:"transaction_type"`
	Quantity         decimal.Decimal `json:"quantity"`
	Price            decimal.Decimal `json:"price"`
	TransactionDate  time.Time       `json:"transaction_date"`
}
