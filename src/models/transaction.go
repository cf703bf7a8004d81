package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionType string

const (
	Buy  TransactionType = "BUY"
	Sell TransactionType = "SELL"
)

func (t TransactionType) Valid() bool {
	return t == Buy || t == Sell
}

// Transaction is an immutable trade. Quantity and price map to numeric(19,8).
type Transaction struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;column:id"`
	PortfolioID      uuid.UUID       `gorm:"type:uuid;column:portfolio_id;index;not null"`
	InstrumentTicker string          `gorm:"column:instrument_ticker;size:20;index;not null"`
	TransactionType  TransactionType `gorm:"column:transaction_type;size:4;not null"`
	Quantity         decimal.Decimal `gorm:"column:quantity;type:numeric(19,8);not null"`
	Price            decimal.Decimal `gorm:"column:price;type:numeric(19,8);not null"`
	TransactionDate  time.Time       `gorm:"column:transaction_date;not null"`
}

func (t *Transaction) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
