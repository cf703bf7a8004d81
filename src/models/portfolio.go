package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Portfolio struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey;column:id"`
	Name         string        `gorm:"column:name;size:100;not null"`
	Description  *string       `gorm:"column:description;type:text"`
	UserID       uuid.UUID     `gorm:"type:uuid;column:user_id;index;not null"`
	Transactions []Transaction `gorm:"foreignKey:PortfolioID"`
}

func (p *Portfolio) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
