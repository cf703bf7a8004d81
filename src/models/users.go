package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey;column:id"`
	Email          string      `gorm:"column:email;size:255;uniqueIndex;not null"`
	HashedPassword string      `gorm:"column:hashed_password;not null"`
	IsActive       bool        `gorm:"column:is_active;not null;default:true"`
	CreatedAt      time.Time   `gorm:"column:created_at;autoCreateTime"`
	Portfolios     []Portfolio `gorm:"foreignKey:UserID"`
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
