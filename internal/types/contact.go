package types

import (
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null;column:name" json:"name"`
	Email     string    `gorm:"not null;column:email" json:"email"`
	Phone     string    `gorm:"not null;column:phone" json:"phone"`
	Favorite  bool      `gorm:"not null;default:false;column:favorite" json:"favorite"`
	Owner     uuid.UUID `gorm:"type:uuid;index;not null;column:owner" json:"owner"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Contact) TableName() string {
	return "contact"
}
