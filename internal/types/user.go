package types

import (
	"time"

	"github.com/google/uuid"
)

const DefaultSubscription = "starter"

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password string    `gorm:"not null;column:password" json:"-"`
	// Token holds the most recently issued session token. Logout clears it,
	// which revokes the session by overwrite.
	Token             string    `gorm:"column:token" json:"-"`
	Subscription      string    `gorm:"not null;default:starter;column:subscription" json:"subscription"`
	AvatarURL         string    `gorm:"column:avatar_url" json:"avatar_url"`
	VerificationToken *string   `gorm:"uniqueIndex;column:verification_token" json:"-"`
	Verify            bool      `gorm:"not null;default:false;column:verify" json:"verify"`
	CreatedAt         time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string {
	return "user"
}
