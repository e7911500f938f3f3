package model

import "time"

type User struct {
	ID           uint          `gorm:"primarykey" json:"id"`
	Username     string        `json:"username" gorm:"size:150;not null;uniqueIndex"`
	Email        string        `json:"email" gorm:"size:254;not null;uniqueIndex"`
	PasswordHash string        `json:"-" gorm:"not null"`
	IsActive     bool          `json:"is_active" gorm:"not null;default:false"`
	IsStaff      bool          `json:"is_staff" gorm:"not null;default:false"`
	Subscription *Subscription `json:"subscription,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Subscription is written only by the billing webhook.
type Subscription struct {
	ID                   uint      `gorm:"primarykey" json:"id"`
	UserID               uint      `json:"user_id" gorm:"not null;uniqueIndex"`
	StripeCustomerID     string    `json:"stripe_customer_id" gorm:"size:255"`
	StripeSubscriptionID string    `json:"stripe_subscription_id" gorm:"size:255"`
	Active               bool      `json:"active" gorm:"not null;default:false"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type VerificationCode struct {
	ID        uint      `gorm:"primarykey"`
	UserID    uint      `gorm:"not null;index"`
	Code      string    `gorm:"size:6;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// Expired reports whether the code is older than ttl at now.
func (v VerificationCode) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(v.CreatedAt) > ttl
}

type PasswordResetToken struct {
	ID        uint      `gorm:"primarykey"`
	UserID    uint      `gorm:"not null;index"`
	TokenHash string    `gorm:"size:64;not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}
