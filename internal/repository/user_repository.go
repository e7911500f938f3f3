package repository

import (
	"strings"
	"time"

	"github.com/opostest/backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	// FindByEmail is case-insensitive and preloads the subscription.
	FindByEmail(email string) (*model.User, error)
	// UsernameTaken ignores the user with id exceptID (0 checks everyone).
	UsernameTaken(username string, exceptID uint) (bool, error)
	// ResetPending overwrites the credentials of an account that was never activated.
	ResetPending(id uint, username, passwordHash string) error
	Activate(id uint) error
	UpdatePassword(id uint, hash string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Omit("Subscription").Create(user).Error
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.Preload("Subscription").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Preload("Subscription").
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UsernameTaken(username string, exceptID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).
		Where("LOWER(username) = ? AND id <> ?", strings.ToLower(username), exceptID).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) ResetPending(id uint, username, passwordHash string) error {
	return r.db.Model(&model.User{}).
		Where("id = ? AND is_active = ?", id, false).
		Updates(map[string]interface{}{"username": username, "password_hash": passwordHash}).Error
}

func (r *userRepository) Activate(id uint) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).Update("is_active", true).Error
}

func (r *userRepository) UpdatePassword(id uint, hash string) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).Update("password_hash", hash).Error
}

type SubscriptionRepository interface {
	// Upsert activates the user's subscription, creating it on first checkout.
	Upsert(userID uint, customerID, subscriptionID string) (*model.Subscription, error)
	IsActive(userID uint) (bool, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Upsert(userID uint, customerID, subscriptionID string) (*model.Subscription, error) {
	sub := model.Subscription{
		UserID:               userID,
		StripeCustomerID:     customerID,
		StripeSubscriptionID: subscriptionID,
		Active:               true,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"stripe_customer_id", "stripe_subscription_id", "active", "updated_at"}),
	}).Create(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) IsActive(userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).Where("user_id = ? AND active = ?", userID, true).Count(&count).Error
	return count > 0, err
}

type VerificationCodeRepository interface {
	Create(code *model.VerificationCode) error
	Find(userID uint, code string) (*model.VerificationCode, error)
	DeleteForUser(userID uint) error
	Delete(id uint) error
}

type verificationCodeRepository struct {
	db *gorm.DB
}

func NewVerificationCodeRepository(db *gorm.DB) VerificationCodeRepository {
	return &verificationCodeRepository{db: db}
}

func (r *verificationCodeRepository) Create(code *model.VerificationCode) error {
	return r.db.Create(code).Error
}

func (r *verificationCodeRepository) Find(userID uint, code string) (*model.VerificationCode, error) {
	var vc model.VerificationCode
	err := r.db.Where("user_id = ? AND code = ?", userID, code).Order("created_at DESC").First(&vc).Error
	if err != nil {
		return nil, err
	}
	return &vc, nil
}

func (r *verificationCodeRepository) DeleteForUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.VerificationCode{}).Error
}

func (r *verificationCodeRepository) Delete(id uint) error {
	return r.db.Delete(&model.VerificationCode{}, id).Error
}

type PasswordResetRepository interface {
	Create(token *model.PasswordResetToken) error
	FindValid(userID uint, tokenHash string, now time.Time) (*model.PasswordResetToken, error)
	DeleteForUser(userID uint) error
}

type passwordResetRepository struct {
	db *gorm.DB
}

func NewPasswordResetRepository(db *gorm.DB) PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

func (r *passwordResetRepository) Create(token *model.PasswordResetToken) error {
	return r.db.Create(token).Error
}

func (r *passwordResetRepository) FindValid(userID uint, tokenHash string, now time.Time) (*model.PasswordResetToken, error) {
	var token model.PasswordResetToken
	err := r.db.Where("user_id = ? AND token_hash = ? AND expires_at > ?", userID, tokenHash, now).First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *passwordResetRepository) DeleteForUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.PasswordResetToken{}).Error
}
