package repository

import (
	"time"

	"github.com/opostest/backend/internal/model"
	"gorm.io/gorm"
)

// UserTotals is one leaderboard row before ranking.
type UserTotals struct {
	UserID   uint
	Username string
	Correct  int
	Total    int
}

type ResultRepository interface {
	Create(result *model.Result) error
	CreateBatch(results []model.Result) error
	// ListForUser preloads Topic -> Block -> Category, oldest first.
	ListForUser(userID uint) ([]model.Result, error)
	ListRecentForUser(userID uint, limit int) ([]model.Result, error)
	TotalsSince(since time.Time) ([]UserTotals, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(result *model.Result) error {
	return r.db.Omit("User", "Topic").Create(result).Error
}

func (r *resultRepository) CreateBatch(results []model.Result) error {
	if len(results) == 0 {
		return nil
	}
	return r.db.Omit("User", "Topic").Create(&results).Error
}

func (r *resultRepository) ListForUser(userID uint) ([]model.Result, error) {
	var results []model.Result
	err := r.db.Preload("Topic.Block.Category").
		Where("user_id = ?", userID).
		Order("taken_at ASC, id ASC").
		Find(&results).Error
	return results, err
}

func (r *resultRepository) ListRecentForUser(userID uint, limit int) ([]model.Result, error) {
	var results []model.Result
	err := r.db.Preload("Topic").
		Where("user_id = ?", userID).
		Order("taken_at DESC, id DESC").
		Limit(limit).
		Find(&results).Error
	return results, err
}

func (r *resultRepository) TotalsSince(since time.Time) ([]UserTotals, error) {
	var rows []UserTotals
	err := r.db.Model(&model.Result{}).
		Select("results.user_id AS user_id, users.username AS username, SUM(results.correct) AS correct, SUM(results.total) AS total").
		Joins("JOIN users ON users.id = results.user_id").
		Where("results.taken_at >= ?", since).
		Group("results.user_id, users.username").
		Having("SUM(results.total) > 0").
		Scan(&rows).Error
	return rows, err
}
