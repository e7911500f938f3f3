package repository

import (
	"github.com/google/uuid"
	"github.com/opostest/backend/internal/model"
	"gorm.io/gorm"
)

type SessionFilter struct {
	Pending bool
	Type    string
	Limit   int
}

type SessionRepository interface {
	Create(session *model.TestSession) error
	FindForUser(id uuid.UUID, userID uint) (*model.TestSession, error)
	ListForUser(userID uint, filter SessionFilter) ([]model.TestSession, error)
	Save(session *model.TestSession) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *model.TestSession) error {
	return r.db.Create(session).Error
}

func (r *sessionRepository) FindForUser(id uuid.UUID, userID uint) (*model.TestSession, error) {
	var session model.TestSession
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) ListForUser(userID uint, filter SessionFilter) ([]model.TestSession, error) {
	q := r.db.Where("user_id = ?", userID).Order("updated_at DESC")
	if filter.Pending {
		q = q.Where("state IN ?", []model.SessionState{model.SessionInProgress, model.SessionAbandoned})
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	var sessions []model.TestSession
	err := q.Find(&sessions).Error
	return sessions, err
}

// Save writes every column; concurrent writers overwrite each other.
func (r *sessionRepository) Save(session *model.TestSession) error {
	return r.db.Save(session).Error
}
