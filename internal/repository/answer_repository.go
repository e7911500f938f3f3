package repository

import (
	"github.com/opostest/backend/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	// FindByIDs is keyed by answer id.
	FindByIDs(ids []uint) (map[uint]model.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) FindByIDs(ids []uint) (map[uint]model.Answer, error) {
	out := make(map[uint]model.Answer, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var answers []model.Answer
	if err := r.db.Where("id IN ?", ids).Find(&answers).Error; err != nil {
		return nil, err
	}
	for _, a := range answers {
		out[a.ID] = a
	}
	return out, nil
}
