package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/opostest/backend/internal/model"
)

type CreateSessionRequest struct {
	Type             model.SessionType `json:"type"`
	QuestionIDs      []uint            `json:"question_ids"`
	CurrentIndex     int               `json:"current_index" binding:"min=0"`
	Answers          map[uint]uint     `json:"answers"`
	RemainingSeconds *int              `json:"remaining_seconds" binding:"omitempty,min=0"`
	Config           json.RawMessage   `json:"config" swaggertype:"object"`

	// LegacyQuestionIDs is the older name for QuestionIDs.
	LegacyQuestionIDs []uint `json:"preguntas_ids"`
}

// Normalize folds the legacy field into QuestionIDs and applies defaults.
func (r *CreateSessionRequest) Normalize() {
	if len(r.QuestionIDs) == 0 {
		r.QuestionIDs = r.LegacyQuestionIDs
	}
	r.LegacyQuestionIDs = nil
	if r.Type == "" {
		r.Type = model.SessionTypeTopic
	}
}

type UpdateSessionRequest struct {
	QuestionIDs      []uint              `json:"question_ids"`
	CurrentIndex     *int                `json:"current_index" binding:"omitempty,min=0"`
	Answers          map[uint]uint       `json:"answers"`
	RemainingSeconds *int                `json:"remaining_seconds" binding:"omitempty,min=0"`
	State            *model.SessionState `json:"state"`
	Config           json.RawMessage     `json:"config" swaggertype:"object"`

	LegacyQuestionIDs []uint `json:"preguntas_ids"`
}

func (r *UpdateSessionRequest) Normalize() {
	if len(r.QuestionIDs) == 0 {
		r.QuestionIDs = r.LegacyQuestionIDs
	}
	r.LegacyQuestionIDs = nil
}

type SessionResponse struct {
	ID               uuid.UUID          `json:"id"`
	Type             model.SessionType  `json:"type"`
	QuestionIDs      []uint             `json:"question_ids"`
	CurrentIndex     int                `json:"current_index"`
	Answers          map[uint]uint      `json:"answers"`
	RemainingSeconds *int               `json:"remaining_seconds"`
	State            model.SessionState `json:"state"`
	Config           json.RawMessage    `json:"config" swaggertype:"object"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

type SessionListQuery struct {
	Pending bool   `form:"pending"`
	Type    string `form:"type" binding:"omitempty,oneof=topic review exam"`
	Limit   int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

type TopicScore struct {
	TopicID   uint   `json:"topic_id"`
	TopicSlug string `json:"topic_slug"`
	Correct   int    `json:"correct"`
	Total     int    `json:"total"`
}

type CompleteSessionResponse struct {
	Session    SessionResponse `json:"session"`
	Correct    int             `json:"correct"`
	Total      int             `json:"total"`
	Percentage float64         `json:"percentage"`
	Topics     []TopicScore    `json:"topics"`
}

type ExamTemplateDTO struct {
	ID              uint   `json:"id"`
	CategoryID      uint   `json:"category_id"`
	CategorySlug    string `json:"category_slug"`
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	Block1Questions int    `json:"block1_questions"`
	Block2Questions int    `json:"block2_questions"`
	DurationMinutes int    `json:"duration_minutes"`
	Active          bool   `json:"active"`
}

// StartExamRequest overrides the template defaults. Nil fields keep them.
type StartExamRequest struct {
	Block1  *int  `json:"n1" binding:"omitempty,min=0,max=500"`
	Block2  *int  `json:"n2" binding:"omitempty,min=0,max=500"`
	Shuffle *bool `json:"shuffle"`
	Minutes *int  `json:"minutes" binding:"omitempty,min=0,max=600"`
}

type StartExamResponse struct {
	ID               uuid.UUID       `json:"id"`
	Count            int             `json:"count"`
	RemainingSeconds int             `json:"remaining_seconds"`
	Config           json.RawMessage `json:"config" swaggertype:"object"`
}
