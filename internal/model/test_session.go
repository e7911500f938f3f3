package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SessionType string

const (
	SessionTypeTopic  SessionType = "topic"
	SessionTypeReview SessionType = "review"
	SessionTypeExam   SessionType = "exam"
)

func (t SessionType) Valid() bool {
	switch t {
	case SessionTypeTopic, SessionTypeReview, SessionTypeExam:
		return true
	}
	return false
}

type SessionState string

const (
	SessionInProgress SessionState = "in_progress"
	SessionCompleted  SessionState = "completed"
	SessionAbandoned  SessionState = "abandoned"
)

func (s SessionState) Valid() bool {
	switch s {
	case SessionInProgress, SessionCompleted, SessionAbandoned:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed.
func (s SessionState) Terminal() bool {
	return s == SessionCompleted || s == SessionAbandoned
}

// TestSession is the resumable state of one quiz attempt.
type TestSession struct {
	ID               uuid.UUID                         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uint                              `json:"user_id" gorm:"not null;index"`
	Type             SessionType                       `json:"type" gorm:"size:16;not null;default:'topic'"`
	QuestionIDs      datatypes.JSONType[[]uint]        `json:"question_ids"`
	CurrentIndex     int                               `json:"current_index" gorm:"not null;default:0"`
	Answers          datatypes.JSONType[map[uint]uint] `json:"answers"`
	RemainingSeconds *int                              `json:"remaining_seconds,omitempty"`
	State            SessionState                      `json:"state" gorm:"size:16;not null;default:'in_progress';index"`
	Config           datatypes.JSON                    `json:"config"`
	CreatedAt        time.Time                         `json:"created_at"`
	UpdatedAt        time.Time                         `json:"updated_at"`
}
