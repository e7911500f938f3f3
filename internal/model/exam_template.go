package model

import (
	"time"

	"gorm.io/gorm"
)

// ExamTemplate is the recipe for an official-style mock exam.
type ExamTemplate struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	CategoryID      uint           `json:"category_id" gorm:"not null;index"`
	Category        ExamCategory   `json:"-" gorm:"foreignKey:CategoryID"`
	Name            string         `json:"name" gorm:"size:200;not null"`
	Slug            string         `json:"slug" gorm:"size:200;not null;uniqueIndex"`
	Block1Questions int            `json:"block1_questions" gorm:"not null"`
	Block2Questions int            `json:"block2_questions" gorm:"not null"`
	DurationMinutes int            `json:"duration_minutes" gorm:"not null"`
	Active          bool           `json:"active" gorm:"not null;index"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
