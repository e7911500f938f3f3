package model

import (
	"time"

	"gorm.io/gorm"
)

type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostPublished PostStatus = "published"
)

type Post struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Title     string         `json:"title" gorm:"size:200;not null"`
	Slug      string         `json:"slug" gorm:"size:200;not null;uniqueIndex"`
	AuthorID  uint           `json:"author_id" gorm:"not null;index"`
	Author    User           `json:"-" gorm:"foreignKey:AuthorID"`
	Content   string         `json:"content" gorm:"type:text;not null"`
	Status    PostStatus     `json:"status" gorm:"size:16;not null;default:'draft';index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
