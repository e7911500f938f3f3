package dto

import (
	"time"

	"github.com/opostest/backend/internal/model"
)

type PostDTO struct {
	ID        uint             `json:"id"`
	Title     string           `json:"title"`
	Slug      string           `json:"slug"`
	Author    string           `json:"author"`
	Content   string           `json:"content,omitempty"`
	Status    model.PostStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type CreatePostRequest struct {
	Title   string           `json:"title" binding:"required,max=200"`
	Slug    string           `json:"slug" binding:"omitempty,max=200"`
	Content string           `json:"content" binding:"required"`
	Status  model.PostStatus `json:"status" binding:"omitempty,oneof=draft published"`
}

type UpdatePostRequest struct {
	Title   *string           `json:"title" binding:"omitempty,max=200"`
	Content *string           `json:"content"`
	Status  *model.PostStatus `json:"status" binding:"omitempty,oneof=draft published"`
}
