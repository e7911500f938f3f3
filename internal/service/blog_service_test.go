package service

import (
	"testing"

	"github.com/opostest/backend/internal/dto"
	"github.com/opostest/backend/internal/model"
	"github.com/opostest/backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogLifecycle(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "redaccion")
	svc := NewBlogService(repository.NewPostRepository(db))

	draft, err := svc.Create(identityFor(author), dto.CreatePostRequest{Title: "Cómo preparar el examen", Content: "Planifica."})
	require.NoError(t, err)
	assert.Equal(t, "como-preparar-el-examen", draft.Slug)
	assert.Equal(t, model.PostDraft, draft.Status)
	assert.Equal(t, "redaccion", draft.Author)

	second, err := svc.Create(identityFor(author), dto.CreatePostRequest{
		Title: "Cómo preparar el examen", Content: "Repasa.", Status: model.PostPublished,
	})
	require.NoError(t, err)
	assert.Equal(t, "como-preparar-el-examen-2", second.Slug)

	list, err := svc.ListPublished()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.Slug, list[0].Slug)
	assert.Empty(t, list[0].Content)

	_, err = svc.GetPublished(draft.Slug)
	assert.ErrorIs(t, err, ErrNotFound)

	title, published := "Nuevo título", model.PostPublished
	updated, err := svc.Update(draft.ID, dto.UpdatePostRequest{Title: &title, Status: &published})
	require.NoError(t, err)
	assert.Equal(t, "Nuevo título", updated.Title)
	assert.Equal(t, "como-preparar-el-examen", updated.Slug)

	got, err := svc.GetPublished(draft.Slug)
	require.NoError(t, err)
	assert.Equal(t, "Planifica.", got.Content)

	_, err = svc.Update(999, dto.UpdatePostRequest{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Create(nil, dto.CreatePostRequest{Title: "x", Content: "y"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}
