package service

import (
	"github.com/opostest/backend/internal/auth"
	"github.com/opostest/backend/internal/dto"
	"github.com/opostest/backend/internal/model"
	"github.com/opostest/backend/internal/repository"
	"github.com/opostest/backend/internal/slug"
	"github.com/rs/zerolog/log"
)

type BlogService interface {
	ListPublished() ([]dto.PostDTO, error)
	GetPublished(slug string) (*dto.PostDTO, error)
	Create(caller *auth.Identity, req dto.CreatePostRequest) (*dto.PostDTO, error)
	Update(id uint, req dto.UpdatePostRequest) (*dto.PostDTO, error)
}

type blogService struct {
	postRepo repository.PostRepository
}

func NewBlogService(postRepo repository.PostRepository) BlogService {
	return &blogService{postRepo: postRepo}
}

func (s *blogService) ListPublished() ([]dto.PostDTO, error) {
	posts, err := s.postRepo.FindPublished()
	if err != nil {
		log.Error().Err(err).Msg("ListPosts: repository error")
		return nil, err
	}
	out := make([]dto.PostDTO, 0, len(posts))
	for i := range posts {
		p := toPostDTO(&posts[i])
		p.Content = ""
		out = append(out, p)
	}
	return out, nil
}

func (s *blogService) GetPublished(postSlug string) (*dto.PostDTO, error) {
	post, err := s.postRepo.FindPublishedBySlug(postSlug)
	if err != nil {
		return nil, notFoundOr(err, "post")
	}
	out := toPostDTO(post)
	return &out, nil
}

func (s *blogService) Create(caller *auth.Identity, req dto.CreatePostRequest) (*dto.PostDTO, error) {
	if !caller.Authenticated() {
		return nil, newError(ErrUnauthorized, "login required")
	}
	base := req.Slug
	if base == "" {
		base = req.Title
	}
	postSlug, err := slug.Unique(slug.Make(base, slug.DefaultMaxLen), slug.DefaultMaxLen, s.postRepo.SlugExists)
	if err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = model.PostDraft
	}

	post := model.Post{
		Title:    req.Title,
		Slug:     postSlug,
		AuthorID: caller.UserID,
		Content:  req.Content,
		Status:   status,
	}
	if err := s.postRepo.Create(&post); err != nil {
		log.Error().Err(err).Str("slug", postSlug).Msg("CreatePost: insert failed")
		return nil, err
	}
	created, err := s.postRepo.FindByID(post.ID)
	if err != nil {
		return nil, err
	}
	out := toPostDTO(created)
	return &out, nil
}

// Update never changes the slug, so published links stay valid.
func (s *blogService) Update(id uint, req dto.UpdatePostRequest) (*dto.PostDTO, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err, "post")
	}
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Status != nil {
		post.Status = *req.Status
	}
	if err := s.postRepo.Save(post); err != nil {
		log.Error().Err(err).Uint("postID", id).Msg("UpdatePost: save failed")
		return nil, err
	}
	out := toPostDTO(post)
	return &out, nil
}

func toPostDTO(p *model.Post) dto.PostDTO {
	return dto.PostDTO{
		ID:        p.ID,
		Title:     p.Title,
		Slug:      p.Slug,
		Author:    p.Author.Username,
		Content:   p.Content,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
