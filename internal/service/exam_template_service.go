package service

import (
	"encoding/json"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/opostest/backend/internal/auth"
	"github.com/opostest/backend/internal/dto"
	"github.com/opostest/backend/internal/model"
	"github.com/opostest/backend/internal/repository"
	"github.com/opostest/backend/internal/slug"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type ExamTemplateService interface {
	List(categorySlug string) ([]dto.ExamTemplateDTO, error)
	Get(slug string) (*dto.ExamTemplateDTO, error)
	Create(req dto.CreateExamTemplateRequest) (*dto.ExamTemplateDTO, error)
	// Start draws questions from blocks 1 and 2 and opens an exam session.
	Start(caller *auth.Identity, slug string, req dto.StartExamRequest) (*dto.StartExamResponse, error)
}

type examTemplateService struct {
	templateRepo repository.ExamTemplateRepository
	categoryRepo repository.CategoryRepository
	questionRepo repository.QuestionRepository
	sessionRepo  repository.SessionRepository
	shuffle      func([]uint)
}

func NewExamTemplateService(
	templateRepo repository.ExamTemplateRepository,
	categoryRepo repository.CategoryRepository,
	questionRepo repository.QuestionRepository,
	sessionRepo repository.SessionRepository,
) ExamTemplateService {
	return &examTemplateService{
		templateRepo: templateRepo,
		categoryRepo: categoryRepo,
		questionRepo: questionRepo,
		sessionRepo:  sessionRepo,
		shuffle: func(ids []uint) {
			rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
		},
	}
}

type examTemplateConfig struct {
	Block1  int  `json:"n1"`
	Block2  int  `json:"n2"`
	Shuffle bool `json:"shuffle"`
	Minutes int  `json:"minutes"`
}

type examSessionConfig struct {
	Category     string             `json:"category"`
	TemplateSlug string             `json:"template_slug"`
	Template     examTemplateConfig `json:"template"`
}

func (s *examTemplateService) List(categorySlug string) ([]dto.ExamTemplateDTO, error) {
	templates, err := s.templateRepo.ListActive(strings.TrimSpace(categorySlug))
	if err != nil {
		log.Error().Err(err).Str("category", categorySlug).Msg("ListExamTemplates: repository error")
		return nil, err
	}
	out := make([]dto.ExamTemplateDTO, 0, len(templates))
	for i := range templates {
		out = append(out, toExamTemplateDTO(&templates[i]))
	}
	return out, nil
}

func (s *examTemplateService) Get(templateSlug string) (*dto.ExamTemplateDTO, error) {
	template, err := s.templateRepo.FindActiveBySlug(templateSlug)
	if err != nil {
		return nil, notFoundOr(err, "exam template")
	}
	out := toExamTemplateDTO(template)
	return &out, nil
}

func (s *examTemplateService) Create(req dto.CreateExamTemplateRequest) (*dto.ExamTemplateDTO, error) {
	category, err := s.categoryRepo.FindByID(req.CategoryID)
	if err != nil {
		return nil, notFoundOr(err, "category")
	}
	base := req.Slug
	if strings.TrimSpace(base) == "" {
		base = req.Name
	}
	templateSlug, err := slug.Unique(slug.Make(base, 0), 0, s.templateRepo.SlugExists)
	if err != nil {
		return nil, err
	}

	template := model.ExamTemplate{
		CategoryID:      category.ID,
		Name:            strings.TrimSpace(req.Name),
		Slug:            templateSlug,
		Block1Questions: req.Block1Questions,
		Block2Questions: req.Block2Questions,
		DurationMinutes: req.DurationMinutes,
		Active:          req.Active == nil || *req.Active,
	}
	if err := s.templateRepo.Create(&template); err != nil {
		log.Error().Err(err).Str("slug", templateSlug).Msg("CreateExamTemplate: insert failed")
		return nil, err
	}
	template.Category = *category
	out := toExamTemplateDTO(&template)
	return &out, nil
}

func (s *examTemplateService) Start(caller *auth.Identity, templateSlug string, req dto.StartExamRequest) (*dto.StartExamResponse, error) {
	if !caller.Authenticated() {
		return nil, newError(ErrUnauthorized, "login required")
	}
	template, err := s.templateRepo.FindActiveBySlug(templateSlug)
	if err != nil {
		return nil, notFoundOr(err, "exam template")
	}

	cfg := examTemplateConfig{
		Block1:  template.Block1Questions,
		Block2:  template.Block2Questions,
		Shuffle: true,
		Minutes: template.DurationMinutes,
	}
	if req.Block1 != nil {
		cfg.Block1 = *req.Block1
	}
	if req.Block2 != nil {
		cfg.Block2 = *req.Block2
	}
	if req.Shuffle != nil {
		cfg.Shuffle = *req.Shuffle
	}
	if req.Minutes != nil {
		cfg.Minutes = *req.Minutes
	}

	ids, err := s.drawQuestions(template.CategoryID, cfg)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, newError(ErrValidation, "there are not enough questions to build this exam")
	}

	rawConfig, err := json.Marshal(examSessionConfig{
		Category:     template.Category.Slug,
		TemplateSlug: template.Slug,
		Template:     cfg,
	})
	if err != nil {
		return nil, err
	}
	remaining := max(1, cfg.Minutes) * 60

	session := model.TestSession{
		ID:               uuid.New(),
		UserID:           caller.UserID,
		Type:             model.SessionTypeExam,
		QuestionIDs:      datatypes.NewJSONType(ids),
		Answers:          datatypes.NewJSONType(map[uint]uint{}),
		RemainingSeconds: &remaining,
		State:            model.SessionInProgress,
		Config:           datatypes.JSON(rawConfig),
	}
	if err := s.sessionRepo.Create(&session); err != nil {
		log.Error().Err(err).Str("template", template.Slug).Msg("StartExam: creating session failed")
		return nil, err
	}

	log.Info().
		Str("sessionID", session.ID.String()).
		Str("template", template.Slug).
		Int("questions", len(ids)).
		Msg("Exam started")
	return &dto.StartExamResponse{
		ID:               session.ID,
		Count:            len(ids),
		RemainingSeconds: remaining,
		Config:           json.RawMessage(rawConfig),
	}, nil
}

func (s *examTemplateService) drawQuestions(categoryID uint, cfg examTemplateConfig) ([]uint, error) {
	var ids []uint
	for _, draw := range []struct{ block, n int }{{1, cfg.Block1}, {2, cfg.Block2}} {
		if draw.n <= 0 {
			continue
		}
		drawn, err := s.questionRepo.RandomIDsByBlock(categoryID, draw.block, draw.n)
		if err != nil {
			log.Error().Err(err).Uint("categoryID", categoryID).Int("block", draw.block).Msg("StartExam: drawing questions failed")
			return nil, err
		}
		ids = append(ids, drawn...)
	}
	if cfg.Shuffle {
		s.shuffle(ids)
	}
	return ids, nil
}

func toExamTemplateDTO(t *model.ExamTemplate) dto.ExamTemplateDTO {
	return dto.ExamTemplateDTO{
		ID:              t.ID,
		CategoryID:      t.CategoryID,
		CategorySlug:    t.Category.Slug,
		Name:            t.Name,
		Slug:            t.Slug,
		Block1Questions: t.Block1Questions,
		Block2Questions: t.Block2Questions,
		DurationMinutes: t.DurationMinutes,
		Active:          t.Active,
	}
}
