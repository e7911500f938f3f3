package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/opostest/backend/internal/csvimport"
	"github.com/opostest/backend/internal/dto"
	"github.com/opostest/backend/internal/model"
	"github.com/opostest/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const maxImportErrorDetails = 50

// officialExamTopic describes the per-block topic that receives imported questions.
type officialExamTopic struct {
	blockName string
	number    int
	name      string
}

var officialExamTopics = map[int]officialExamTopic{
	1: {blockName: "Bloque 1", number: 99901, name: "Examen oficial - Bloque 1"},
	2: {blockName: "Bloque 2", number: 99902, name: "Examen oficial - Bloque 2"},
}

func officialExamSlug(categorySlug string, block int) string {
	return fmt.Sprintf("%s-examen-oficial-b%d", categorySlug, block)
}

type ExamImportService interface {
	// Import reads an official-exam CSV into the category named by slug or name.
	// Row problems are counted in the result; only structural problems return an error.
	Import(ctx context.Context, categoryRef string, raw []byte) (*dto.ImportResult, error)
}

type examImportService struct {
	db           *gorm.DB
	categoryRepo repository.CategoryRepository
}

func NewExamImportService(db *gorm.DB, categoryRepo repository.CategoryRepository) ExamImportService {
	return &examImportService{db: db, categoryRepo: categoryRepo}
}

type importRun struct {
	result *dto.ImportResult
	topics map[int]*model.Topic
	seen   map[uint]map[string]struct{}
}

func (r *importRun) fail(line int, err error) {
	r.result.Errors++
	if len(r.result.ErrorDetails) < maxImportErrorDetails {
		r.result.ErrorDetails = append(r.result.ErrorDetails, dto.ImportRowError{Line: line, Error: err.Error()})
	}
}

func (s *examImportService) Import(ctx context.Context, categoryRef string, raw []byte) (*dto.ImportResult, error) {
	category, err := s.categoryRepo.FindBySlugOrName(categoryRef)
	if err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("category %q", categoryRef))
	}

	reader, err := csvimport.NewReader(raw)
	if err != nil {
		var missing *csvimport.MissingColumnsError
		switch {
		case errors.As(err, &missing), errors.Is(err, csvimport.ErrNoHeader):
			return nil, newError(ErrValidation, "%s", err.Error())
		default:
			return nil, newError(ErrValidation, "unreadable CSV file: %v", err)
		}
	}

	db := s.db.WithContext(ctx)
	run := &importRun{
		result: &dto.ImportResult{
			Category:     dto.CategorySummary{ID: category.ID, Name: category.Name, Slug: category.Slug},
			ErrorDetails: []dto.ImportRowError{},
		},
		topics: make(map[int]*model.Topic, len(officialExamTopics)),
		seen:   make(map[uint]map[string]struct{}, len(officialExamTopics)),
	}
	if err := s.prepareTopics(db, category, run); err != nil {
		log.Error().Err(err).Uint("categoryID", category.ID).Msg("Import: preparing official exam topics failed")
		return nil, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			run.fail(row.Line, err)
			continue
		}
		s.importRow(db, run, row)
	}

	log.Info().
		Str("category", category.Slug).
		Int("created", run.result.Created).
		Int("skipped", run.result.Skipped).
		Int("errors", run.result.Errors).
		Msg("Official exam import finished")
	return run.result, nil
}

func (s *examImportService) prepareTopics(db *gorm.DB, category *model.ExamCategory, run *importRun) error {
	blockRepo := repository.NewBlockRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	questionRepo := repository.NewQuestionRepository(db)

	for number, def := range officialExamTopics {
		block, err := blockRepo.GetOrCreate(category.ID, number, def.blockName)
		if err != nil {
			return fmt.Errorf("block %d: %w", number, err)
		}
		topic := &model.Topic{
			BlockID:      block.ID,
			Number:       def.number,
			OfficialName: def.name,
			Slug:         officialExamSlug(category.Slug, number),
			Premium:      true,
		}
		if err := topicRepo.GetOrCreateBySlug(topic); err != nil {
			return fmt.Errorf("official exam topic for block %d: %w", number, err)
		}
		texts, err := questionRepo.TextsByTopic(topic.ID)
		if err != nil {
			return fmt.Errorf("existing questions for block %d: %w", number, err)
		}
		seen := make(map[string]struct{}, len(texts))
		for _, t := range texts {
			seen[t] = struct{}{}
		}
		run.topics[number] = topic
		run.seen[topic.ID] = seen
	}
	return nil
}

func (s *examImportService) importRow(db *gorm.DB, run *importRun, row csvimport.Row) {
	if row.Text == "" {
		run.result.Skipped++
		return
	}
	topic := run.topics[row.Block]
	if _, dup := run.seen[topic.ID][row.Text]; dup {
		run.result.Skipped++
		return
	}
	if err := row.Validate(); err != nil {
		log.Warn().Int("line", row.Line).Err(err).Msg("Import: row rejected")
		run.fail(row.Line, err)
		return
	}

	question := buildQuestion(topic.ID, row)
	err := db.Transaction(func(tx *gorm.DB) error {
		return repository.NewQuestionRepository(tx).Create(&question)
	})
	if err != nil {
		log.Error().Err(err).Int("line", row.Line).Msg("Import: row insert failed")
		run.fail(row.Line, err)
		return
	}

	run.seen[topic.ID][row.Text] = struct{}{}
	run.result.Created++
	if row.Block == 2 {
		run.result.CreatedBlock2++
	} else {
		run.result.CreatedBlock1++
	}
}

// buildQuestion keeps non-empty options only; justification goes on the correct answer.
func buildQuestion(topicID uint, row csvimport.Row) model.Question {
	correct := row.CorrectIndex()
	question := model.Question{
		TopicID:        topicID,
		Text:           row.Text,
		OriginalSource: row.Source(),
	}
	for i, opt := range row.Options {
		if opt == "" {
			continue
		}
		answer := model.Answer{Text: opt, IsCorrect: i == correct}
		if answer.IsCorrect {
			answer.JustificationText = row.JustText
			answer.JustificationArticle = row.JustArticle
			answer.JustificationSourceURL = row.JustURL
		}
		question.Answers = append(question.Answers, answer)
	}
	return question
}
