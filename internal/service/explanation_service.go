package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/opostest/backend/config"
	"github.com/opostest/backend/internal/auth"
	"github.com/opostest/backend/internal/dto"
	"github.com/opostest/backend/internal/model"
	"github.com/opostest/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-1.5-flash"

type ExplanationService interface {
	// Explain prefers the stored justification and only asks Gemini when there is none.
	Explain(ctx context.Context, caller *auth.Identity, questionID uint) (*dto.ExplanationResponse, error)
}

type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiGenerator struct {
	model *genai.GenerativeModel
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no content")
	}
	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(out.String()), nil
}

type explanationService struct {
	questionRepo repository.QuestionRepository
	generator    textGenerator
}

func NewExplanationService(cfg *config.Config, questionRepo repository.QuestionRepository) (ExplanationService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set, only stored justifications will be served")
		return &explanationService{questionRepo: questionRepo}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create Gemini client")
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	model := client.GenerativeModel(geminiModel)
	model.SetTemperature(0.2)
	return &explanationService{questionRepo: questionRepo, generator: &geminiGenerator{model: model}}, nil
}

func (s *explanationService) Explain(ctx context.Context, caller *auth.Identity, questionID uint) (*dto.ExplanationResponse, error) {
	if !caller.Authenticated() {
		return nil, newError(ErrUnauthorized, "login required")
	}
	if !caller.HasPremium() {
		return nil, newError(ErrForbidden, "explanations are available to subscribers")
	}
	question, err := s.questionRepo.FindByIDWithAnswers(questionID)
	if err != nil {
		return nil, notFoundOr(err, "question")
	}

	resp := &dto.ExplanationResponse{QuestionID: question.ID, Source: "none"}
	correct := question.CorrectAnswer()
	if correct != nil && strings.TrimSpace(correct.JustificationText) != "" {
		resp.Explanation = correct.JustificationText
		if correct.JustificationArticle != "" {
			resp.Explanation += " (" + correct.JustificationArticle + ")"
		}
		resp.Source = "stored"
		return resp, nil
	}
	if s.generator == nil || correct == nil {
		return resp, nil
	}

	text, err := s.generator.Generate(ctx, explanationPrompt(question, correct))
	if err != nil {
		log.Error().Err(err).Uint("questionID", question.ID).Msg("Gemini API error during explanation")
		return nil, newError(ErrIntegration, "the explanation could not be generated, try again later")
	}
	resp.Explanation = text
	resp.Source = "generated"
	return resp, nil
}

func explanationPrompt(question *model.Question, correct *model.Answer) string {
	var b strings.Builder
	b.WriteString("Eres un preparador de oposiciones en España. ")
	b.WriteString("Explica en un párrafo breve y en español por qué la respuesta indicada es la correcta, ")
	b.WriteString("citando la norma aplicable si la conoces.\n\n")
	fmt.Fprintf(&b, "Pregunta: %s\n", question.Text)
	for i, a := range question.Answers {
		fmt.Fprintf(&b, "%c) %s\n", 'A'+i, a.Text)
	}
	fmt.Fprintf(&b, "\nRespuesta correcta: %s\n", correct.Text)
	return b.String()
}
