package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/campusconnect/studia/internal/llm"
	"github.com/campusconnect/studia/internal/quiz"
)

// Config holds generation settings.
type Config struct {
	// MaxTokens for free-text material. Quiz generation uses QuizMaxTokens.
	MaxTokens     int
	QuizMaxTokens int
	Temperature   float64
}

// DefaultConfig returns sensible generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:     1024,
		QuizMaxTokens: 2048,
		Temperature:   0.7,
	}
}

// Service is the Content Generation Gateway: it formats requests for
// the generative backend and parses structured responses into typed
// records. Stateless; every call is request/response.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a gateway over the given provider.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// GenerateQuizChallenge produces a quiz for a challenge attempt:
// exactly 5 questions with 4 options each.
func (s *Service) GenerateQuizChallenge(ctx context.Context, topic string) (*quiz.Quiz, error) {
	ctx = llm.WithPurpose(ctx, "quiz-challenge")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: quizChallengeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizChallengeMessage(topic)},
		},
		Schema:      QuizChallengeSchema,
		MaxTokens:   s.cfg.QuizMaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("quiz challenge generation: %w", err)
	}

	var q quiz.Quiz
	if err := json.Unmarshal(resp.Content, &q); err != nil {
		return nil, fmt.Errorf("parse quiz challenge response: %w", err)
	}
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("generated quiz is invalid: %w", err)
	}
	// The schema demands the 5x4 shape, but not every backend enforces
	// it server-side.
	if len(q.Questions) != 5 {
		return nil, fmt.Errorf("generated quiz has %d questions, want 5", len(q.Questions))
	}
	for i, question := range q.Questions {
		if len(question.Options) != 4 {
			return nil, fmt.Errorf("generated question %d has %d options, want 4", i+1, len(question.Options))
		}
	}
	return &q, nil
}

// GenerateChallengeDetails produces a title, description and
// difficulty-banded point value for a new challenge.
func (s *Service) GenerateChallengeDetails(ctx context.Context, topic string, difficulty Difficulty) (*ChallengeDetails, error) {
	if !difficulty.Valid() {
		return nil, fmt.Errorf("unknown difficulty: %q", difficulty)
	}
	ctx = llm.WithPurpose(ctx, "challenge-details")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: challengeDetailsSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildChallengeDetailsMessage(topic, difficulty)},
		},
		Schema:      challengeDetailsSchema(difficulty),
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("challenge details generation: %w", err)
	}

	var details ChallengeDetails
	if err := json.Unmarshal(resp.Content, &details); err != nil {
		return nil, fmt.Errorf("parse challenge details response: %w", err)
	}
	return &details, nil
}

// GenerateContent produces teacher-facing material. Quiz-type requests
// come back with parsed questions; surveys and assignments as text.
func (s *Service) GenerateContent(ctx context.Context, req ContentRequest) (*GeneratedContent, error) {
	if !req.ContentType.Valid() {
		return nil, fmt.Errorf("unknown content type: %q", req.ContentType)
	}
	if req.Difficulty != "" && !req.Difficulty.Valid() {
		return nil, fmt.Errorf("unknown difficulty: %q", req.Difficulty)
	}
	ctx = llm.WithPurpose(ctx, "content")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: contentSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildContentMessage(req)},
		},
		Schema:      contentSchema(req.ContentType),
		MaxTokens:   maxTokensFor(req.ContentType, s.cfg),
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("content generation: %w", err)
	}

	var out struct {
		Title     string          `json:"title"`
		Content   string          `json:"content"`
		Questions []quiz.Question `json:"questions"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse content response: %w", err)
	}

	generated := &GeneratedContent{
		Title:       out.Title,
		Content:     out.Content,
		ContentType: req.ContentType,
		Questions:   out.Questions,
	}
	if req.ContentType == TypeQuiz {
		q := quiz.Quiz{Title: out.Title, Questions: out.Questions}
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("generated quiz is invalid: %w", err)
		}
	}
	return generated, nil
}

// ModerateSubmission reviews a submitted artifact image and returns an
// advisory verdict. The verdict never completes a challenge by itself.
func (s *Service) ModerateSubmission(ctx context.Context, input ModerationInput) (*ModerationVerdict, error) {
	if _, _, _, err := llm.ParseDataURI(input.PhotoDataURI); err != nil {
		return nil, fmt.Errorf("submission artifact: %w", err)
	}
	ctx = llm.WithPurpose(ctx, "moderation")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: moderationSystemPrompt,
		Messages: []llm.Message{
			{
				Role:         llm.RoleUser,
				Content:      buildModerationMessage(input),
				ImageDataURI: input.PhotoDataURI,
			},
		},
		Schema:      ModerationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("submission moderation: %w", err)
	}

	var verdict ModerationVerdict
	if err := json.Unmarshal(resp.Content, &verdict); err != nil {
		return nil, fmt.Errorf("parse moderation response: %w", err)
	}
	return &verdict, nil
}

func maxTokensFor(t Type, cfg Config) int {
	if t == TypeQuiz {
		return cfg.QuizMaxTokens
	}
	return cfg.MaxTokens
}
