package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/vesto-learn/vesto-api/config"
	"github.com/vesto-learn/vesto-api/internal/model"
)

// ErrMissingFields means the model's JSON parsed but does not satisfy the
// feedback contract (missing keys or out-of-range scores).
var ErrMissingFields = errors.New("missing required fields in AI response")

const (
	maxOverallScore   = 100.0
	maxCriterionScore = 20.0
	passingScore      = 70.0
)

// GradingService turns (question, answer, context) into a validated feedback
// record.
type GradingService interface {
	GradeWrittenAnswer(ctx context.Context, questionText, answerText, answerContext string) (*model.AIFeedback, error)
	GradeMultipleChoice(ctx context.Context, question *model.Question, selectedLabel string) (*model.MCQFeedback, error)
}

type gradingService struct {
	client          GenerativeClient
	fallbackOnError bool
}

func NewGradingService(client GenerativeClient, cfg *config.Config) GradingService {
	return &gradingService{
		client:          client,
		fallbackOnError: cfg.Grading.FallbackOnError,
	}
}

// GradeWrittenAnswer builds the rubric prompt, runs structured generation and
// validates the parsed result against the rubric contract. When the
// configured policy allows it, any failure is replaced by a neutral default
// record so the submission flow still completes; otherwise the failure
// propagates to the handler.
func (s *gradingService) GradeWrittenAnswer(ctx context.Context, questionText, answerText, answerContext string) (*model.AIFeedback, error) {
	prompt := BuildGradingPrompt(questionText, answerText, answerContext)
	log.Info().Int("prompt_len", len(prompt)).Msg("Grading written answer")

	var feedback model.AIFeedback
	err := s.client.GenerateStructured(ctx, prompt, &feedback)
	if err == nil {
		err = validateFeedback(&feedback)
	}
	if err != nil {
		log.Error().Err(err).Int("prompt_len", len(prompt)).Msg("Grading failed")
		if s.fallbackOnError {
			return defaultFeedback(), nil
		}
		return nil, fmt.Errorf("grading failed: %w", err)
	}
	return &feedback, nil
}

// GradeMultipleChoice checks correctness locally against the stored label and
// asks the model for the richer explanation triple. The AI call is best
// effort: on failure the user still gets a locally-built explanation, so MCQ
// grading never fails.
func (s *gradingService) GradeMultipleChoice(ctx context.Context, question *model.Question, selectedLabel string) (*model.MCQFeedback, error) {
	if question.QuestionType != model.QuestionTypeMCQ {
		return nil, fmt.Errorf("question %d is not multiple-choice", question.ID)
	}
	if question.CorrectAnswer == nil {
		return nil, fmt.Errorf("question %d has no correct answer on record", question.ID)
	}

	correct := strings.EqualFold(strings.TrimSpace(selectedLabel), *question.CorrectAnswer)
	feedback := &model.MCQFeedback{IsCorrect: correct}

	prompt := BuildMCQExplanationPrompt(question.QuestionText, selectedLabel, *question.CorrectAnswer, correct)
	var enriched model.MCQFeedback
	if err := s.client.GenerateStructured(ctx, prompt, &enriched); err != nil {
		log.Warn().Err(err).Uint("question_id", question.ID).Msg("MCQ explanation generation failed, using local feedback")
		if correct {
			feedback.Explanation = "Correct! You selected the right answer."
		} else {
			feedback.Explanation = fmt.Sprintf("Incorrect. The correct answer is %s.", *question.CorrectAnswer)
		}
		return feedback, nil
	}

	feedback.Explanation = enriched.Explanation
	feedback.WhyWrong = enriched.WhyWrong
	feedback.HowToUnderstand = enriched.HowToUnderstand
	feedback.CorrectAnswerText = enriched.CorrectAnswerText
	if feedback.Explanation == "" {
		feedback.Explanation = fmt.Sprintf("The correct answer is %s.", *question.CorrectAnswer)
	}
	return feedback, nil
}

// validateFeedback is the typed parse-or-reject boundary: the rubric contract
// is enforced here, not trusted from the model.
func validateFeedback(f *model.AIFeedback) error {
	if f.OverallScore < 0 || f.OverallScore > maxOverallScore {
		return fmt.Errorf("%w: overall_score %.1f out of range", ErrMissingFields, f.OverallScore)
	}
	if f.Criteria == nil {
		return fmt.Errorf("%w: criteria object absent", ErrMissingFields)
	}
	for _, name := range model.GradingCriteria {
		c, ok := f.Criteria[name]
		if !ok {
			return fmt.Errorf("%w: criterion %q absent", ErrMissingFields, name)
		}
		if c.Score < 0 || c.Score > maxCriterionScore {
			return fmt.Errorf("%w: criterion %q score %.1f out of range", ErrMissingFields, name, c.Score)
		}
	}
	if len(f.Criteria) != len(model.GradingCriteria) {
		return fmt.Errorf("%w: unexpected criteria keys", ErrMissingFields)
	}
	if strings.TrimSpace(f.Summary) == "" {
		return fmt.Errorf("%w: summary absent", ErrMissingFields)
	}
	return nil
}

// defaultFeedback is the substitute record used when grading fails and the
// fallback policy is enabled: score 50, every criterion at 10/20.
func defaultFeedback() *model.AIFeedback {
	criteria := make(map[string]model.CriterionFeedback, len(model.GradingCriteria))
	for _, name := range model.GradingCriteria {
		criteria[name] = model.CriterionFeedback{
			Score:    maxCriterionScore / 2,
			Feedback: "Automatic grading was unavailable for this criterion.",
		}
	}
	return &model.AIFeedback{
		OverallScore: maxOverallScore / 2,
		Criteria:     criteria,
		Summary:      "Automatic grading failed. A neutral score was assigned; please resubmit for a full review.",
	}
}

// MarshalFeedback serializes a feedback record for the JSON column on
// user_answers.
func MarshalFeedback(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal feedback: %w", err)
	}
	return data, nil
}
