package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/vesto-learn/vesto-api/internal/model"
	"github.com/vesto-learn/vesto-api/internal/repository"
)

// minWrittenAnswerLength is enforced before any grading call is made.
const minWrittenAnswerLength = 50

// ErrAnswerTooShort is a validation failure, mapped to a 400 by handlers.
var ErrAnswerTooShort = errors.New("answer is too short to grade")

// GradedSubmission is what the grade endpoint returns: the persisted answer
// plus the feedback record that produced it.
type GradedSubmission struct {
	Answer  *model.UserAnswer
	Written *model.AIFeedback
	MCQ     *model.MCQFeedback
}

// SubmissionService runs the written/MCQ grading flow: grade, persist the
// answer, then recompute progress as a non-fatal side effect.
type SubmissionService interface {
	SubmitAnswer(ctx context.Context, userID, moduleID string, questionID *uint, questionText, answerText, answerContext, symbol string) (*GradedSubmission, error)
	AnswersForModule(userID, moduleID string) ([]model.UserAnswer, error)
}

type submissionService struct {
	questionRepo    repository.QuestionRepository
	answerRepo      repository.AnswerRepository
	gradingService  GradingService
	progressService ProgressService
}

func NewSubmissionService(
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	gradingService GradingService,
	progressService ProgressService,
) SubmissionService {
	return &submissionService{
		questionRepo:    questionRepo,
		answerRepo:      answerRepo,
		gradingService:  gradingService,
		progressService: progressService,
	}
}

func (s *submissionService) SubmitAnswer(ctx context.Context, userID, moduleID string, questionID *uint, questionText, answerText, answerContext, symbol string) (*GradedSubmission, error) {
	var question *model.Question
	if questionID != nil {
		q, err := s.questionRepo.FindByID(*questionID)
		if err != nil {
			return nil, fmt.Errorf("question %d not found: %w", *questionID, err)
		}
		question = q
	}

	result := &GradedSubmission{}
	now := time.Now()
	answer := &model.UserAnswer{
		UserID:      userID,
		QuestionID:  questionID,
		ModuleID:    moduleID,
		Symbol:      symbol,
		AnswerText:  answerText,
		SubmittedAt: now,
		GradedAt:    &now,
	}

	if question != nil && question.QuestionType == model.QuestionTypeMCQ {
		feedback, err := s.gradingService.GradeMultipleChoice(ctx, question, answerText)
		if err != nil {
			return nil, err
		}
		result.MCQ = feedback
		answer.IsCorrect = &feedback.IsCorrect

		data, err := MarshalFeedback(feedback)
		if err != nil {
			return nil, err
		}
		answer.AIFeedback = data
	} else {
		if len(strings.TrimSpace(answerText)) < minWrittenAnswerLength {
			return nil, fmt.Errorf("%w: need at least %d characters", ErrAnswerTooShort, minWrittenAnswerLength)
		}
		feedback, err := s.gradingService.GradeWrittenAnswer(ctx, questionText, answerText, answerContext)
		if err != nil {
			return nil, err
		}
		result.Written = feedback
		answer.AIScore = &feedback.OverallScore
		isCorrect := feedback.OverallScore >= passingScore
		answer.IsCorrect = &isCorrect

		data, err := MarshalFeedback(feedback)
		if err != nil {
			return nil, err
		}
		answer.AIFeedback = data
	}

	if err := s.answerRepo.Create(answer); err != nil {
		return nil, fmt.Errorf("failed to save answer: %w", err)
	}
	result.Answer = answer

	// Progress bookkeeping must never fail an already-graded submission.
	if _, err := s.progressService.Recompute(userID, moduleID); err != nil {
		log.Error().Err(err).
			Str("user_id", userID).
			Str("module_id", moduleID).
			Msg("Progress recomputation failed after grading; submission still succeeds")
	}

	return result, nil
}

func (s *submissionService) AnswersForModule(userID, moduleID string) ([]model.UserAnswer, error) {
	return s.answerRepo.FindByUserAndModule(userID, moduleID)
}
