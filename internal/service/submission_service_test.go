package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vesto-learn/vesto-api/config"
	"github.com/vesto-learn/vesto-api/internal/model"
)

const longAnswer = "Revenue grew 12% driven by subscription pricing while operating margin " +
	"expanded 200 basis points, though customer concentration remains a real risk."

func newSubmissionFixture(client *fakeGenClient) (SubmissionService, *fakeAnswerRepo, *fakeProgressRepo, *fakeQuestionRepo) {
	answerRepo := &fakeAnswerRepo{}
	progressRepo := &fakeProgressRepo{}
	questionRepo := &fakeQuestionRepo{questions: map[uint]*model.Question{}, count: 5}
	grading := NewGradingService(client, &config.Config{})
	progress := NewProgressService(progressRepo, answerRepo, questionRepo)
	svc := NewSubmissionService(questionRepo, answerRepo, grading, progress)
	return svc, answerRepo, progressRepo, questionRepo
}

func TestSubmitAnswer(t *testing.T) {
	t.Run("short written answer is rejected before grading", func(t *testing.T) {
		client := &fakeGenClient{}
		svc, answerRepo, _, _ := newSubmissionFixture(client)

		_, err := svc.SubmitAnswer(context.Background(), "u1", "m1", nil, "q", "too short", "", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAnswerTooShort)
		assert.Zero(t, client.calls)
		assert.Empty(t, answerRepo.created)
	})

	t.Run("whitespace does not count toward the minimum", func(t *testing.T) {
		client := &fakeGenClient{}
		svc, _, _, _ := newSubmissionFixture(client)

		padded := "short" + strings.Repeat(" ", 100)
		_, err := svc.SubmitAnswer(context.Background(), "u1", "m1", nil, "q", padded, "", "")
		assert.ErrorIs(t, err, ErrAnswerTooShort)
	})

	t.Run("written answer is graded, persisted and marked pass or fail", func(t *testing.T) {
		client := &fakeGenClient{structuredFn: structuredFromJSON(validFeedbackJSON(85))}
		svc, answerRepo, progressRepo, _ := newSubmissionFixture(client)

		result, err := svc.SubmitAnswer(context.Background(), "u1", "m1", nil, "q", longAnswer, "10-K context", "AAPL")
		require.NoError(t, err)
		require.NotNil(t, result.Written)
		assert.Nil(t, result.MCQ)

		require.Len(t, answerRepo.created, 1)
		saved := answerRepo.created[0]
		require.NotNil(t, saved.AIScore)
		assert.Equal(t, 85.0, *saved.AIScore)
		require.NotNil(t, saved.IsCorrect)
		assert.True(t, *saved.IsCorrect)
		assert.NotEmpty(t, saved.AIFeedback)
		assert.NotNil(t, saved.GradedAt)

		// progress was recomputed as part of the flow
		assert.NotNil(t, progressRepo.upserted)
	})

	t.Run("score below passing marks the answer incorrect", func(t *testing.T) {
		client := &fakeGenClient{structuredFn: structuredFromJSON(validFeedbackJSON(55))}
		svc, answerRepo, _, _ := newSubmissionFixture(client)

		_, err := svc.SubmitAnswer(context.Background(), "u1", "m1", nil, "q", longAnswer, "", "")
		require.NoError(t, err)
		require.Len(t, answerRepo.created, 1)
		assert.False(t, *answerRepo.created[0].IsCorrect)
	})

	t.Run("MCQ answer takes the multiple-choice path", func(t *testing.T) {
		client := &fakeGenClient{structuredFn: structuredFromJSON(`{"explanation": "Right."}`)}
		svc, answerRepo, _, questionRepo := newSubmissionFixture(client)
		correct := "C"
		questionRepo.questions[3] = &model.Question{
			ID:            3,
			QuestionType:  model.QuestionTypeMCQ,
			QuestionText:  "Pick one",
			CorrectAnswer: &correct,
		}

		result, err := svc.SubmitAnswer(context.Background(), "u1", "m1", ptr(uint(3)), "Pick one", "C", "", "")
		require.NoError(t, err)
		require.NotNil(t, result.MCQ)
		assert.Nil(t, result.Written)
		assert.True(t, result.MCQ.IsCorrect)

		require.Len(t, answerRepo.created, 1)
		assert.Nil(t, answerRepo.created[0].AIScore)
	})

	t.Run("unknown question ID fails the submission", func(t *testing.T) {
		svc, _, _, _ := newSubmissionFixture(&fakeGenClient{})

		_, err := svc.SubmitAnswer(context.Background(), "u1", "m1", ptr(uint(99)), "q", longAnswer, "", "")
		assert.Error(t, err)
	})

	t.Run("progress failure does not fail a graded submission", func(t *testing.T) {
		client := &fakeGenClient{structuredFn: structuredFromJSON(validFeedbackJSON(75))}
		answerRepo := &fakeAnswerRepo{}
		progressRepo := &fakeProgressRepo{upsertErr: errors.New("db down")}
		questionRepo := &fakeQuestionRepo{count: 5}
		grading := NewGradingService(client, &config.Config{})
		progress := NewProgressService(progressRepo, answerRepo, questionRepo)
		svc := NewSubmissionService(questionRepo, answerRepo, grading, progress)

		result, err := svc.SubmitAnswer(context.Background(), "u1", "m1", nil, "q", longAnswer, "", "")
		require.NoError(t, err)
		assert.NotNil(t, result.Answer)
	})

	t.Run("persistence failure does fail the submission", func(t *testing.T) {
		client := &fakeGenClient{structuredFn: structuredFromJSON(validFeedbackJSON(75))}
		svc, answerRepo, _, _ := newSubmissionFixture(client)
		answerRepo.createErr = errors.New("db down")

		_, err := svc.SubmitAnswer(context.Background(), "u1", "m1", nil, "q", longAnswer, "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save answer")
	})
}
