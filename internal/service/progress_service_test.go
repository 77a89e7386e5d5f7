package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vesto-learn/vesto-api/internal/model"
)

func ptr[T any](v T) *T { return &v }

func gradedAnswer(questionID uint, score *float64, correct bool, gradedAt time.Time) model.UserAnswer {
	return model.UserAnswer{
		UserID:     "u1",
		ModuleID:   "income-statement",
		QuestionID: ptr(questionID),
		AIScore:    score,
		IsCorrect:  ptr(correct),
		GradedAt:   ptr(gradedAt),
	}
}

func TestComputeCompletion(t *testing.T) {
	t.Run("zero graded or zero total is zero", func(t *testing.T) {
		assert.Equal(t, 0, computeCompletion(0, 7))
		assert.Equal(t, 0, computeCompletion(3, 0))
	})

	t.Run("all graded is exactly 100", func(t *testing.T) {
		assert.Equal(t, 100, computeCompletion(7, 7))
		assert.Equal(t, 100, computeCompletion(8, 8))
		assert.Equal(t, 100, computeCompletion(3, 3))
	})

	t.Run("partial completion rounds to nearest", func(t *testing.T) {
		assert.Equal(t, 43, computeCompletion(3, 7))  // 42.857 -> 43
		assert.Equal(t, 67, computeCompletion(2, 3))  // 66.67 -> 67
		assert.Equal(t, 13, computeCompletion(1, 8))  // 12.5 -> 13
		assert.Equal(t, 33, computeCompletion(1, 3))  // 33.33 -> 33
	})

	t.Run("graded beyond total still caps at 100", func(t *testing.T) {
		assert.Equal(t, 100, computeCompletion(9, 7))
	})
}

func TestStatusForPercentage(t *testing.T) {
	assert.Equal(t, model.ProgressNotStarted, statusForPercentage(0))
	assert.Equal(t, model.ProgressInProgress, statusForPercentage(1))
	assert.Equal(t, model.ProgressInProgress, statusForPercentage(99))
	assert.Equal(t, model.ProgressCompleted, statusForPercentage(100))
}

func TestSummarizeAnswers(t *testing.T) {
	now := time.Now()

	t.Run("only the latest attempt per question counts", func(t *testing.T) {
		// newest first, matching repository ordering
		answers := []model.UserAnswer{
			gradedAnswer(1, ptr(90.0), true, now),
			gradedAnswer(1, ptr(40.0), false, now.Add(-time.Hour)),
		}
		progress := summarizeAnswers(answers, 2)
		assert.Equal(t, 50, progress.CompletionPercentage)
		assert.Equal(t, 1, progress.CorrectAnswers)
		assert.Equal(t, 90.0, progress.AverageScore)
	})

	t.Run("MCQ answers feed correct count but not the average", func(t *testing.T) {
		answers := []model.UserAnswer{
			gradedAnswer(1, ptr(80.0), true, now),
			gradedAnswer(2, nil, true, now), // MCQ: no AI score
			gradedAnswer(3, nil, false, now),
		}
		progress := summarizeAnswers(answers, 3)
		assert.Equal(t, 100, progress.CompletionPercentage)
		assert.Equal(t, 2, progress.CorrectAnswers)
		assert.Equal(t, 80.0, progress.AverageScore)
	})

	t.Run("ungraded and free-form answers are ignored", func(t *testing.T) {
		ungraded := model.UserAnswer{QuestionID: ptr(uint(4))}
		freeform := model.UserAnswer{GradedAt: ptr(now)} // no question ID
		answers := []model.UserAnswer{ungraded, freeform}

		progress := summarizeAnswers(answers, 5)
		assert.Equal(t, 0, progress.CompletionPercentage)
		assert.Equal(t, model.ProgressNotStarted, progress.Status)
		assert.Equal(t, 0.0, progress.AverageScore)
	})
}

func TestProgressRecompute(t *testing.T) {
	now := time.Now()

	t.Run("full module completion gets a completion timestamp", func(t *testing.T) {
		answerRepo := &fakeAnswerRepo{answers: []model.UserAnswer{
			gradedAnswer(1, ptr(75.0), true, now),
			gradedAnswer(2, ptr(85.0), true, now),
		}}
		questionRepo := &fakeQuestionRepo{count: 2}
		progressRepo := &fakeProgressRepo{}
		svc := NewProgressService(progressRepo, answerRepo, questionRepo)

		progress, err := svc.Recompute("u1", "income-statement")
		require.NoError(t, err)
		assert.Equal(t, 100, progress.CompletionPercentage)
		assert.Equal(t, model.ProgressCompleted, progress.Status)
		assert.Equal(t, 80.0, progress.AverageScore)
		require.NotNil(t, progress.CompletedAt)
		require.NotNil(t, progressRepo.upserted)
	})

	t.Run("started timestamp is preserved across recomputes", func(t *testing.T) {
		started := now.Add(-48 * time.Hour)
		answerRepo := &fakeAnswerRepo{answers: []model.UserAnswer{gradedAnswer(1, ptr(60.0), false, now)}}
		questionRepo := &fakeQuestionRepo{count: 4}
		progressRepo := &fakeProgressRepo{existing: &model.UserProgress{StartedAt: &started}}
		svc := NewProgressService(progressRepo, answerRepo, questionRepo)

		progress, err := svc.Recompute("u1", "income-statement")
		require.NoError(t, err)
		assert.Equal(t, started, *progress.StartedAt)
		assert.Equal(t, 25, progress.CompletionPercentage)
		assert.Equal(t, model.ProgressInProgress, progress.Status)
		assert.Nil(t, progress.CompletedAt)
	})
}

func TestSaveDirect(t *testing.T) {
	progressRepo := &fakeProgressRepo{}
	svc := NewProgressService(progressRepo, &fakeAnswerRepo{}, &fakeQuestionRepo{})

	saved, err := svc.SaveDirect(&model.UserProgress{
		UserID:               "u1",
		ModuleID:             "income-statement",
		CompletionPercentage: 40,
	})
	require.NoError(t, err)
	assert.Equal(t, model.ProgressInProgress, saved.Status)
	assert.False(t, saved.LastAccessedAt.IsZero())
	assert.Equal(t, saved, progressRepo.upserted)
}
