package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vesto-learn/vesto-api/config"
	"github.com/vesto-learn/vesto-api/internal/model"
)

func validFeedbackJSON(overall float64) string {
	criteria := map[string]model.CriterionFeedback{}
	for _, name := range model.GradingCriteria {
		criteria[name] = model.CriterionFeedback{Score: overall / 5, Feedback: "ok"}
	}
	data, _ := json.Marshal(model.AIFeedback{
		OverallScore: overall,
		Criteria:     criteria,
		Summary:      "A solid answer overall.",
	})
	return string(data)
}

func structuredFromJSON(raw string) func(string, any) error {
	return func(_ string, out any) error {
		return json.Unmarshal([]byte(raw), out)
	}
}

func TestGradeWrittenAnswer(t *testing.T) {
	strictCfg := &config.Config{}
	lenientCfg := &config.Config{Grading: config.Grading{FallbackOnError: true}}

	t.Run("valid response is returned as-is", func(t *testing.T) {
		client := &fakeGenClient{structuredFn: structuredFromJSON(validFeedbackJSON(85))}
		svc := NewGradingService(client, strictCfg)

		feedback, err := svc.GradeWrittenAnswer(context.Background(), "q", "a", "ctx")
		require.NoError(t, err)
		assert.Equal(t, 85.0, feedback.OverallScore)
		assert.Len(t, feedback.Criteria, 5)
	})

	t.Run("missing criterion fails the contract", func(t *testing.T) {
		raw := `{"overall_score": 80, "criteria": {"clarity": {"score": 16, "feedback": "ok"}}, "summary": "short"}`
		client := &fakeGenClient{structuredFn: structuredFromJSON(raw)}
		svc := NewGradingService(client, strictCfg)

		_, err := svc.GradeWrittenAnswer(context.Background(), "q", "a", "ctx")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("out-of-range criterion score is rejected", func(t *testing.T) {
		feedback := validFeedbackJSON(85)
		var parsed model.AIFeedback
		require.NoError(t, json.Unmarshal([]byte(feedback), &parsed))
		parsed.Criteria["clarity"] = model.CriterionFeedback{Score: 25, Feedback: "too high"}
		raw, _ := json.Marshal(parsed)

		client := &fakeGenClient{structuredFn: structuredFromJSON(string(raw))}
		svc := NewGradingService(client, strictCfg)

		_, err := svc.GradeWrittenAnswer(context.Background(), "q", "a", "ctx")
		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("out-of-range overall score is rejected", func(t *testing.T) {
		raw := `{"overall_score": 140, "criteria": {}, "summary": "x"}`
		client := &fakeGenClient{structuredFn: structuredFromJSON(raw)}
		svc := NewGradingService(client, strictCfg)

		_, err := svc.GradeWrittenAnswer(context.Background(), "q", "a", "ctx")
		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("empty summary is rejected", func(t *testing.T) {
		feedback := validFeedbackJSON(70)
		var parsed model.AIFeedback
		require.NoError(t, json.Unmarshal([]byte(feedback), &parsed))
		parsed.Summary = "   "
		raw, _ := json.Marshal(parsed)

		client := &fakeGenClient{structuredFn: structuredFromJSON(string(raw))}
		svc := NewGradingService(client, strictCfg)

		_, err := svc.GradeWrittenAnswer(context.Background(), "q", "a", "ctx")
		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("generation failure propagates under the strict policy", func(t *testing.T) {
		client := &fakeGenClient{structuredFn: func(string, any) error { return errors.New("api down") }}
		svc := NewGradingService(client, strictCfg)

		_, err := svc.GradeWrittenAnswer(context.Background(), "q", "a", "ctx")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "grading failed")
	})

	t.Run("fallback policy substitutes the neutral record", func(t *testing.T) {
		client := &fakeGenClient{structuredFn: func(string, any) error { return errors.New("api down") }}
		svc := NewGradingService(client, lenientCfg)

		feedback, err := svc.GradeWrittenAnswer(context.Background(), "q", "a", "ctx")
		require.NoError(t, err)
		assert.Equal(t, 50.0, feedback.OverallScore)
		require.Len(t, feedback.Criteria, 5)
		for _, name := range model.GradingCriteria {
			assert.Equal(t, 10.0, feedback.Criteria[name].Score)
		}
		assert.NotEmpty(t, feedback.Summary)
	})
}

func TestGradeMultipleChoice(t *testing.T) {
	correct := "B"
	mcq := &model.Question{
		ID:            7,
		QuestionType:  model.QuestionTypeMCQ,
		QuestionText:  "Which line item is a liability?",
		CorrectAnswer: &correct,
	}

	t.Run("correctness is decided locally, case-insensitively", func(t *testing.T) {
		client := &fakeGenClient{structuredFn: structuredFromJSON(`{"explanation": "Deferred revenue is owed to customers."}`)}
		svc := NewGradingService(client, &config.Config{})

		feedback, err := svc.GradeMultipleChoice(context.Background(), mcq, " b ")
		require.NoError(t, err)
		assert.True(t, feedback.IsCorrect)
		assert.Equal(t, "Deferred revenue is owed to customers.", feedback.Explanation)
	})

	t.Run("AI failure falls back to a local explanation", func(t *testing.T) {
		client := &fakeGenClient{structuredFn: func(string, any) error { return errors.New("api down") }}
		svc := NewGradingService(client, &config.Config{})

		feedback, err := svc.GradeMultipleChoice(context.Background(), mcq, "A")
		require.NoError(t, err)
		assert.False(t, feedback.IsCorrect)
		assert.Contains(t, feedback.Explanation, "B")
	})

	t.Run("written question is not accepted", func(t *testing.T) {
		written := &model.Question{ID: 8, QuestionType: model.QuestionTypeWritten}
		svc := NewGradingService(&fakeGenClient{}, &config.Config{})

		_, err := svc.GradeMultipleChoice(context.Background(), written, "A")
		assert.Error(t, err)
	})

	t.Run("missing stored answer is an error", func(t *testing.T) {
		broken := &model.Question{ID: 9, QuestionType: model.QuestionTypeMCQ}
		svc := NewGradingService(&fakeGenClient{}, &config.Config{})

		_, err := svc.GradeMultipleChoice(context.Background(), broken, "A")
		assert.Error(t, err)
	})
}
