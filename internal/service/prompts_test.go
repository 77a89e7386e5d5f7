package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vesto-learn/vesto-api/internal/model"
)

func TestBuildGradingPrompt(t *testing.T) {
	prompt := BuildGradingPrompt("What drives revenue?", "Revenue comes from iPhone sales.", "10-K excerpt here")

	t.Run("contains every rubric criterion", func(t *testing.T) {
		for _, name := range []string{"Clarity", "Evidence", "Completeness", "Critical Thinking", "Risk Analysis"} {
			assert.Contains(t, prompt, name)
		}
	})

	t.Run("demands the JSON keys the parser expects", func(t *testing.T) {
		assert.Contains(t, prompt, `"overall_score"`)
		for _, key := range model.GradingCriteria {
			assert.Contains(t, prompt, `"`+key+`"`)
		}
	})

	t.Run("interpolates question, context and answer", func(t *testing.T) {
		assert.Contains(t, prompt, "What drives revenue?")
		assert.Contains(t, prompt, "10-K excerpt here")
		assert.Contains(t, prompt, "Revenue comes from iPhone sales.")
	})
}

func TestBuildPitchReviewPrompt(t *testing.T) {
	prompt := BuildPitchReviewPrompt("Apple Inc.", "AAPL", "Buy because of services growth.", "Key Metrics: P/E 28")

	assert.Contains(t, prompt, "Portfolio Manager")
	assert.Contains(t, prompt, "APPROVE** if score >= 70")
	assert.Contains(t, prompt, "Apple Inc. (AAPL)")
	assert.Contains(t, prompt, "Key Metrics: P/E 28")
	assert.Contains(t, prompt, "Buy because of services growth.")
}

func TestBuildMCQExplanationPrompt(t *testing.T) {
	t.Run("wrong answer names both labels", func(t *testing.T) {
		prompt := BuildMCQExplanationPrompt("Which statement shows cash?", "A", "C", false)
		assert.Contains(t, prompt, `"A"`)
		assert.Contains(t, prompt, `"C"`)
		assert.Contains(t, prompt, "correct_answer_explanation")
	})

	t.Run("correct answer notes the outcome", func(t *testing.T) {
		prompt := BuildMCQExplanationPrompt("Which statement shows cash?", "C", "C", true)
		assert.Contains(t, prompt, "answered correctly")
	})
}
