package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vesto-learn/vesto-api/internal/model"
)

const detailedPitch = "Apple's services segment grew 16% year over year with 70% gross margins, " +
	"which compounds on an installed base of over two billion devices. Valuation is rich at 28x " +
	"earnings but justified by the recurring revenue mix shift."

func TestReviewPitch(t *testing.T) {
	t.Run("short pitch is rejected without an external call", func(t *testing.T) {
		client := &fakeGenClient{}
		svc := NewPitchReviewService(client)

		review := svc.ReviewPitch(context.Background(), "Apple Inc.", "AAPL", "buy apple", "data")
		assert.Equal(t, model.PitchRejected, review.Status)
		assert.Equal(t, 0.0, review.Score)
		assert.Zero(t, client.calls)
	})

	t.Run("whitespace padding does not satisfy the minimum", func(t *testing.T) {
		client := &fakeGenClient{}
		svc := NewPitchReviewService(client)

		padded := "buy" + strings.Repeat(" ", 60)
		review := svc.ReviewPitch(context.Background(), "Apple Inc.", "AAPL", padded, "data")
		assert.Equal(t, model.PitchRejected, review.Status)
		assert.Zero(t, client.calls)
	})

	t.Run("approved verdict passes through", func(t *testing.T) {
		client := &fakeGenClient{structuredFn: structuredFromJSON(`{"status": "approved", "score": 82, "feedback": "Strong thesis."}`)}
		svc := NewPitchReviewService(client)

		review := svc.ReviewPitch(context.Background(), "Apple Inc.", "AAPL", detailedPitch, "data")
		assert.Equal(t, model.PitchApproved, review.Status)
		assert.Equal(t, 82.0, review.Score)
	})

	t.Run("review failure collapses to a rejection, never an error", func(t *testing.T) {
		client := &fakeGenClient{structuredFn: func(string, any) error { return errors.New("api down") }}
		svc := NewPitchReviewService(client)

		review := svc.ReviewPitch(context.Background(), "Apple Inc.", "AAPL", detailedPitch, "data")
		assert.Equal(t, model.PitchRejected, review.Status)
		assert.Equal(t, 0.0, review.Score)
		assert.NotEmpty(t, review.Feedback)
	})

	t.Run("unknown status is derived from the score", func(t *testing.T) {
		client := &fakeGenClient{structuredFn: structuredFromJSON(`{"status": "maybe", "score": 75, "feedback": "ok"}`)}
		svc := NewPitchReviewService(client)

		review := svc.ReviewPitch(context.Background(), "Apple Inc.", "AAPL", detailedPitch, "data")
		assert.Equal(t, model.PitchApproved, review.Status)

		client = &fakeGenClient{structuredFn: structuredFromJSON(`{"status": "maybe", "score": 40, "feedback": "weak"}`)}
		review = NewPitchReviewService(client).ReviewPitch(context.Background(), "Apple Inc.", "AAPL", detailedPitch, "data")
		assert.Equal(t, model.PitchRejected, review.Status)
	})

	t.Run("score is clamped to the 0..100 range", func(t *testing.T) {
		client := &fakeGenClient{structuredFn: structuredFromJSON(`{"status": "approved", "score": 130, "feedback": "ok"}`)}
		svc := NewPitchReviewService(client)

		review := svc.ReviewPitch(context.Background(), "Apple Inc.", "AAPL", detailedPitch, "data")
		assert.Equal(t, 100.0, review.Score)
	})
}
