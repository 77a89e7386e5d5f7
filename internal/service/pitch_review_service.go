package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/vesto-learn/vesto-api/internal/model"
)

// minPitchLength is the shortest pitch worth sending to the model. Anything
// shorter is rejected locally without an external call.
const minPitchLength = 50

// pitchApprovalThreshold mirrors the decision rule embedded in the
// fund-manager prompt.
const pitchApprovalThreshold = 70.0

// PitchReviewService turns (company data, pitch text) into an approve/reject
// decision. It never returns an error: any failure collapses to a rejection
// with score 0.
type PitchReviewService interface {
	ReviewPitch(ctx context.Context, companyName, symbol, pitchText, companyData string) *model.PitchReview
}

type pitchReviewService struct {
	client GenerativeClient
}

func NewPitchReviewService(client GenerativeClient) PitchReviewService {
	return &pitchReviewService{client: client}
}

func (s *pitchReviewService) ReviewPitch(ctx context.Context, companyName, symbol, pitchText, companyData string) *model.PitchReview {
	if len(strings.TrimSpace(pitchText)) < minPitchLength {
		return &model.PitchReview{
			Status:   model.PitchRejected,
			Score:    0,
			Feedback: "Your pitch is too short to evaluate. Explain the business, cite specific financial metrics, and lay out your investment thesis.",
		}
	}

	prompt := BuildPitchReviewPrompt(companyName, symbol, pitchText, companyData)

	var review model.PitchReview
	if err := s.client.GenerateStructured(ctx, prompt, &review); err != nil {
		log.Error().Err(err).Str("symbol", symbol).Int("prompt_len", len(prompt)).Msg("Pitch review failed, returning default rejection")
		return rejectedReview()
	}

	if review.Status != model.PitchApproved && review.Status != model.PitchRejected {
		log.Warn().Str("status", review.Status).Str("symbol", symbol).Msg("Pitch review returned unknown status, deriving from score")
		if review.Score >= pitchApprovalThreshold {
			review.Status = model.PitchApproved
		} else {
			review.Status = model.PitchRejected
		}
	}
	if review.Score < 0 {
		review.Score = 0
	}
	if review.Score > 100 {
		review.Score = 100
	}
	return &review
}

func rejectedReview() *model.PitchReview {
	return &model.PitchReview{
		Status:   model.PitchRejected,
		Score:    0,
		Feedback: "Unable to review pitch automatically. Please try again with more detail.",
	}
}
