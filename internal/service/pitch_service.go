package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/vesto-learn/vesto-api/internal/model"
	"github.com/vesto-learn/vesto-api/internal/repository"
)

var (
	// ErrPitchNotOwned means the pitch belongs to a different user.
	ErrPitchNotOwned = errors.New("pitch belongs to a different user")
	// ErrPitchNotApproved means an investment was attempted on a pitch that
	// was not approved.
	ErrPitchNotApproved = errors.New("pitch is not approved for investment")
	// ErrAlreadyInvested means the approved pitch was already acted on.
	ErrAlreadyInvested = errors.New("pitch investment already recorded")
	// ErrNoQuoteAvailable means no stored price exists to execute the buy at.
	ErrNoQuoteAvailable = errors.New("no quote available for symbol")
)

// PitchOutcome pairs the persisted submission with the review that decided it.
type PitchOutcome struct {
	Submission *model.PitchSubmission `json:"submission"`
	Review     *model.PitchReview     `json:"review"`
}

// PitchService runs the simulator flow: review a pitch against stored company
// data, persist the submission, and later execute the investment on an
// approved pitch.
type PitchService interface {
	SubmitPitch(ctx context.Context, userID, symbol, companyName, pitchText string) (*PitchOutcome, error)
	Invest(userID string, pitchID uint, shares float64) (*model.PitchSubmission, *model.UserPortfolio, error)
	PitchHistory(userID string) ([]model.PitchSubmission, *repository.PitchStats, error)
}

type pitchService struct {
	pitchRepo        repository.PitchRepository
	companyRepo      repository.CompanyRepository
	reviewService    PitchReviewService
	portfolioService PortfolioService
}

func NewPitchService(
	pitchRepo repository.PitchRepository,
	companyRepo repository.CompanyRepository,
	reviewService PitchReviewService,
	portfolioService PortfolioService,
) PitchService {
	return &pitchService{
		pitchRepo:        pitchRepo,
		companyRepo:      companyRepo,
		reviewService:    reviewService,
		portfolioService: portfolioService,
	}
}

func (s *pitchService) SubmitPitch(ctx context.Context, userID, symbol, companyName, pitchText string) (*PitchOutcome, error) {
	company, err := s.companyRepo.FindBySymbol(symbol)
	if err != nil {
		return nil, fmt.Errorf("company not found for symbol %s: %w", symbol, err)
	}

	// Enrichment context for the reviewer; both fetches are best effort.
	var fundamentals *model.CompanyFundamentals
	var narrative *model.Mock10K
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		f, err := s.companyRepo.FindFundamentals(symbol)
		if err != nil {
			log.Warn().Err(err).Str("symbol", symbol).Msg("Fundamentals fetch failed for pitch review context")
			return
		}
		fundamentals = f
	}()
	go func() {
		defer wg.Done()
		n, err := s.companyRepo.FindMock10K(symbol)
		if err != nil {
			log.Warn().Err(err).Str("symbol", symbol).Msg("10-K fetch failed for pitch review context")
			return
		}
		narrative = n
	}()
	wg.Wait()

	companyData := buildCompanyData(companyName, symbol, fundamentals, narrative)
	review := s.reviewService.ReviewPitch(ctx, companyName, symbol, pitchText, companyData)

	now := time.Now()
	submission := &model.PitchSubmission{
		UserID:      userID,
		CompanyID:   company.ID,
		Symbol:      symbol,
		CompanyName: companyName,
		PitchText:   pitchText,
		Status:      review.Status,
		AIFeedback:  review.Feedback,
		AIScore:     &review.Score,
		SubmittedAt: now,
		ReviewedAt:  &now,
	}
	if err := s.pitchRepo.Create(submission); err != nil {
		return nil, fmt.Errorf("failed to save pitch submission: %w", err)
	}

	return &PitchOutcome{Submission: submission, Review: review}, nil
}

// Invest executes the buy for an approved pitch at the latest stored quote
// and records the execution on the submission.
func (s *pitchService) Invest(userID string, pitchID uint, shares float64) (*model.PitchSubmission, *model.UserPortfolio, error) {
	pitch, err := s.pitchRepo.FindByID(pitchID)
	if err != nil {
		return nil, nil, fmt.Errorf("pitch %d not found: %w", pitchID, err)
	}
	if pitch.UserID != userID {
		return nil, nil, ErrPitchNotOwned
	}
	if pitch.Status != model.PitchApproved {
		return nil, nil, ErrPitchNotApproved
	}
	if pitch.Invested {
		return nil, nil, ErrAlreadyInvested
	}

	quote, err := s.companyRepo.FindQuote(pitch.Symbol)
	if err != nil {
		return nil, nil, fmt.Errorf("quote lookup for %s: %w", pitch.Symbol, err)
	}
	if quote == nil {
		return nil, nil, ErrNoQuoteAvailable
	}

	holding, err := s.portfolioService.BuyStock(userID, pitch.Symbol, pitch.CompanyName, shares, quote.CurrentPrice)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	pitch.Invested = true
	pitch.SharesPurchased = &shares
	price := quote.CurrentPrice
	pitch.PurchasePrice = &price
	pitch.InvestedAt = &now
	if err := s.pitchRepo.Update(pitch); err != nil {
		return nil, nil, fmt.Errorf("failed to record investment on pitch: %w", err)
	}

	return pitch, holding, nil
}

func (s *pitchService) PitchHistory(userID string) ([]model.PitchSubmission, *repository.PitchStats, error) {
	pitches, err := s.pitchRepo.FindAllByUser(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("error fetching pitches: %w", err)
	}
	stats, err := s.pitchRepo.StatsByUser(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("error fetching pitch stats: %w", err)
	}
	return pitches, stats, nil
}

// buildCompanyData flattens the stored reference data into the text block the
// fund-manager prompt expects. Missing pieces render as N/A.
func buildCompanyData(companyName, symbol string, fundamentals *model.CompanyFundamentals, narrative *model.Mock10K) string {
	business, risks := "N/A", "N/A"
	if narrative != nil {
		business = narrative.BusinessDescription
		risks = narrative.RiskFactors
	}

	peRatio, roe, debtToEquity := "N/A", "N/A", "N/A"
	if fundamentals != nil {
		if fundamentals.PeRatio != nil {
			peRatio = fmt.Sprintf("%.2f", *fundamentals.PeRatio)
		}
		if fundamentals.Roe != nil {
			roe = fmt.Sprintf("%.2f%%", *fundamentals.Roe)
		}
		if fundamentals.DebtToEquity != nil {
			debtToEquity = fmt.Sprintf("%.2f", *fundamentals.DebtToEquity)
		}
	}

	return strings.TrimSpace(fmt.Sprintf(`Company: %s (%s)
Business: %s
Risk Factors: %s
Key Metrics: P/E %s, ROE %s, Debt/Equity %s`,
		companyName, symbol, business, risks, peRatio, roe, debtToEquity))
}
