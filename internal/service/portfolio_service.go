package service

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/vesto-learn/vesto-api/internal/model"
	"github.com/vesto-learn/vesto-api/internal/repository"
)

type PortfolioService interface {
	GetPortfolio(userID string) ([]model.UserPortfolio, error)
	// BuyStock upserts the holding for (user, symbol). Buying a symbol the
	// user already holds replaces the position outright.
	BuyStock(userID, symbol, companyName string, shares, buyPrice float64) (*model.UserPortfolio, error)
}

type portfolioService struct {
	portfolioRepo repository.PortfolioRepository
	companyRepo   repository.CompanyRepository
}

func NewPortfolioService(portfolioRepo repository.PortfolioRepository, companyRepo repository.CompanyRepository) PortfolioService {
	return &portfolioService{portfolioRepo: portfolioRepo, companyRepo: companyRepo}
}

// GetPortfolio returns the user's holdings, revalued against the latest
// stored quote where one exists. Revaluation is best effort; a missing quote
// leaves the persisted numbers untouched.
func (s *portfolioService) GetPortfolio(userID string) ([]model.UserPortfolio, error) {
	holdings, err := s.portfolioRepo.FindAllByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching portfolio: %w", err)
	}

	for i := range holdings {
		quote, err := s.companyRepo.FindQuote(holdings[i].Symbol)
		if err != nil {
			log.Warn().Err(err).Str("symbol", holdings[i].Symbol).Msg("Quote lookup failed during revaluation")
			continue
		}
		if quote != nil {
			revalueHolding(&holdings[i], quote.CurrentPrice)
		}
	}
	return holdings, nil
}

func (s *portfolioService) BuyStock(userID, symbol, companyName string, shares, buyPrice float64) (*model.UserPortfolio, error) {
	if shares <= 0 || buyPrice <= 0 {
		return nil, fmt.Errorf("shares and buy price must be positive")
	}

	holding := &model.UserPortfolio{
		UserID:      userID,
		Symbol:      symbol,
		CompanyName: companyName,
		Shares:      shares,
		BuyPrice:    buyPrice,
		BuyDate:     time.Now(),
	}
	revalueHolding(holding, buyPrice)

	if err := s.portfolioRepo.Upsert(holding); err != nil {
		return nil, fmt.Errorf("failed to add to portfolio: %w", err)
	}
	log.Info().Str("user_id", userID).Str("symbol", symbol).Float64("shares", shares).Msg("Holding upserted")
	return holding, nil
}

// revalueHolding recomputes the derived value fields from a current price.
func revalueHolding(h *model.UserPortfolio, currentPrice float64) {
	costBasis := h.Shares * h.BuyPrice
	currentValue := h.Shares * currentPrice
	gainLoss := currentValue - costBasis

	gainLossPercent := 0.0
	if costBasis > 0 {
		gainLossPercent = gainLoss / costBasis * 100
	}

	h.CurrentPrice = &currentPrice
	h.CurrentValue = &currentValue
	h.GainLoss = &gainLoss
	h.GainLossPercent = &gainLossPercent
}
