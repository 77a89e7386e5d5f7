package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vesto-learn/vesto-api/internal/model"
)

func TestBuyStock(t *testing.T) {
	t.Run("valid buy upserts a holding valued at cost", func(t *testing.T) {
		portfolioRepo := &fakePortfolioRepo{}
		svc := NewPortfolioService(portfolioRepo, &fakeCompanyRepo{})

		holding, err := svc.BuyStock("u1", "AAPL", "Apple Inc.", 10, 150)
		require.NoError(t, err)
		assert.Equal(t, "AAPL", holding.Symbol)
		assert.Equal(t, 10.0, holding.Shares)
		assert.Equal(t, 150.0, holding.BuyPrice)
		assert.False(t, holding.BuyDate.IsZero())

		// at purchase time the position carries no gain or loss
		require.NotNil(t, holding.CurrentValue)
		assert.Equal(t, 1500.0, *holding.CurrentValue)
		assert.Equal(t, 0.0, *holding.GainLoss)
		assert.Equal(t, 0.0, *holding.GainLossPercent)
		assert.Equal(t, holding, portfolioRepo.upserted)
	})

	t.Run("non-positive amounts are rejected", func(t *testing.T) {
		svc := NewPortfolioService(&fakePortfolioRepo{}, &fakeCompanyRepo{})

		_, err := svc.BuyStock("u1", "AAPL", "Apple Inc.", 0, 150)
		assert.Error(t, err)
		_, err = svc.BuyStock("u1", "AAPL", "Apple Inc.", 10, -1)
		assert.Error(t, err)
	})
}

func TestGetPortfolio(t *testing.T) {
	t.Run("holdings are revalued against the latest quote", func(t *testing.T) {
		portfolioRepo := &fakePortfolioRepo{holdings: []model.UserPortfolio{
			{UserID: "u1", Symbol: "AAPL", Shares: 10, BuyPrice: 100},
		}}
		companyRepo := &fakeCompanyRepo{quote: &model.CompanyQuote{Symbol: "AAPL", CurrentPrice: 130}}
		svc := NewPortfolioService(portfolioRepo, companyRepo)

		holdings, err := svc.GetPortfolio("u1")
		require.NoError(t, err)
		require.Len(t, holdings, 1)

		h := holdings[0]
		require.NotNil(t, h.CurrentPrice)
		assert.Equal(t, 130.0, *h.CurrentPrice)
		assert.Equal(t, 1300.0, *h.CurrentValue)
		assert.Equal(t, 300.0, *h.GainLoss)
		assert.Equal(t, 30.0, *h.GainLossPercent)
	})

	t.Run("missing quote leaves stored values untouched", func(t *testing.T) {
		stored := 111.0
		portfolioRepo := &fakePortfolioRepo{holdings: []model.UserPortfolio{
			{UserID: "u1", Symbol: "NEWCO", Shares: 5, BuyPrice: 100, CurrentPrice: &stored},
		}}
		svc := NewPortfolioService(portfolioRepo, &fakeCompanyRepo{})

		holdings, err := svc.GetPortfolio("u1")
		require.NoError(t, err)
		require.Len(t, holdings, 1)
		assert.Equal(t, 111.0, *holdings[0].CurrentPrice)
	})
}

func TestRevalueHolding(t *testing.T) {
	t.Run("loss position", func(t *testing.T) {
		h := &model.UserPortfolio{Shares: 4, BuyPrice: 50}
		revalueHolding(h, 40)
		assert.Equal(t, 160.0, *h.CurrentValue)
		assert.Equal(t, -40.0, *h.GainLoss)
		assert.Equal(t, -20.0, *h.GainLossPercent)
	})

	t.Run("zero cost basis yields zero percent", func(t *testing.T) {
		h := &model.UserPortfolio{Shares: 0, BuyPrice: 0}
		revalueHolding(h, 40)
		assert.Equal(t, 0.0, *h.GainLossPercent)
	})
}
