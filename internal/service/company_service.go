package service

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/vesto-learn/vesto-api/internal/model"
	"github.com/vesto-learn/vesto-api/internal/repository"
)

// CompanyOverview aggregates the reference data for one ticker. The company
// row is required; the enrichment fields stay nil when their fetch fails.
type CompanyOverview struct {
	Company      *model.Company             `json:"company"`
	Fundamentals *model.CompanyFundamentals `json:"fundamentals"`
	Quote        *model.CompanyQuote        `json:"quote"`
	Mock10K      *model.Mock10K             `json:"mock_10k"`
}

type CompanyService interface {
	ListCompanies() ([]model.Company, error)
	GetOverview(symbol string) (*CompanyOverview, error)
}

type companyService struct {
	companyRepo repository.CompanyRepository
}

func NewCompanyService(companyRepo repository.CompanyRepository) CompanyService {
	return &companyService{companyRepo: companyRepo}
}

func (s *companyService) ListCompanies() ([]model.Company, error) {
	companies, err := s.companyRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching companies: %w", err)
	}
	return companies, nil
}

// GetOverview fetches the three enrichment rows concurrently. Each fetch is
// independently allowed to fail; a missing or erroring piece is logged and
// served as null, never as a request failure.
func (s *companyService) GetOverview(symbol string) (*CompanyOverview, error) {
	company, err := s.companyRepo.FindBySymbol(symbol)
	if err != nil {
		return nil, fmt.Errorf("company not found for symbol %s: %w", symbol, err)
	}

	overview := &CompanyOverview{Company: company}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		fundamentals, err := s.companyRepo.FindFundamentals(symbol)
		if err != nil {
			log.Warn().Err(err).Str("symbol", symbol).Msg("Fundamentals fetch failed, serving null")
			return
		}
		overview.Fundamentals = fundamentals
	}()
	go func() {
		defer wg.Done()
		quote, err := s.companyRepo.FindQuote(symbol)
		if err != nil {
			log.Warn().Err(err).Str("symbol", symbol).Msg("Quote fetch failed, serving null")
			return
		}
		overview.Quote = quote
	}()
	go func() {
		defer wg.Done()
		narrative, err := s.companyRepo.FindMock10K(symbol)
		if err != nil {
			log.Warn().Err(err).Str("symbol", symbol).Msg("10-K fetch failed, serving null")
			return
		}
		overview.Mock10K = narrative
	}()
	wg.Wait()

	return overview, nil
}
