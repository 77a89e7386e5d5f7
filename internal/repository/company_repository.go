package repository

import (
	"errors"

	"github.com/vesto-learn/vesto-api/internal/model"
	"gorm.io/gorm"
)

// CompanyRepository serves the read-mostly reference tables keyed by ticker
// symbol. Enrichment lookups (fundamentals, quote, 10-K) treat "no row" as
// nil, not as an error; the company row itself is required.
type CompanyRepository interface {
	Create(company *model.Company) error
	FindAll() ([]model.Company, error)
	FindBySymbol(symbol string) (*model.Company, error)
	FindFundamentals(symbol string) (*model.CompanyFundamentals, error)
	FindQuote(symbol string) (*model.CompanyQuote, error)
	FindMock10K(symbol string) (*model.Mock10K, error)
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(company *model.Company) error {
	return r.db.Create(company).Error
}

func (r *companyRepository) FindAll() ([]model.Company, error) {
	var companies []model.Company
	if err := r.db.Order("symbol ASC").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *companyRepository) FindBySymbol(symbol string) (*model.Company, error) {
	var company model.Company
	if err := r.db.Where("symbol = ?", symbol).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) FindFundamentals(symbol string) (*model.CompanyFundamentals, error) {
	var fundamentals model.CompanyFundamentals
	err := r.db.Where("symbol = ?", symbol).Order("created_at DESC").First(&fundamentals).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fundamentals, nil
}

func (r *companyRepository) FindQuote(symbol string) (*model.CompanyQuote, error) {
	var quote model.CompanyQuote
	err := r.db.Where("symbol = ?", symbol).Order("created_at DESC").First(&quote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *companyRepository) FindMock10K(symbol string) (*model.Mock10K, error) {
	var narrative model.Mock10K
	err := r.db.Where("symbol = ?", symbol).First(&narrative).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &narrative, nil
}
