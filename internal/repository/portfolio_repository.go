package repository

import (
	"errors"

	"github.com/vesto-learn/vesto-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PortfolioRepository interface {
	// Upsert inserts or fully replaces the holding for (user_id, symbol).
	// A repeat buy overwrites shares and cost basis, it does not average.
	Upsert(holding *model.UserPortfolio) error
	FindAllByUser(userID string) ([]model.UserPortfolio, error)
	// FindByUserAndSymbol returns (nil, nil) when the user holds no position.
	FindByUserAndSymbol(userID, symbol string) (*model.UserPortfolio, error)
}

type portfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) Upsert(holding *model.UserPortfolio) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "symbol"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"company_name", "shares", "buy_price", "buy_date",
			"current_price", "current_value", "gain_loss", "gain_loss_percent", "updated_at",
		}),
	}).Create(holding).Error
}

func (r *portfolioRepository) FindAllByUser(userID string) ([]model.UserPortfolio, error) {
	var holdings []model.UserPortfolio
	err := r.db.Where("user_id = ?", userID).Order("buy_date DESC").Find(&holdings).Error
	if err != nil {
		return nil, err
	}
	return holdings, nil
}

func (r *portfolioRepository) FindByUserAndSymbol(userID, symbol string) (*model.UserPortfolio, error) {
	var holding model.UserPortfolio
	err := r.db.Where("user_id = ? AND symbol = ?", userID, symbol).First(&holding).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &holding, nil
}
