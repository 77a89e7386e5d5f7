package repository

import (
	"errors"

	"github.com/vesto-learn/vesto-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository interface {
	// Upsert inserts or fully replaces the row for (user_id, module_id).
	Upsert(progress *model.UserProgress) error
	// FindByUserAndModule returns (nil, nil) when no row exists.
	FindByUserAndModule(userID, moduleID string) (*model.UserProgress, error)
	FindAllByUser(userID string) ([]model.UserProgress, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Upsert(progress *model.UserProgress) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "module_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "completion_percentage", "total_questions", "correct_answers",
			"average_score", "started_at", "completed_at", "last_accessed_at", "updated_at",
		}),
	}).Create(progress).Error
}

func (r *progressRepository) FindByUserAndModule(userID, moduleID string) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := r.db.Where("user_id = ? AND module_id = ?", userID, moduleID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepository) FindAllByUser(userID string) ([]model.UserProgress, error) {
	var rows []model.UserProgress
	if err := r.db.Where("user_id = ?", userID).Order("module_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
