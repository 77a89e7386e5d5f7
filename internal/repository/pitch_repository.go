package repository

import (
	"github.com/vesto-learn/vesto-api/internal/model"
	"gorm.io/gorm"
)

// PitchStats is the per-user submission summary shown on the account page.
type PitchStats struct {
	TotalPitches    int `json:"total_pitches"`
	ApprovedPitches int `json:"approved_pitches"`
	ApprovalRate    int `json:"approval_rate"`
}

type PitchRepository interface {
	Create(pitch *model.PitchSubmission) error
	Update(pitch *model.PitchSubmission) error
	FindByID(id uint) (*model.PitchSubmission, error)
	FindAllByUser(userID string) ([]model.PitchSubmission, error)
	StatsByUser(userID string) (*PitchStats, error)
}

type pitchRepository struct {
	db *gorm.DB
}

func NewPitchRepository(db *gorm.DB) PitchRepository {
	return &pitchRepository{db: db}
}

func (r *pitchRepository) Create(pitch *model.PitchSubmission) error {
	return r.db.Create(pitch).Error
}

func (r *pitchRepository) Update(pitch *model.PitchSubmission) error {
	return r.db.Save(pitch).Error
}

func (r *pitchRepository) FindByID(id uint) (*model.PitchSubmission, error) {
	var pitch model.PitchSubmission
	if err := r.db.First(&pitch, id).Error; err != nil {
		return nil, err
	}
	return &pitch, nil
}

func (r *pitchRepository) FindAllByUser(userID string) ([]model.PitchSubmission, error) {
	var pitches []model.PitchSubmission
	err := r.db.Where("user_id = ?", userID).Order("submitted_at DESC").Find(&pitches).Error
	if err != nil {
		return nil, err
	}
	return pitches, nil
}

func (r *pitchRepository) StatsByUser(userID string) (*PitchStats, error) {
	var total, approved int64
	if err := r.db.Model(&model.PitchSubmission{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.PitchSubmission{}).
		Where("user_id = ? AND status = ?", userID, model.PitchApproved).
		Count(&approved).Error; err != nil {
		return nil, err
	}

	stats := &PitchStats{TotalPitches: int(total), ApprovedPitches: int(approved)}
	if total > 0 {
		stats.ApprovalRate = int(float64(approved)/float64(total)*100 + 0.5)
	}
	return stats, nil
}
