package repository

import (
	"github.com/vesto-learn/vesto-api/internal/model"
	"gorm.io/gorm"
)

// AnswerRepository is insert-only from the grading flow: a resubmission
// creates a new row, graded rows are never rewritten.
type AnswerRepository interface {
	Create(answer *model.UserAnswer) error
	FindByUserAndModule(userID, moduleID string) ([]model.UserAnswer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(answer *model.UserAnswer) error {
	return r.db.Create(answer).Error
}

func (r *answerRepository) FindByUserAndModule(userID, moduleID string) ([]model.UserAnswer, error) {
	var answers []model.UserAnswer
	err := r.db.
		Where("user_id = ? AND module_id = ?", userID, moduleID).
		Order("submitted_at DESC").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}
