package repository

import (
	"github.com/vesto-learn/vesto-api/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByModule(moduleID, symbol string) ([]model.Question, error)
	CountByModule(moduleID string) (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByModule(moduleID, symbol string) ([]model.Question, error) {
	query := r.db.Where("module_id = ?", moduleID)
	if symbol != "" {
		query = query.Where("symbol = ?", symbol)
	}
	var questions []model.Question
	if err := query.Order("created_at ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) CountByModule(moduleID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Question{}).Where("module_id = ?", moduleID).Count(&count).Error
	return count, err
}
