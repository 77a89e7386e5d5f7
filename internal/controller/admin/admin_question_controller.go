package admin

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/vesto-learn/vesto-api/internal/dto"
	"github.com/vesto-learn/vesto-api/internal/model"
	"github.com/vesto-learn/vesto-api/internal/repository"
	"gorm.io/datatypes"
)

type AdminQuestionController struct {
	questionRepo repository.QuestionRepository
}

func NewAdminQuestionController(questionRepo repository.QuestionRepository) *AdminQuestionController {
	return &AdminQuestionController{questionRepo: questionRepo}
}

// CreateQuestion godoc
// @Summary Author a question for a module
// @Description Multiple-choice questions require options and a correct label that names one of them. Written questions require grading guidance.
// @Tags Admin
// @Accept json
// @Produce json
// @Param module_id path string true "Module ID"
// @Param question body dto.QuestionCreateRequest true "Question"
// @Success 201 {object} dto.DataResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/modules/{module_id}/questions [post]
func (c *AdminQuestionController) CreateQuestion(ctx *gin.Context) {
	moduleID := ctx.Param("module_id")

	var req dto.QuestionCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing required fields", Details: err.Error()})
		return
	}

	question := &model.Question{
		ModuleID:        moduleID,
		Symbol:          req.Symbol,
		QuestionType:    req.QuestionType,
		QuestionText:    req.QuestionText,
		QuestionContext: req.QuestionContext,
		Difficulty:      req.Difficulty,
	}

	switch req.QuestionType {
	case model.QuestionTypeMCQ:
		if len(req.Options) < 2 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "MCQ questions need at least two options"})
			return
		}
		if req.CorrectAnswer == nil || !labelExists(req.Options, *req.CorrectAnswer) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "correct_answer must name one of the option labels"})
			return
		}
		data, err := json.Marshal(req.Options)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid options", Details: err.Error()})
			return
		}
		question.Options = datatypes.JSON(data)
		question.CorrectAnswer = req.CorrectAnswer
	case model.QuestionTypeWritten:
		if req.Guidance == nil || *req.Guidance == "" {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Written questions need grading guidance"})
			return
		}
		question.Guidance = req.Guidance
	}

	if err := c.questionRepo.Create(question); err != nil {
		log.Error().Err(err).Str("module_id", moduleID).Msg("CreateQuestion: repository error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create question", Details: err.Error()})
		return
	}

	log.Info().Str("module_id", moduleID).Uint("question_id", question.ID).Str("type", question.QuestionType).Msg("Question created")
	ctx.JSON(http.StatusCreated, dto.DataResponse{Data: question})
}

func labelExists(options []dto.QuestionOptionDTO, label string) bool {
	for _, opt := range options {
		if opt.Label == label {
			return true
		}
	}
	return false
}
