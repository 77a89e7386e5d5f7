package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/vesto-learn/vesto-api/internal/dto"
	"github.com/vesto-learn/vesto-api/internal/middleware"
	"github.com/vesto-learn/vesto-api/internal/model"
	"github.com/vesto-learn/vesto-api/internal/repository"
	"github.com/vesto-learn/vesto-api/internal/service"
)

type ModuleController struct {
	submissionService service.SubmissionService
	progressService   service.ProgressService
	questionRepo      repository.QuestionRepository
}

func NewModuleController(
	submissionService service.SubmissionService,
	progressService service.ProgressService,
	questionRepo repository.QuestionRepository,
) *ModuleController {
	return &ModuleController{
		submissionService: submissionService,
		progressService:   progressService,
		questionRepo:      questionRepo,
	}
}

// GradeAnswer godoc
// @Summary Submit an answer for AI grading
// @Description Grades a written answer against the rubric (or a multiple-choice answer against the stored label), persists the answer, and recomputes module progress. Progress bookkeeping failures do not fail the request.
// @Tags Modules
// @Accept json
// @Produce json
// @Param module_id path string true "Module ID"
// @Param submission body dto.GradeRequest true "Answer submission"
// @Security BearerAuth
// @Success 200 {object} dto.DataResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid fields"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Failure 403 {object} dto.ErrorResponse "User ID mismatch"
// @Failure 500 {object} dto.ErrorResponse "Grading or persistence failure"
// @Router /modules/{module_id}/grade [post]
func (c *ModuleController) GradeAnswer(ctx *gin.Context) {
	moduleID := ctx.Param("module_id")

	var req dto.GradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing required fields", Details: err.Error()})
		return
	}
	if !middleware.AuthorizeUser(ctx, req.UserID) {
		return
	}

	result, err := c.submissionService.SubmitAnswer(
		ctx.Request.Context(),
		req.UserID, moduleID, req.QuestionID,
		req.QuestionText, req.AnswerText, req.Context, req.Symbol,
	)
	if err != nil {
		if errors.Is(err, service.ErrAnswerTooShort) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "Answer too short",
				Details: "Please provide a more detailed answer (minimum 50 characters)",
			})
			return
		}
		log.Error().Err(err).Str("module_id", moduleID).Str("user_id", req.UserID).Msg("GradeAnswer: submission failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to grade answer", Details: err.Error()})
		return
	}

	var feedback any
	if result.Written != nil {
		feedback = result.Written
	} else {
		feedback = result.MCQ
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Data: dto.GradeResponse{Answer: result.Answer, Feedback: feedback}})
}

// GetQuestions godoc
// @Summary List questions for a module
// @Tags Modules
// @Produce json
// @Param module_id path string true "Module ID"
// @Param symbol query string false "Restrict to one ticker"
// @Success 200 {object} dto.DataResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /modules/{module_id}/questions [get]
func (c *ModuleController) GetQuestions(ctx *gin.Context) {
	moduleID := ctx.Param("module_id")
	symbol := ctx.Query("symbol")

	questions, err := c.questionRepo.FindByModule(moduleID, symbol)
	if err != nil {
		log.Error().Err(err).Str("module_id", moduleID).Msg("GetQuestions: repository error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch questions", Details: err.Error()})
		return
	}

	// The learner-facing shape omits correct answers and guidance.
	responses := make([]dto.QuestionResponse, len(questions))
	for i := range questions {
		copier.Copy(&responses[i], &questions[i])
		if len(questions[i].Options) > 0 {
			responses[i].Options = questions[i].Options
		}
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Data: responses})
}

// GetProgress godoc
// @Summary Get module progress for the authenticated user
// @Tags Modules
// @Produce json
// @Param module_id path string true "Module ID"
// @Param userId query string true "User ID (must match session)"
// @Security BearerAuth
// @Success 200 {object} dto.DataResponse "data is null when the module was never started"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /modules/{module_id}/progress [get]
func (c *ModuleController) GetProgress(ctx *gin.Context) {
	moduleID := ctx.Param("module_id")
	userID := ctx.Query("userId")
	if userID == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "User ID required"})
		return
	}
	if !middleware.AuthorizeUser(ctx, userID) {
		return
	}

	progress, err := c.progressService.Get(userID, moduleID)
	if err != nil {
		log.Error().Err(err).Str("module_id", moduleID).Msg("GetProgress: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch progress", Details: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Data: progress})
}

// SaveProgress godoc
// @Summary Directly save module progress
// @Description Best-effort fallback write used when the implicit progress save during grading failed client-side.
// @Tags Modules
// @Accept json
// @Produce json
// @Param module_id path string true "Module ID"
// @Param progress body dto.ProgressSaveRequest true "Progress snapshot"
// @Security BearerAuth
// @Success 200 {object} dto.DataResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /modules/{module_id}/progress [put]
func (c *ModuleController) SaveProgress(ctx *gin.Context) {
	moduleID := ctx.Param("module_id")

	var req dto.ProgressSaveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing required fields", Details: err.Error()})
		return
	}
	if !middleware.AuthorizeUser(ctx, req.UserID) {
		return
	}

	progress := &model.UserProgress{
		UserID:               req.UserID,
		ModuleID:             moduleID,
		CompletionPercentage: req.CompletionPercentage,
		TotalQuestions:       req.TotalQuestions,
		CorrectAnswers:       req.CorrectAnswers,
		AverageScore:         req.AverageScore,
	}
	saved, err := c.progressService.SaveDirect(progress)
	if err != nil {
		log.Error().Err(err).Str("module_id", moduleID).Msg("SaveProgress: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to save progress", Details: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Data: saved})
}

// GetAnswers godoc
// @Summary List the user's answers for a module
// @Tags Modules
// @Produce json
// @Param module_id path string true "Module ID"
// @Param userId query string true "User ID (must match session)"
// @Security BearerAuth
// @Success 200 {object} dto.DataResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /modules/{module_id}/answers [get]
func (c *ModuleController) GetAnswers(ctx *gin.Context) {
	moduleID := ctx.Param("module_id")
	userID := ctx.Query("userId")
	if userID == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "User ID required"})
		return
	}
	if !middleware.AuthorizeUser(ctx, userID) {
		return
	}

	answers, err := c.submissionService.AnswersForModule(userID, moduleID)
	if err != nil {
		log.Error().Err(err).Str("module_id", moduleID).Msg("GetAnswers: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch answers", Details: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Data: answers})
}
