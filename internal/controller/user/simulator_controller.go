package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/vesto-learn/vesto-api/internal/dto"
	"github.com/vesto-learn/vesto-api/internal/middleware"
	"github.com/vesto-learn/vesto-api/internal/service"
	"gorm.io/gorm"
)

type SimulatorController struct {
	pitchService service.PitchService
}

func NewSimulatorController(pitchService service.PitchService) *SimulatorController {
	return &SimulatorController{pitchService: pitchService}
}

// SubmitPitch godoc
// @Summary Submit an investment pitch for review
// @Description The pitch is reviewed against stored company data and persisted with its verdict. Review problems never surface as errors; they produce a rejection the user can retry.
// @Tags Simulator
// @Accept json
// @Produce json
// @Param pitch body dto.PitchSubmitRequest true "Pitch submission"
// @Success 200 {object} dto.DataResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown symbol"
// @Failure 500 {object} dto.ErrorResponse
// @Router /simulator/pitch [post]
func (c *SimulatorController) SubmitPitch(ctx *gin.Context) {
	var req dto.PitchSubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing required fields", Details: err.Error()})
		return
	}

	outcome, err := c.pitchService.SubmitPitch(ctx.Request.Context(), req.UserID, req.Symbol, req.CompanyName, req.PitchText)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Company not found", Details: req.Symbol})
			return
		}
		log.Error().Err(err).Str("symbol", req.Symbol).Msg("SubmitPitch: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to submit pitch", Details: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Data: outcome})
}

// GetPitches godoc
// @Summary List the user's pitch submissions with stats
// @Tags Simulator
// @Produce json
// @Param userId query string true "User ID (must match session)"
// @Security BearerAuth
// @Success 200 {object} dto.DataResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /simulator/pitches [get]
func (c *SimulatorController) GetPitches(ctx *gin.Context) {
	userID := ctx.Query("userId")
	if userID == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "User ID required"})
		return
	}
	if !middleware.AuthorizeUser(ctx, userID) {
		return
	}

	pitches, stats, err := c.pitchService.PitchHistory(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("GetPitches: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch pitches", Details: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Data: dto.PitchHistoryResponse{Pitches: pitches, Stats: stats}})
}

// Invest godoc
// @Summary Execute the investment for an approved pitch
// @Description Buys at the latest stored quote and records the execution on the pitch. Only the pitch owner can invest, only once, and only on an approved pitch.
// @Tags Simulator
// @Accept json
// @Produce json
// @Param pitch_id path int true "Pitch ID"
// @Param order body dto.InvestRequest true "Investment order"
// @Security BearerAuth
// @Success 200 {object} dto.DataResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Pitch belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Pitch not found"
// @Failure 409 {object} dto.ErrorResponse "Not approved or already invested"
// @Failure 422 {object} dto.ErrorResponse "No quote available"
// @Failure 500 {object} dto.ErrorResponse
// @Router /simulator/pitch/{pitch_id}/invest [post]
func (c *SimulatorController) Invest(ctx *gin.Context) {
	pitchID, err := strconv.ParseUint(ctx.Param("pitch_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid pitch ID"})
		return
	}

	var req dto.InvestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing required fields", Details: err.Error()})
		return
	}
	if !middleware.AuthorizeUser(ctx, req.UserID) {
		return
	}

	pitch, holding, err := c.pitchService.Invest(req.UserID, uint(pitchID), req.Shares)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Pitch not found"})
		case errors.Is(err, service.ErrPitchNotOwned):
			ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Forbidden", Details: "Pitch belongs to a different user"})
		case errors.Is(err, service.ErrPitchNotApproved):
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Pitch is not approved for investment"})
		case errors.Is(err, service.ErrAlreadyInvested):
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Investment already recorded for this pitch"})
		case errors.Is(err, service.ErrNoQuoteAvailable):
			ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "No quote available for symbol"})
		default:
			log.Error().Err(err).Uint64("pitch_id", pitchID).Msg("Invest: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to execute investment", Details: err.Error()})
		}
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Data: dto.InvestResponse{Pitch: pitch, Holding: holding}})
}
