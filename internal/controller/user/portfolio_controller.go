package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/vesto-learn/vesto-api/internal/dto"
	"github.com/vesto-learn/vesto-api/internal/middleware"
	"github.com/vesto-learn/vesto-api/internal/service"
)

type PortfolioController struct {
	portfolioService service.PortfolioService
}

func NewPortfolioController(portfolioService service.PortfolioService) *PortfolioController {
	return &PortfolioController{portfolioService: portfolioService}
}

// GetPortfolio godoc
// @Summary List the user's holdings
// @Description Holdings are revalued against the latest stored quote where one exists.
// @Tags Portfolio
// @Produce json
// @Param userId query string true "User ID (must match session)"
// @Security BearerAuth
// @Success 200 {object} dto.DataResponse
// @Failure 400 {object} dto.ErrorResponse "Missing userId"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /portfolio [get]
func (c *PortfolioController) GetPortfolio(ctx *gin.Context) {
	userID := ctx.Query("userId")
	if userID == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "User ID required"})
		return
	}
	if !middleware.AuthorizeUser(ctx, userID) {
		return
	}

	holdings, err := c.portfolioService.GetPortfolio(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("GetPortfolio: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch portfolio", Details: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Data: holdings})
}

// AddHolding godoc
// @Summary Buy a stock (upsert the holding)
// @Description Buying a symbol the user already holds replaces the position outright.
// @Tags Portfolio
// @Accept json
// @Produce json
// @Param holding body dto.PortfolioAddRequest true "Buy order"
// @Security BearerAuth
// @Success 200 {object} dto.DataResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /portfolio [post]
func (c *PortfolioController) AddHolding(ctx *gin.Context) {
	var req dto.PortfolioAddRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing required fields", Details: err.Error()})
		return
	}
	if !middleware.AuthorizeUser(ctx, req.UserID) {
		return
	}

	holding, err := c.portfolioService.BuyStock(req.UserID, req.Symbol, req.CompanyName, req.Shares, req.BuyPrice)
	if err != nil {
		log.Error().Err(err).Str("user_id", req.UserID).Str("symbol", req.Symbol).Msg("AddHolding: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to add to portfolio", Details: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Data: holding})
}
