package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/vesto-learn/vesto-api/internal/dto"
	"github.com/vesto-learn/vesto-api/internal/service"
	"gorm.io/gorm"
)

type CompanyController struct {
	companyService service.CompanyService
}

func NewCompanyController(companyService service.CompanyService) *CompanyController {
	return &CompanyController{companyService: companyService}
}

// ListCompanies godoc
// @Summary List all companies
// @Description Get the company universe available for lessons and the simulator, ordered by symbol.
// @Tags Companies
// @Produce json
// @Success 200 {object} dto.DataResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies [get]
func (c *CompanyController) ListCompanies(ctx *gin.Context) {
	companies, err := c.companyService.ListCompanies()
	if err != nil {
		log.Error().Err(err).Msg("ListCompanies: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch companies", Details: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Data: companies})
}

// GetCompany godoc
// @Summary Get one company with enrichment data
// @Description Company row plus fundamentals, latest quote and 10-K narrative. Enrichment pieces that cannot be fetched are returned as null rather than failing the request.
// @Tags Companies
// @Produce json
// @Param symbol path string true "Ticker symbol"
// @Success 200 {object} dto.DataResponse
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{symbol} [get]
func (c *CompanyController) GetCompany(ctx *gin.Context) {
	symbol := ctx.Param("symbol")

	overview, err := c.companyService.GetOverview(symbol)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Company not found", Details: symbol})
			return
		}
		log.Error().Err(err).Str("symbol", symbol).Msg("GetCompany: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch company data", Details: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Data: overview})
}
