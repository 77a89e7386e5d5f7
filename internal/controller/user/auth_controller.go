package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/vesto-learn/vesto-api/internal/dto"
	"github.com/vesto-learn/vesto-api/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Signup godoc
// @Summary Create an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body dto.SignupRequest true "New account"
// @Success 201 {object} dto.DataResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing required fields", Details: err.Error()})
		return
	}

	user, token, err := c.authService.Signup(req.Email, req.Password, req.FullName)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Email is already registered"})
			return
		}
		log.Error().Err(err).Msg("Signup: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create account", Details: err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, dto.DataResponse{Data: dto.AuthResponse{
		User:  dto.UserResponse{ID: user.ID, Email: user.Email, FullName: user.FullName},
		Token: token,
	}})
}

// Login godoc
// @Summary Log in and receive a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.DataResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid email or password"
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing required fields", Details: err.Error()})
		return
	}

	user, token, err := c.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid email or password"})
			return
		}
		log.Error().Err(err).Msg("Login: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to log in", Details: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: dto.AuthResponse{
		User:  dto.UserResponse{ID: user.ID, Email: user.Email, FullName: user.FullName},
		Token: token,
	}})
}
