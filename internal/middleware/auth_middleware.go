package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/vesto-learn/vesto-api/internal/dto"
	"github.com/vesto-learn/vesto-api/internal/service"
)

const sessionUserKey = "session_user_id"

// RequireSession validates the Bearer token and stores the session identity
// on the context. Missing or invalid credentials are a 401; the 403 identity
// check happens in handlers, against the payload.
func RequireSession(authService service.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   "Unauthorized",
				Details: "Please log in to continue",
			})
			return
		}

		claims, err := authService.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Session token rejected")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   "Unauthorized",
				Details: "Session is invalid or expired",
			})
			return
		}

		ctx.Set(sessionUserKey, claims.Subject)
		ctx.Next()
	}
}

// SessionUserID returns the authenticated identity set by RequireSession.
func SessionUserID(ctx *gin.Context) string {
	return ctx.GetString(sessionUserKey)
}

// AuthorizeUser enforces the ownership gate on user-scoped operations: the
// session identity must equal the user ID named by the request. A mismatch is
// a 403, distinct from the 401 for no session at all.
func AuthorizeUser(ctx *gin.Context, payloadUserID string) bool {
	sessionID := SessionUserID(ctx)
	if sessionID == "" || sessionID != payloadUserID {
		ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
			Error:   "Forbidden",
			Details: "User ID mismatch",
		})
		return false
	}
	return true
}
