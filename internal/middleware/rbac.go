package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/TauhidOSD/yoga-master-server/internal/model"
	"github.com/TauhidOSD/yoga-master-server/internal/repository"
	"github.com/TauhidOSD/yoga-master-server/internal/response"
	"github.com/TauhidOSD/yoga-master-server/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Authorizer decides whether an identity holds a role.
type Authorizer interface {
	Authorize(ctx context.Context, email string, required model.Role) error
}

// RequireRole lets the request through only when the caller's stored role
// equals role. It must run after RequireJWT.
func RequireRole(access Authorizer, role model.Role, log zerolog.Logger) gin.HandlerFunc {
	log = log.With().Str("component", "role_gate").Str("required_role", string(role)).Logger()
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		err := access.Authorize(c.Request.Context(), claims.Email, role)
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, service.ErrSubjectNotFound):
			log.Warn().Str("email", claims.Email).Str("reason", "subject_not_found").Msg("access denied")
			response.AbortFail(c, http.StatusForbidden, response.ErrForbidden)
		case errors.Is(err, service.ErrForbidden):
			log.Warn().Err(err).Str("email", claims.Email).Str("reason", "role_mismatch").Msg("access denied")
			response.AbortFail(c, http.StatusForbidden, response.ErrForbidden)
		case errors.Is(err, repository.ErrStoreUnavailable):
			log.Error().Err(err).Msg("role lookup failed")
			response.AbortFail(c, http.StatusServiceUnavailable, response.ErrStoreUnavailable)
		default:
			log.Error().Err(err).Msg("role lookup failed")
			response.AbortFail(c, http.StatusInternalServerError, response.ErrInternal)
		}
	}
}
