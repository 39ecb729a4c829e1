package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/TauhidOSD/yoga-master-server/internal/middleware"
	"github.com/TauhidOSD/yoga-master-server/internal/payment"
	"github.com/TauhidOSD/yoga-master-server/internal/repository"
	"github.com/TauhidOSD/yoga-master-server/internal/response"
	"github.com/TauhidOSD/yoga-master-server/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// failWith maps a service or repository error onto the response envelope.
// Server-side failures are logged with the request id.
func failWith(c *gin.Context, log zerolog.Logger, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).
			Str("request_id", response.RequestID(c)).
			Str("path", c.FullPath()).
			Msg("request failed")
	}
	_ = c.Error(err)
	response.Fail(c, status, code)
}

func classify(err error) (int, response.ErrCode) {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		return http.StatusBadRequest, response.ErrInvalidID
	case errors.Is(err, service.ErrEmptyCheckout):
		return http.StatusBadRequest, response.ErrEmptyCheckout
	case errors.Is(err, service.ErrClassNotInOrder):
		return http.StatusBadRequest, response.ErrInvalidPayload
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, response.ErrNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return http.StatusConflict, response.ErrConflict
	case errors.Is(err, service.ErrSoldOut):
		return http.StatusConflict, response.ErrClassSoldOut
	case errors.Is(err, payment.ErrProvider):
		return http.StatusBadGateway, response.ErrPaymentProvider
	case errors.Is(err, repository.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, response.ErrStoreUnavailable
	default:
		return http.StatusInternalServerError, response.ErrInternal
	}
}

// callerEmail is the email of the signed-in caller, empty without claims.
func callerEmail(c *gin.Context) string {
	if claims := middleware.GetClaims(c); claims != nil {
		return claims.Email
	}
	return ""
}

// requireCaller rejects a payload that acts on another account.
func requireCaller(c *gin.Context, email string) bool {
	if caller := callerEmail(c); caller == "" || !strings.EqualFold(caller, email) {
		response.Fail(c, http.StatusForbidden, response.ErrForbidden)
		return false
	}
	return true
}

func failValidation(c *gin.Context, fields map[string]string) {
	response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
}
