package handler

import (
	"net/http"

	"github.com/TauhidOSD/yoga-master-server/internal/response"
	"github.com/TauhidOSD/yoga-master-server/internal/service"
	"github.com/TauhidOSD/yoga-master-server/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthHandler handles token issuance.
type AuthHandler struct {
	authService *service.AuthService
	log         zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		log:         log.With().Str("component", "auth_handler").Logger(),
	}
}

// SetTokenRequest is the identity a token is issued for.
type SetTokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"omitempty,max=100"`
}

// SetToken godoc
// POST /api/set-token
// Issues a bearer token for the given identity.
func (h *AuthHandler) SetToken(c *gin.Context) {
	var req SetTokenRequest
	if fields := validator.Bind(c, &req); fields != nil {
		failValidation(c, fields)
		return
	}

	token, err := h.authService.IssueToken(req.Email, req.Name)
	if err != nil {
		failWith(c, h.log, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": token})
}
