package handler

import (
	"errors"
	"net/http"

	"github.com/TauhidOSD/yoga-master-server/internal/model"
	"github.com/TauhidOSD/yoga-master-server/internal/repository"
	"github.com/TauhidOSD/yoga-master-server/internal/response"
	"github.com/TauhidOSD/yoga-master-server/internal/service"
	"github.com/TauhidOSD/yoga-master-server/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CartHandler handles the shopping cart.
type CartHandler struct {
	cartService *service.CartService
	log         zerolog.Logger
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *service.CartService, log zerolog.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		log:         log.With().Str("component", "cart_handler").Logger(),
	}
}

// AddToCart godoc
// POST /add-to-cart
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req model.AddToCartRequest
	if fields := validator.Bind(c, &req); fields != nil {
		failValidation(c, fields)
		return
	}
	if !requireCaller(c, req.UserMail) {
		return
	}

	ack, err := h.cartService.Add(c.Request.Context(), &req)
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.Success(c, http.StatusCreated, ack)
}

// GetCartItem godoc
// GET /cart-item/:id?email=
// Reports whether a class is in the user's cart. data is null when it is not.
func (h *CartHandler) GetCartItem(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		failValidation(c, map[string]string{"email": "email is a required query parameter"})
		return
	}

	item, err := h.cartService.Item(c.Request.Context(), c.Param("id"), email)
	if errors.Is(err, repository.ErrNotFound) {
		response.Success(c, http.StatusOK, nil)
		return
	}
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

// GetCart godoc
// GET /cart/:email
// Lists the classes in a user's cart.
func (h *CartHandler) GetCart(c *gin.Context) {
	classes, err := h.cartService.Classes(c.Request.Context(), c.Param("email"))
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.List(c, classes)
}

// DeleteCartItem godoc
// DELETE /delete-cart-item/:id
// Removes one of the caller's cart entries for the class id.
func (h *CartHandler) DeleteCartItem(c *gin.Context) {
	ack, err := h.cartService.Remove(c.Request.Context(), c.Param("id"), callerEmail(c))
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, ack)
}
