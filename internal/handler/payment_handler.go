package handler

import (
	"net/http"

	"github.com/TauhidOSD/yoga-master-server/internal/model"
	"github.com/TauhidOSD/yoga-master-server/internal/response"
	"github.com/TauhidOSD/yoga-master-server/internal/service"
	"github.com/TauhidOSD/yoga-master-server/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PaymentHandler handles payment intents, checkout and payment history.
type PaymentHandler struct {
	paymentService  *service.PaymentService
	checkoutService *service.CheckoutService
	log             zerolog.Logger
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService *service.PaymentService, checkoutService *service.CheckoutService, log zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService:  paymentService,
		checkoutService: checkoutService,
		log:             log.With().Str("component", "payment_handler").Logger(),
	}
}

// CreatePaymentIntent godoc
// POST /create-payment-intent
// Opens a card payment intent and returns its client secret.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req model.PaymentIntentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		failValidation(c, fields)
		return
	}

	intent, err := h.paymentService.CreateIntent(c.Request.Context(), &req)
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
}

// PaymentInfo godoc
// POST /payment-info?classId=
// Records a confirmed payment and enrolls the user. classId marks a direct
// single-class purchase.
func (h *PaymentHandler) PaymentInfo(c *gin.Context) {
	var req model.PaymentInfoRequest
	if fields := validator.Bind(c, &req); fields != nil {
		failValidation(c, fields)
		return
	}
	if !requireCaller(c, req.UserEmail) {
		return
	}

	result, err := h.checkoutService.Checkout(c.Request.Context(), &req, c.Query("classId"))
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// PaymentHistory godoc
// GET /payment-history/:email
// Lists a user's payments, newest first.
func (h *PaymentHandler) PaymentHistory(c *gin.Context) {
	payments, err := h.paymentService.History(c.Request.Context(), c.Param("email"))
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.List(c, payments)
}

// PaymentHistoryLength godoc
// GET /payment-history-length/:email
func (h *PaymentHandler) PaymentHistoryLength(c *gin.Context) {
	n, err := h.paymentService.HistoryCount(c.Request.Context(), c.Param("email"))
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": n})
}
