package router

import (
	"time"

	"github.com/TauhidOSD/yoga-master-server/internal/config"
	"github.com/TauhidOSD/yoga-master-server/internal/handler"
	"github.com/TauhidOSD/yoga-master-server/internal/logger"
	"github.com/TauhidOSD/yoga-master-server/internal/middleware"
	"github.com/TauhidOSD/yoga-master-server/internal/model"
	"github.com/TauhidOSD/yoga-master-server/internal/response"
	"github.com/TauhidOSD/yoga-master-server/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// listingMaxAge is the browser cache lifetime of public listings.
const listingMaxAge = 60

// Rate limit scopes.
const (
	scopeToken   = "token"
	scopePayment = "payment_intent"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Class      *handler.ClassHandler
	Cart       *handler.CartHandler
	Payment    *handler.PaymentHandler
	Enrollment *handler.EnrollmentHandler
	Health     *handler.HealthHandler
}

// Guards holds the services the route middlewares depend on.
type Guards struct {
	Auth        *service.AuthService
	Access      middleware.Authorizer
	RateLimiter *middleware.RateLimiter
}

// SetupRouter configures all Gin routes with their guards.
func SetupRouter(guards *Guards, handlers *Handlers, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", response.HeaderRequestID}
	corsConfig.ExposeHeaders = []string{response.HeaderRequestID, "Retry-After"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(logger.GinMiddleware(log))
	router.Use(middleware.Brotli())

	h := handlers
	auth := middleware.RequireJWT(guards.Auth)
	role := func(r model.Role) gin.HandlerFunc {
		return middleware.RequireRole(guards.Access, r, log)
	}
	admin := []gin.HandlerFunc{auth, role(model.RoleAdmin)}
	instructor := []gin.HandlerFunc{auth, role(model.RoleInstructor)}
	listing := middleware.CacheControl(listingMaxAge)

	router.GET("/", h.Health.Root)
	router.GET("/health", h.Health.Health)

	// ─── Tokens ────────────────────────────────────────────────────────
	router.POST("/api/set-token", guards.RateLimiter.Middleware(scopeToken), h.Auth.SetToken)

	// ─── Users ─────────────────────────────────────────────────────────
	router.POST("/new-user", h.User.CreateUser)
	router.GET("/users", h.User.ListUsers)
	router.GET("/users/:id", h.User.GetUser)
	router.GET("/instructor", h.User.ListInstructors)
	router.GET("/user/:email", auth, h.User.GetUserByEmail)
	router.PUT("/update-user/:id", append(admin, h.User.UpdateUser)...)
	router.DELETE("/delete-user/:id", append(admin, h.User.DeleteUser)...)

	// ─── Classes ───────────────────────────────────────────────────────
	router.GET("/classes", h.Class.ListApproved)
	router.GET("/approved-classes", listing, h.Class.ListApproved)
	router.GET("/classes-manage", h.Class.ListAll)
	router.GET("/class/:id", h.Class.GetClass)
	router.GET("/popular-classes", listing, h.Class.PopularClasses)
	router.GET("/popular-instructor", listing, h.Class.PopularInstructors)
	router.POST("/new-class", append(instructor, h.Class.CreateClass)...)
	router.GET("/classes/:email", append(instructor, h.Class.ListByInstructor)...)
	router.PUT("/update-class/:id", append(instructor, h.Class.UpdateClass)...)
	router.PATCH("/change-status/:id", append(admin, h.Class.ChangeStatus)...)

	// ─── Cart ──────────────────────────────────────────────────────────
	cart := router.Group("/", auth, middleware.NoStore())
	{
		cart.POST("/add-to-cart", h.Cart.AddToCart)
		cart.GET("/cart-item/:id", h.Cart.GetCartItem)
		cart.GET("/cart/:email", h.Cart.GetCart)
		cart.DELETE("/delete-cart-item/:id", h.Cart.DeleteCartItem)
	}

	// ─── Payments ──────────────────────────────────────────────────────
	router.POST("/create-payment-intent", guards.RateLimiter.Middleware(scopePayment), h.Payment.CreatePaymentIntent)
	router.POST("/payment-info", auth, h.Payment.PaymentInfo)
	router.GET("/payment-history/:email", h.Payment.PaymentHistory)
	router.GET("/payment-history-length/:email", h.Payment.PaymentHistoryLength)

	// ─── Enrollment & applications ─────────────────────────────────────
	router.GET("/enrolled-class/:email", auth, middleware.NoStore(), h.Enrollment.EnrolledClasses)
	router.POST("/ass-instructor", h.Enrollment.ApplyInstructor)
	router.GET("/applied-instructor/:email", h.Enrollment.AppliedInstructor)
	router.GET("/admin-status", append(admin, h.Enrollment.AdminStatus)...)

	return router
}
