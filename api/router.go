package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/skyfare/flightbooking/config"
	"github.com/skyfare/flightbooking/internal/service/auth"
	"github.com/skyfare/flightbooking/internal/service/booking"
	"github.com/skyfare/flightbooking/internal/service/chat"
	"github.com/skyfare/flightbooking/internal/service/flights"
	"github.com/skyfare/flightbooking/internal/validate"
)

var airportCodeValidator validator.Func = func(fl validator.FieldLevel) bool {
	return validate.IsValidAirportCode(fl.Field().String())
}

// NewRouter builds the gin engine. /health sits outside CORS and rate
// limiting; everything else lives under /api.
func NewRouter(
	cfg config.HTTPConfig,
	authSvc auth.AuthUseCase,
	flightSvc flights.FlightUseCase,
	bookingSvc booking.BookingUseCase,
	chatSvc chat.ChatUseCase,
	limiter RateLimiter,
) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("airport", airportCodeValidator)
	}

	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	router.Use(SecurityHeadersMiddleware())

	cc := cors.DefaultConfig()
	cc.AllowOrigins = []string{cfg.FrontendOrigin}
	cc.AllowHeaders = append(cc.AllowHeaders, "Authorization")
	router.Use(cors.New(cc))

	if limiter != nil {
		perMinute := cfg.RateLimitPerMinute
		if perMinute == 0 {
			perMinute = 120
		}
		router.Use(RateLimitMiddleware(limiter, perMinute))
	}

	apiGroup := router.Group("/api")

	NewAuthHandler(authSvc).Register(apiGroup.Group("/auth"))
	NewFlightHandler(flightSvc).Register(apiGroup.Group("/flights"))
	NewChatHandler(chatSvc).Register(apiGroup.Group("/chat"))

	bookings := apiGroup.Group("/bookings")
	bookings.Use(AuthMiddleware(authSvc))
	NewBookingHandler(bookingSvc).Register(bookings)

	return router
}
