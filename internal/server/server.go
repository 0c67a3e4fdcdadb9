package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/chug2k/pickleball-booking/internal/booking"
	"github.com/chug2k/pickleball-booking/internal/cache"
	"github.com/chug2k/pickleball-booking/internal/config"
	"github.com/chug2k/pickleball-booking/internal/court"
	"github.com/chug2k/pickleball-booking/internal/email"
	"github.com/chug2k/pickleball-booking/internal/web"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
}

func New(db *sqlx.DB, cfg *config.Config, courtCache *cache.Cache, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	courtRepo := court.NewRepository(db)
	courtService := court.NewService(courtRepo, courtCache, cfg.CourtCacheTTL)
	courtHandler := court.NewHandler(courtService)

	bookingRepo := booking.NewRepository(db)
	var sender booking.ConfirmationSender
	if emailService != nil {
		sender = emailService
	}
	bookingService := booking.NewService(bookingRepo, courtRepo, sender)
	bookingHandler := booking.NewHandler(bookingService)

	apiGroup := router.Group("/api")
	apiGroup.Use(RateLimitMiddleware(10, 20))
	{
		apiGroup.GET("/courts", courtHandler.ListCourts)
		apiGroup.GET("/courts/:courtID/slots", courtHandler.ListTimeSlots)
		apiGroup.POST("/bookings", bookingHandler.CreateBooking)
		apiGroup.GET("/bookings", bookingHandler.ListBookings)
	}

	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/static", "./web/static")

	pages := web.NewHandler(courtService)
	pages.Register(router)

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{router: router}
}

func (s *Server) Start(port string) error {
	s.srv = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
