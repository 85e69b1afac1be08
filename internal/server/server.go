package server

import (
	"context"
	"net/http"

	"fitstudio/internal/booking"
	"fitstudio/internal/class"
	"fitstudio/internal/config"
	"fitstudio/internal/email"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())

	classRepo := class.NewRepository(db)
	classService := class.NewService(classRepo)
	classHandler := class.NewHandler(classService)

	bookingRepo := booking.NewRepository(db)
	bookingService := booking.NewService(bookingRepo, classRepo, emailService)
	bookingHandler := booking.NewHandler(bookingService)

	public := router.Group("/")
	public.Use(RateLimitMiddleware(10, 20))
	{
		public.GET("/classes/", classHandler.ListClasses)
		public.POST("/book/", bookingHandler.BookClass)
		public.GET("/bookings/", bookingHandler.ListBookings)
	}

	admin := router.Group("/admin")
	{
		admin.POST("/classes", classHandler.CreateClass)
		admin.GET("/classes/:classID/bookings", bookingHandler.ClassStats)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
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
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
