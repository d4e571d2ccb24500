package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"innkeeper/internal/cache"
	"innkeeper/internal/config"
	"innkeeper/internal/database"
	"innkeeper/internal/external"
	"innkeeper/internal/handlers"
	"innkeeper/internal/logger"
	"innkeeper/internal/messaging"
	"innkeeper/internal/middleware"
	"innkeeper/internal/repository"
	"innkeeper/internal/search"
	"innkeeper/internal/service"
)

// Server wires the HTTP API together
type Server struct {
	router   *gin.Engine
	config   *config.Config
	db       *database.DB
	nats     *messaging.Client
	cache    *cache.Client
	services *service.Services
	repos    *repository.Repositories
}

// NewServer connects every dependency and builds the route table. The
// cache and search backends are optional; everything else is fatal.
func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := db.RunMigrations(); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	natsClient, err := messaging.NewClient(cfg.NATS)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", "error", err)
	}

	cacheClient, err := cache.NewClient(cfg.Cache)
	if err != nil {
		logger.Get().Warn("Valkey unavailable, continuing without cache", "error", err)
		cacheClient = nil
	}

	searchClient, err := search.NewElasticsearchClient(cfg.Search)
	if err != nil {
		logger.Get().Warn("Elasticsearch unavailable, continuing without search", "error", err)
		searchClient = nil
	}

	location, err := time.LoadLocation(cfg.ReportTimezone)
	if err != nil {
		logger.Get().Warn("Invalid report timezone, using UTC", "timezone", cfg.ReportTimezone)
		location = time.UTC
	}

	paystackClient := external.NewPaystackClient(cfg.Paystack)
	repos := repository.NewRepositories(db)

	services := service.NewServices(service.Deps{
		Repos:          repos,
		NATS:           natsClient,
		Paystack:       paystackClient,
		Search:         searchClient,
		Cache:          cacheClient,
		CallbackURL:    cfg.Paystack.CallbackURL,
		ReportLocation: location,
	})

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())

	server := &Server{
		router:   router,
		config:   cfg,
		db:       db,
		nats:     natsClient,
		cache:    cacheClient,
		services: services,
		repos:    repos,
	}

	server.setupRoutes()

	return server
}

func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.services)

	api := s.router.Group("/api")
	api.Use(middleware.BasicAuth(s.repos.Users, s.cache))
	{
		bookings := api.Group("/booking")
		{
			bookings.POST("", h.CreateBooking)
			bookings.GET("", h.ListBookings)
			bookings.GET("/:id", h.GetBooking)
			bookings.PUT("/:id", h.UpdateBooking)
			bookings.DELETE("/:id", h.DeleteBooking)
			bookings.PATCH("/cancel", h.CancelBooking)
			bookings.PATCH("/checkin", h.CheckInBooking)
			bookings.PATCH("/checkout", h.CheckOutBooking)
			bookings.PATCH("/extend", h.ExtendStay)
		}

		rooms := api.Group("/room")
		{
			rooms.POST("", h.CreateRoom)
			rooms.GET("", h.ListRooms)
			rooms.GET("/board", h.RoomBoard)
			rooms.GET("/:id", h.GetRoom)
			rooms.PATCH("/:id/status", h.UpdateRoomStatus)
			rooms.DELETE("/:id", h.DeleteRoom)
		}

		roomTypes := api.Group("/roomType")
		{
			roomTypes.POST("", h.CreateRoomType)
			roomTypes.GET("", h.ListRoomTypes)
			roomTypes.GET("/:id", h.GetRoomType)
			roomTypes.PUT("/:id", h.UpdateRoomType)
			roomTypes.DELETE("/:id", h.DeleteRoomType)
		}

		tasks := api.Group("/task")
		{
			tasks.POST("", h.CreateTask)
			tasks.GET("", h.ListTasks)
			tasks.GET("/:id", h.GetTask)
			tasks.PATCH("/:id", h.UpdateTask)
			tasks.DELETE("/:id", h.DeleteTask)
			tasks.POST("/:id/issues", h.ReportTaskIssue)
		}

		maintenance := api.Group("/maintenance")
		{
			maintenance.POST("", h.CreateMaintenanceRequest)
			maintenance.GET("", h.ListMaintenanceRequests)
			maintenance.GET("/:id", h.GetMaintenanceRequest)
			maintenance.PATCH("/:id", h.UpdateMaintenanceRequest)
			maintenance.DELETE("/:id", h.DeleteMaintenanceRequest)
		}

		complaints := api.Group("/complaints")
		{
			complaints.POST("", h.CreateComplaint)
			complaints.GET("", h.ListComplaints)
			complaints.GET("/:id", h.GetComplaint)
			complaints.PUT("/:id", h.UpdateComplaint)
			complaints.DELETE("/:id", h.DeleteComplaint)
		}

		inventory := api.Group("/inventory")
		{
			inventory.POST("", h.CreateInventoryItem)
			inventory.GET("", h.ListInventory)
			inventory.GET("/:id", h.GetInventoryItem)
			inventory.PUT("/:id", h.UpdateInventoryItem)
			inventory.DELETE("/:id", h.DeleteInventoryItem)
		}

		invoices := api.Group("/invoice")
		{
			invoices.POST("", h.CreateInvoice)
			invoices.GET("", h.ListInvoices)
			invoices.GET("/:id", h.GetInvoice)
			invoices.PATCH("/:id/status", h.UpdateInvoiceStatus)
			invoices.DELETE("/:id", h.DeleteInvoice)
		}

		users := api.Group("/user")
		{
			users.POST("", h.CreateUser)
			users.GET("", h.ListUsers)
			users.GET("/:id", h.GetUser)
			users.PUT("/:id", h.UpdateUser)
			users.DELETE("/:id", h.DeactivateUser)
		}

		analytics := api.Group("/analytics")
		{
			analytics.GET("/bookings", h.BookingAnalytics)
		}
	}

	// Payment endpoints sit outside Basic Auth: the webhook is
	// authenticated by the gateway's signature, the landings by nothing
	s.router.POST("/api/payments/notifications", h.PaymentNotification)
	s.router.GET("/api/payments/success", h.PaymentSuccess)
	s.router.GET("/api/payments/fail", h.PaymentFail)

	s.router.GET("/health", s.healthCheck)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (s *Server) healthCheck(c *gin.Context) {
	// Logs pool pressure warnings alongside the liveness check
	s.db.ValidateConnectionPool()

	if check := s.db.HealthCheck(c.Request.Context()); check.Status != "healthy" {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"error":  "database unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "innkeeper-api",
	})
}

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	return s.router.Run(addr)
}

// GetRouter exposes the router for tests
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Cleanup closes the infrastructure connections
func (s *Server) Cleanup() error {
	if s.nats != nil {
		if err := s.nats.Close(); err != nil {
			logger.Get().Error("Error closing NATS connection", "error", err)
		}
	}

	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			logger.Get().Error("Error closing Valkey connection", "error", err)
		}
	}

	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
