package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sportivaid/arena-booking/internal/audit"
	"github.com/sportivaid/arena-booking/internal/cache"
	"github.com/sportivaid/arena-booking/internal/chat"
	"github.com/sportivaid/arena-booking/internal/config"
	"github.com/sportivaid/arena-booking/internal/handlers"
	"github.com/sportivaid/arena-booking/internal/infra/repository"
	"github.com/sportivaid/arena-booking/internal/media"
	"github.com/sportivaid/arena-booking/internal/middleware"
	"github.com/sportivaid/arena-booking/internal/queue"
	bookingUC "github.com/sportivaid/arena-booking/internal/usecase/booking"
	paymentUC "github.com/sportivaid/arena-booking/internal/usecase/payment"
)

// RegisterRoutes wires repositories, use cases and handlers onto the
// router. Redis, RabbitMQ and S3 are optional; their components accept
// nil and degrade to direct paths.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// ======================================================
	// INFRA
	// ======================================================

	auditDispatcher := audit.NewDispatcher(audit.New(db))
	slotCache := cache.NewSlotCache(cache.NewRedisClient(cfg))
	publisher := queue.NewPublisher(cfg.AMQPUrl)
	uploader := media.NewUploader(cfg)

	bookingRepo := repository.NewBookingGormRepository(db)
	pemasukanRepo := repository.NewPemasukanGormRepository(db)
	chatRepo := repository.NewChatGormRepository(db)

	// ======================================================
	// USE CASES
	// ======================================================

	availabilityUC := bookingUC.NewGetAvailability(bookingRepo, slotCache)
	createBookingUC := bookingUC.NewCreateBooking(bookingRepo, auditDispatcher, publisher, slotCache)
	confirmBookingUC := bookingUC.NewConfirmBooking(bookingRepo, auditDispatcher)
	cancelBookingUC := bookingUC.NewCancelBooking(bookingRepo, auditDispatcher, slotCache)
	completeBookingUC := bookingUC.NewCompleteBooking(bookingRepo, auditDispatcher)
	finalizeSaleUC := paymentUC.NewFinalizeSale(pemasukanRepo, auditDispatcher, publisher)

	chatEngine := chat.NewEngine(chatRepo, availabilityUC)

	// ======================================================
	// HANDLERS
	// ======================================================

	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	sportHandler := handlers.NewSportHandler(db)
	fieldHandler := handlers.NewFieldHandler(db, uploader)
	bookingHandler := handlers.NewBookingHandler(
		db,
		availabilityUC,
		createBookingUC,
		confirmBookingUC,
		cancelBookingUC,
		completeBookingUC,
	)
	chatHandler := handlers.NewChatHandler(chatEngine)
	pemasukanHandler := handlers.NewPemasukanHandler(db, finalizeSaleUC)
	productHandler := handlers.NewProductHandler(db)
	customerHandler := handlers.NewCustomerHandler(db)
	venueHandler := handlers.NewVenueHandler(db)
	promptHandler := handlers.NewSystemPromptHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// PUBLIC
	// ======================================================

	api := r.Group("/api")

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	api.GET("/sports", sportHandler.List)
	api.GET("/fields", fieldHandler.List)
	api.GET("/fields/:id", fieldHandler.Get)

	api.GET("/booking/check-availability", bookingHandler.CheckAvailability)
	api.POST("/booking", bookingHandler.Create)

	api.POST("/ai-chat", chatHandler.Chat)

	// ======================================================
	// AUTHENTICATED
	// ======================================================

	secured := api.Group("")
	secured.Use(middleware.AuthMiddleware(cfg))

	secured.GET("/me", meHandler.GetMe)

	staff := secured.Group("")
	staff.Use(middleware.RequireRoles("owner", "admin", "cashier"))

	staff.GET("/bookings", bookingHandler.ListByDate)
	staff.GET("/bookings/month", bookingHandler.ListByMonth)
	staff.GET("/bookings/:id", bookingHandler.Get)
	staff.PATCH("/bookings/:id/confirm", bookingHandler.Confirm)
	staff.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
	staff.PATCH("/bookings/:id/complete", bookingHandler.Complete)

	staff.POST("/pemasukan", pemasukanHandler.Create)
	staff.GET("/pemasukan", pemasukanHandler.List)

	staff.GET("/products", productHandler.List)
	staff.GET("/customers", customerHandler.List)
	staff.GET("/dashboard/stats", dashboardHandler.Stats)

	admin := secured.Group("")
	admin.Use(middleware.RequireRoles("owner", "admin"))

	admin.POST("/sports", sportHandler.Create)
	admin.PUT("/sports/:id", sportHandler.Update)
	admin.DELETE("/sports/:id", sportHandler.Delete)

	admin.POST("/fields", fieldHandler.Create)
	admin.PUT("/fields/:id", fieldHandler.Update)
	admin.DELETE("/fields/:id", fieldHandler.Delete)
	admin.POST("/fields/:id/images", fieldHandler.UploadImage)
	admin.DELETE("/fields/:id/images", fieldHandler.DeleteImage)

	admin.POST("/products", productHandler.Create)
	admin.PUT("/products/:id", productHandler.Update)
	admin.DELETE("/products/:id", productHandler.Delete)

	admin.GET("/venue", venueHandler.Get)
	admin.PUT("/venue", venueHandler.Update)

	admin.GET("/system-prompts", promptHandler.List)
	admin.POST("/system-prompts", promptHandler.Create)
	admin.PUT("/system-prompts/:id", promptHandler.Update)
	admin.PATCH("/system-prompts/:id/activate", promptHandler.Activate)
	admin.DELETE("/system-prompts/:id", promptHandler.Delete)

	owner := secured.Group("")
	owner.Use(middleware.RequireRoles("owner"))

	owner.GET("/audit-logs", auditLogsHandler.List)
}
