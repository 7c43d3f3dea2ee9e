package main

import (
	"log"
	"time"

	"hotelier/internal/config"
	"hotelier/internal/database"
	"hotelier/internal/logger"
	"hotelier/internal/middleware"
	"hotelier/internal/modules/auth"
	"hotelier/internal/modules/booking"
	"hotelier/internal/modules/catalog"
	"hotelier/internal/modules/invoice"
	jwtsvc "hotelier/internal/pkg/jwt"
	"hotelier/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl := logger.New(cfg.Environment)
	defer zl.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zl.Fatal("database connection failed", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	roomTypeRepo := repository.NewRoomTypeRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, 24*time.Hour)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(roomRepo, roomTypeRepo, propertyRepo, serviceRepo, cfg.DefaultPerPage)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, roomRepo, booking.Config{
		UnitHours:      cfg.BookingUnitHours,
		CleaningBuffer: time.Duration(cfg.CleaningBufferMinutes) * time.Minute,
		DefaultPerPage: cfg.DefaultPerPage,
	})
	bookingHandler := booking.NewHandler(bookingService)

	invoiceService := invoice.NewService(bookingRepo, invoiceRepo, serviceRepo)
	invoiceHandler := invoice.NewHandler(invoiceService)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(zl))
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)

		// authenticated guests and staff
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterGuestRoutes(protected)
		}

		// staff only
		admin := v1.Group("/admin")
		admin.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			authHandler.RegisterAdminRoutes(admin)
			catalogHandler.RegisterAdminRoutes(admin)
			bookingHandler.RegisterAdminRoutes(admin)
			invoiceHandler.RegisterAdminRoutes(admin)
		}
	}

	zl.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
