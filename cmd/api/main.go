package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"staybook/internal/config"
	"staybook/internal/database"
	"staybook/internal/domain"
	"staybook/internal/logging"
	"staybook/internal/metrics"
	"staybook/internal/middleware"
	"staybook/internal/modules/auth"
	"staybook/internal/modules/booking"
	"staybook/internal/modules/catalog"
	"staybook/internal/modules/owner"
	"staybook/internal/modules/search"
	"staybook/internal/notification"
	jwtsvc "staybook/internal/pkg/jwt"
	"staybook/internal/repository"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			configPath = "config.yaml"
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.Logging, cfg.App)
	metrics.Register()

	db, err := database.Connect(cfg.Database.DSN, logger)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.Auth.JWTSecret, cfg.App.Name, cfg.Auth.TokenTTL())
	notifs := notification.NewLogNotifier(logger)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	bookingService := booking.NewService(bookingRepo, roomRepo, hotelRepo, userRepo, notifs)
	bookingHandler := booking.NewHandler(bookingService)

	searchService := search.NewService(
		bookingRepo,
		roomRepo,
		cfg.Booking.InventoryPerRoom,
		cfg.Booking.SuggestionHorizonDays,
		cfg.Booking.SuggestionLimit,
	)
	searchHandler := search.NewHandler(searchService)

	catalogService := catalog.NewService(hotelRepo, roomRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	ownerService := owner.NewService(bookingRepo, hotelRepo, cfg.Exports.Path)
	ownerHandler := owner.NewHandler(ownerService)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.CORS(),
		middleware.RequestLogger(logger),
		middleware.RateLimit(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst),
	)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterRoutes(api)
		bookingHandler.RegisterPublicRoutes(api)
		catalogHandler.RegisterPublicRoutes(api)
		searchHandler.RegisterRoutes(api)

		// protected
		protected := api.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(protected)

			ownerOnly := protected.Group("/")
			ownerOnly.Use(middleware.RequireRole(string(domain.RoleHotelOwner), string(domain.RoleAdmin)))
			{
				catalogHandler.RegisterRoutes(ownerOnly)
				ownerHandler.RegisterRoutes(ownerOnly)
			}
		}
	}

	logger.Info().Int("port", cfg.Server.Port).Msg("starting api server")
	if err := r.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Fatal(err)
	}
}
