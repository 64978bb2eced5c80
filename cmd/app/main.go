package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/marribaloch/Indian-food/cmd"
	httpserver "github.com/marribaloch/Indian-food/internal/adapters/in/http"
	"github.com/marribaloch/Indian-food/internal/adapters/out/postgres/menurepo"
	"github.com/marribaloch/Indian-food/internal/adapters/out/postgres/orderrepo"
	"github.com/marribaloch/Indian-food/internal/adapters/out/postgres/presencerepo"
	"github.com/marribaloch/Indian-food/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file found, using process environment")
	}

	config := getConfig()
	if config.AdminKey == "" {
		logger.Warn("ADMIN_KEY is empty, operator endpoints are unprotected")
	}

	db, err := openDatabase(config)
	if err != nil {
		logger.Error("Database connection failed", "error", err)
		os.Exit(1)
	}

	root, err := cmd.NewCompositionRoot(config, db, logger)
	if err != nil {
		logger.Error("Composition failed", "error", err)
		os.Exit(1)
	}

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Job startup failed", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	server := httpserver.NewServer(
		root.CreatePlaceOrderCommandHandler(),
		root.CreateSetOrderStatusCommandHandler(),
		root.CreateAcceptOrderCommandHandler(),
		root.CreateReportPresenceCommandHandler(),
		root.CreateDriverUpdateCommandHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateGetOrderStatusQueryHandler(),
		root.CreateListCustomerOrdersQueryHandler(),
		root.CreateListDispatchableOrdersQueryHandler(),
		config.AdminKey,
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}

func getConfig() cmd.Config {
	return cmd.Config{
		HTTPPort: envString("HTTP_PORT", "8080"),

		DBHost:     envString("DB_HOST", "localhost"),
		DBPort:     envString("DB_PORT", "5432"),
		DBUser:     envString("DB_USER", "postgres"),
		DBPassword: envString("DB_PASSWORD", ""),
		DBName:     envString("DB_NAME", "indianfood"),
		DBSslMode:  envString("DB_SSLMODE", "disable"),

		AdminKey: envString("ADMIN_KEY", ""),

		RestaurantLat: envFloat("RESTAURANT_LAT", 10.7769),
		RestaurantLng: envFloat("RESTAURANT_LNG", 106.7009),

		GoogleMapsAPIKey: envString("GOOGLE_MAPS_API_KEY", ""),

		PricingMode:       envString("PRICING_MODE", "flat"),
		FlatDeliveryFee:   envInt("FLAT_DELIVERY_FEE", 15000),
		BaseDeliveryFee:   envInt("BASE_DELIVERY_FEE", 10000),
		PerKmFee:          envFloat("PER_KM_FEE", 5000),
		PerMinFee:         envFloat("PER_MIN_FEE", 500),
		MinDeliveryFee:    envInt("MIN_DELIVERY_FEE", 0),
		MaxDeliveryFee:    envInt("MAX_DELIVERY_FEE", 0),
		ServiceFeePercent: envFloat("SERVICE_FEE_PERCENT", 0),

		SMTPHost:     envString("SMTP_HOST", ""),
		SMTPPort:     int(envInt("SMTP_PORT", 587)),
		SMTPUsername: envString("SMTP_USERNAME", ""),
		SMTPPassword: envString("SMTP_PASSWORD", ""),
		SMTPFrom:     envString("SMTP_FROM", ""),

		TelegramBotToken: envString("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:   envInt("TELEGRAM_CHAT_ID", 0),

		PresenceMaxAge: time.Duration(envInt("PRESENCE_MAX_AGE_MINUTES", 10)) * time.Minute,
	}
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&presencerepo.PresenceDTO{},
		&menurepo.MenuItemDTO{},
		&userrepo.UserDTO{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		slog.Warn("Ignoring malformed integer variable", "key", key, "value", raw)
		return fallback
	}
	return value
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		slog.Warn("Ignoring malformed numeric variable", "key", key, "value", raw)
		return fallback
	}
	return value
}
