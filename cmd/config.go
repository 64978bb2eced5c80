package cmd

import "time"

// Config carries every externally supplied setting the application needs.
// Values are read from the environment by cmd/app; see .env.example for the
// full list of variables.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// AdminKey guards operator endpoints. Empty disables the check and is
	// only acceptable in development.
	AdminKey string

	// Restaurant pickup point, the origin of every route estimate.
	RestaurantLat float64
	RestaurantLng float64

	// GoogleMapsAPIKey enables the Distance Matrix estimator. Empty means
	// the local haversine estimator serves every request.
	GoogleMapsAPIKey string

	// Delivery pricing. PricingMode is "flat" or "dynamic".
	PricingMode       string
	FlatDeliveryFee   int64
	BaseDeliveryFee   int64
	PerKmFee          float64
	PerMinFee         float64
	MinDeliveryFee    int64
	MaxDeliveryFee    int64
	ServiceFeePercent float64

	// Notification channels. A channel with no configuration is skipped;
	// with none configured, notifications go to the log.
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	TelegramBotToken string
	TelegramChatID   int64

	// PresenceMaxAge is how long a driver stays available without a
	// heartbeat before the background sweep flags them off shift.
	PresenceMaxAge time.Duration
}
