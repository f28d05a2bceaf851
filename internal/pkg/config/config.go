package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/ridelink/dispatch/internal/pkg/models"
)

// InitConfig loads configuration from the env file (local environments) and
// the process environment. Environment variables always win.
func InitConfig(configPath string) *models.Config {
	env := GetEnv("APP_ENV", "local")
	if env == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "dispatch-service")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 30)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 30)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)
	configs.Server.InternalAPIKey = GetEnv("INTERNAL_API_KEY", "")

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "dispatch")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 10)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 2)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "nats://localhost:4222")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "dispatch-service")

	// Service area config
	configs.Geo.CenterLatitude = GetEnvAsFloat("GEO_CENTER_LAT", -6.2088)
	configs.Geo.CenterLongitude = GetEnvAsFloat("GEO_CENTER_LNG", 106.8456)
	configs.Geo.CoreMinLat = GetEnvAsFloat("GEO_CORE_MIN_LAT", -6.38)
	configs.Geo.CoreMaxLat = GetEnvAsFloat("GEO_CORE_MAX_LAT", -6.08)
	configs.Geo.CoreMinLng = GetEnvAsFloat("GEO_CORE_MIN_LNG", 106.68)
	configs.Geo.CoreMaxLng = GetEnvAsFloat("GEO_CORE_MAX_LNG", 107.00)
	configs.Geo.MaxRadiusKm = GetEnvAsFloat("GEO_MAX_RADIUS_KM", 20.0)

	// Fare config
	configs.Fare.Standard = rateTableFromEnv("FARE_STANDARD", 30, 12, 10)
	configs.Fare.ParcelSmall = rateTableFromEnv("FARE_PARCEL_SMALL", 20, 8, 6)
	configs.Fare.ParcelMedium = rateTableFromEnv("FARE_PARCEL_MEDIUM", 25, 10, 8)
	configs.Fare.ParcelLarge = rateTableFromEnv("FARE_PARCEL_LARGE", 35, 14, 12)
	configs.Fare.TierThresholdKm = GetEnvAsFloat("FARE_TIER_THRESHOLD_KM", 25.0)
	configs.Fare.ProtectionFactor = GetEnvAsFloat("FARE_PROTECTION_FACTOR", 1.2)
	configs.Fare.Currency = GetEnv("FARE_CURRENCY", "IDR")

	// Dispatch config
	configs.Dispatch.CoreRadiusKm = GetEnvAsFloat("DISPATCH_CORE_RADIUS_KM", 5.0)
	configs.Dispatch.ExtendedRadiusKm = GetEnvAsFloat("DISPATCH_EXTENDED_RADIUS_KM", 8.0)
	configs.Dispatch.CoreIncrementKm = GetEnvAsFloat("DISPATCH_CORE_INCREMENT_KM", 2.0)
	configs.Dispatch.ExtendedIncrementKm = GetEnvAsFloat("DISPATCH_EXTENDED_INCREMENT_KM", 3.0)
	configs.Dispatch.CoreTimeout = GetEnvAsDuration("DISPATCH_CORE_TIMEOUT", 120*time.Second)
	configs.Dispatch.ExtendedTimeout = GetEnvAsDuration("DISPATCH_EXTENDED_TIMEOUT", 180*time.Second)
	configs.Dispatch.ArbitrationWindow = GetEnvAsDuration("DISPATCH_ARBITRATION_WINDOW", 3*time.Second)
	configs.Dispatch.MaxExpansions = GetEnvAsInt("DISPATCH_MAX_EXPANSIONS", 3)

	// Schedule config
	configs.Schedule.BookingHorizon = GetEnvAsDuration("SCHEDULE_BOOKING_HORIZON", 7*24*time.Hour)
	configs.Schedule.PromoteLead = GetEnvAsDuration("SCHEDULE_PROMOTE_LEAD", 30*time.Minute)
	configs.Schedule.ReminderLead = GetEnvAsDuration("SCHEDULE_REMINDER_LEAD", 15*time.Minute)
	configs.Schedule.UnmatchedGrace = GetEnvAsDuration("SCHEDULE_UNMATCHED_GRACE", 15*time.Minute)
	configs.Schedule.ModifyLock = GetEnvAsDuration("SCHEDULE_MODIFY_LOCK", 2*time.Hour)
	configs.Schedule.FreeCancelLead = GetEnvAsDuration("SCHEDULE_FREE_CANCEL_LEAD", time.Hour)
	configs.Schedule.CancellationFee = GetEnvAsFloat("SCHEDULE_CANCELLATION_FEE", 15.0)
	configs.Schedule.TickInterval = GetEnvAsDuration("SCHEDULE_TICK_INTERVAL", time.Minute)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.Format = GetEnv("LOG_FORMAT", "json")

	return configs
}

func rateTableFromEnv(prefix string, baseFare, tier1, tier2 float64) models.FareRateTable {
	return models.FareRateTable{
		BaseFare:    GetEnvAsFloat(prefix+"_BASE_FARE", baseFare),
		Tier1RateKm: GetEnvAsFloat(prefix+"_TIER1_RATE_KM", tier1),
		Tier2RateKm: GetEnvAsFloat(prefix+"_TIER2_RATE_KM", tier2),
	}
}

// Helper functions to get environment variables with different types

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %f", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %t", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %s", key, defaultValue)
		return defaultValue
	}
	return value
}
