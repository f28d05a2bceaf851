package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Geo      GeoConfig
	Fare     FareConfig
	Dispatch DispatchConfig
	Schedule ScheduleConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	InternalAPIKey  string // guards internal endpoints such as the clock trigger
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// GeoConfig describes the service area: a rectangular core boundary and a
// maximum radius around the service center for the extended zone.
type GeoConfig struct {
	CenterLatitude  float64
	CenterLongitude float64
	CoreMinLat      float64
	CoreMaxLat      float64
	CoreMinLng      float64
	CoreMaxLng      float64
	MaxRadiusKm     float64
}

// FareRateTable holds the base fare and tiered per-km rates for one ride category
type FareRateTable struct {
	BaseFare    float64
	Tier1RateKm float64
	Tier2RateKm float64
}

// FareConfig contains the fare formula parameters per category
type FareConfig struct {
	Standard         FareRateTable
	ParcelSmall      FareRateTable
	ParcelMedium     FareRateTable
	ParcelLarge      FareRateTable
	TierThresholdKm  float64
	ProtectionFactor float64 // settlement cap as a multiple of the estimate
	Currency         string
}

// DispatchConfig contains matching parameters per service zone
type DispatchConfig struct {
	CoreRadiusKm        float64
	ExtendedRadiusKm    float64
	CoreIncrementKm     float64
	ExtendedIncrementKm float64
	CoreTimeout         time.Duration
	ExtendedTimeout     time.Duration
	ArbitrationWindow   time.Duration
	MaxExpansions       int
}

// InitialRadiusKm returns the starting search radius for a zone
func (c DispatchConfig) InitialRadiusKm(zone ServiceZone) float64 {
	if zone == ZoneExtended {
		return c.ExtendedRadiusKm
	}
	return c.CoreRadiusKm
}

// IncrementKm returns the radius expansion step for a zone
func (c DispatchConfig) IncrementKm(zone ServiceZone) float64 {
	if zone == ZoneExtended {
		return c.ExtendedIncrementKm
	}
	return c.CoreIncrementKm
}

// AttemptTimeout returns the per-attempt broadcast timeout for a zone
func (c DispatchConfig) AttemptTimeout(zone ServiceZone) time.Duration {
	if zone == ZoneExtended {
		return c.ExtendedTimeout
	}
	return c.CoreTimeout
}

// ScheduleConfig contains the advance-booking windows and fees
type ScheduleConfig struct {
	BookingHorizon  time.Duration // how far ahead a ride may be scheduled
	PromoteLead     time.Duration // pickup lead time at which matching starts
	ReminderLead    time.Duration // pickup lead time at which reminders go out
	UnmatchedGrace  time.Duration // time past pickup before giving up
	ModifyLock      time.Duration // window before pickup in which modification is refused
	FreeCancelLead  time.Duration // minimum lead time for a free cancellation
	CancellationFee float64
	TickInterval    time.Duration
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}
