package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		OfferCleanupInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Assignment struct {
		MaxDistanceKm  float64
		OfferTTL       time.Duration
		LocationMaxAge time.Duration
	}

	// Commission mirrors the externally managed payout rule. The service
	// consumes it read-only; operators change it without a deploy.
	Commission struct {
		BasePayout       float64
		FreeDistanceKm   float64
		PerKmRate        float64
		PlatformFee      float64
		MinimumGuarantee bool
	}

	Settlement struct {
		// DistancePolicy decides what happens when no distance source is
		// resolvable: "zero" settles with distance 0, "block" refuses the
		// settlement pending manual distance entry.
		DistancePolicy string
	}

	Wallet struct {
		DefaultCashLimit float64
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderCompleted OrderCompleted
	}

	OrderCompleted struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks      Tasks
		Server     HTTPServer
		Database   Database
		Redis      Redis
		Assignment Assignment
		Commission Commission
		Settlement Settlement
		Wallet     Wallet
		Kafka      Kafka
	}
)

const (
	DistancePolicyZero  = "zero"
	DistancePolicyBlock = "block"
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	offerCleanupInterval, err := osGetEnvDuration("BACKGROUND_OFFER_CLEANUP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxDistanceKm, err := osGetFloat("ASSIGNMENT_MAX_DISTANCE_KM")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	offerTTL, err := osGetEnvDuration("ASSIGNMENT_OFFER_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	locationMaxAge, err := osGetEnvDuration("ASSIGNMENT_LOCATION_MAX_AGE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	basePayout, err := osGetFloat("COMMISSION_BASE_PAYOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	freeDistanceKm, err := osGetFloat("COMMISSION_FREE_DISTANCE_KM")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	perKmRate, err := osGetFloat("COMMISSION_PER_KM_RATE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	platformFee, err := osGetFloat("COMMISSION_PLATFORM_FEE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	minimumGuarantee, err := osGetBool("COMMISSION_MINIMUM_GUARANTEE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	defaultCashLimit, err := osGetFloat("WALLET_DEFAULT_CASH_LIMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderCompletedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_COMPLETED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			OfferCleanupInterval: offerCleanupInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Assignment: Assignment{
			MaxDistanceKm:  maxDistanceKm,
			OfferTTL:       offerTTL,
			LocationMaxAge: locationMaxAge,
		},
		Commission: Commission{
			BasePayout:       basePayout,
			FreeDistanceKm:   freeDistanceKm,
			PerKmRate:        perKmRate,
			PlatformFee:      platformFee,
			MinimumGuarantee: minimumGuarantee,
		},
		Settlement: Settlement{
			DistancePolicy: os.Getenv("SETTLEMENT_DISTANCE_POLICY"),
		},
		Wallet: Wallet{
			DefaultCashLimit: defaultCashLimit,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderCompleted: OrderCompleted{
					ProcessTimeout: orderCompletedTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}

	if cfg.Assignment.MaxDistanceKm <= 0 {
		return errors.New("ASSIGNMENT_MAX_DISTANCE_KM is required")
	}
	if cfg.Assignment.OfferTTL == time.Duration(0) {
		return errors.New("ASSIGNMENT_OFFER_TTL is required")
	}
	if cfg.Assignment.LocationMaxAge == time.Duration(0) {
		return errors.New("ASSIGNMENT_LOCATION_MAX_AGE is required")
	}

	if cfg.Commission.BasePayout < 0 {
		return errors.New("COMMISSION_BASE_PAYOUT must not be negative")
	}
	if cfg.Commission.PerKmRate < 0 {
		return errors.New("COMMISSION_PER_KM_RATE must not be negative")
	}

	if cfg.Settlement.DistancePolicy != DistancePolicyZero &&
		cfg.Settlement.DistancePolicy != DistancePolicyBlock {
		return errors.New("SETTLEMENT_DISTANCE_POLICY must be \"zero\" or \"block\"")
	}

	if cfg.Wallet.DefaultCashLimit <= 0 {
		return errors.New("WALLET_DEFAULT_CASH_LIMIT is required")
	}

	if cfg.Tasks.OfferCleanupInterval == time.Duration(0) {
		return errors.New("BACKGROUND_OFFER_CLEANUP_INTERVAL is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.OrderCompleted.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_COMPLETED_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetFloat(s string) (float64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
