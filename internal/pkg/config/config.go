package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, sale tuning, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Sale      SaleConfig
	Payment   PaymentConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName      string `envconfig:"DB_NAME" required:"true"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

type RedisConfig struct {
	Addr      string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password  string        `envconfig:"REDIS_PASSWORD" default:""`
	DB        int           `envconfig:"REDIS_DB" default:"0"`
	PoolSize  int           `envconfig:"REDIS_POOL_SIZE" default:"64"`
	OpTimeout time.Duration `envconfig:"REDIS_OP_TIMEOUT" default:"300ms"`
}

// Brokers empty means alerts are only logged.
type KafkaConfig struct {
	Brokers      []string      `envconfig:"KAFKA_BROKERS" default:""`
	AlertTopic   string        `envconfig:"KAFKA_ALERT_TOPIC" default:"flash-sale.alerts"`
	MaxAttempts  int           `envconfig:"KAFKA_MAX_ATTEMPTS" default:"3"`
	WriteTimeout time.Duration `envconfig:"KAFKA_WRITE_TIMEOUT" default:"5s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type SaleConfig struct {
	ReservationTTL     time.Duration `envconfig:"SALE_RESERVATION_TTL" default:"5m"`
	GrantTTL           time.Duration `envconfig:"SALE_GRANT_TTL" default:"5m"`
	IntakeCapacity     int           `envconfig:"SALE_INTAKE_CAPACITY" default:"3000"`
	OfferMaxRetries    int           `envconfig:"SALE_OFFER_MAX_RETRIES" default:"5"`
	OfferInitialWait   time.Duration `envconfig:"SALE_OFFER_INITIAL_WAIT" default:"1ms"`
	OfferMaxWait       time.Duration `envconfig:"SALE_OFFER_MAX_WAIT" default:"1s"`
	MinBatchSize       int           `envconfig:"SALE_MIN_BATCH_SIZE" default:"100"`
	MaxBatchSize       int           `envconfig:"SALE_MAX_BATCH_SIZE" default:"2000"`
	ErrorDrainLimit    int           `envconfig:"SALE_ERROR_DRAIN_LIMIT" default:"100"`
	RetryCeiling       int           `envconfig:"SALE_RETRY_CEILING" default:"3"`
	SweepLimit         int64         `envconfig:"SALE_SWEEP_LIMIT" default:"500"`
	AdvanceInterval    time.Duration `envconfig:"SALE_ADVANCE_INTERVAL" default:"2s"`
	BatchInterval      time.Duration `envconfig:"SALE_BATCH_INTERVAL" default:"500ms"`
	ErrorDrainInterval time.Duration `envconfig:"SALE_ERROR_DRAIN_INTERVAL" default:"1m"`
	SweepInterval      time.Duration `envconfig:"SALE_SWEEP_INTERVAL" default:"1m"`
	SaleWindowInterval time.Duration `envconfig:"SALE_WINDOW_INTERVAL" default:"30s"`
}

type PaymentConfig struct {
	SimulatedDelay time.Duration `envconfig:"PAYMENT_SIMULATED_DELAY" default:"2s"`
	DeclineRate    float64       `envconfig:"PAYMENT_DECLINE_RATE" default:"0"`
	ResultBuffer   int           `envconfig:"PAYMENT_RESULT_BUFFER" default:"1024"`
}

// Endpoint empty disables tracing.
type TelemetryConfig struct {
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"festival-flash-sale"`
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:""`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
			MaxConns: 5,
		},
		Redis: RedisConfig{
			Addr:      "localhost:16379",
			PoolSize:  8,
			OpTimeout: time.Second,
		},
		Kafka: KafkaConfig{
			AlertTopic:   "flash-sale.alerts.test",
			MaxAttempts:  1,
			WriteTimeout: time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Sale: SaleConfig{
			ReservationTTL:     5 * time.Minute,
			GrantTTL:           5 * time.Minute,
			IntakeCapacity:     10,
			OfferMaxRetries:    5,
			OfferInitialWait:   time.Microsecond,
			OfferMaxWait:       time.Millisecond,
			MinBatchSize:       100,
			MaxBatchSize:       2000,
			ErrorDrainLimit:    100,
			RetryCeiling:       3,
			SweepLimit:         500,
			AdvanceInterval:    time.Second,
			BatchInterval:      100 * time.Millisecond,
			ErrorDrainInterval: time.Second,
			SweepInterval:      time.Second,
			SaleWindowInterval: time.Second,
		},
		Payment: PaymentConfig{
			SimulatedDelay: 10 * time.Millisecond,
			ResultBuffer:   16,
		},
		Telemetry: TelemetryConfig{
			ServiceName: "festival-flash-sale-test",
		},
	}
}
