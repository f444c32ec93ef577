package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Change feed modes. In local mode committed changes reach the realtime hub of this
// process only; in postgres mode they travel through LISTEN/NOTIFY so every instance
// sees writes made by the others.
const (
	ChangeFeedLocal    = "local"
	ChangeFeedPostgres = "postgres"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	LogLevel   string
	JWTSecret  string

	KafkaHost              string
	KafkaOrderChangedTopic string

	ChangeFeed     string
	ExpirySchedule string
	OtpAttempts    int
	OtpWindow      time.Duration

	// Agent side
	APIURL               string
	AgentID              string
	AgentToken           string
	AgentStartLat        float64
	AgentStartLng        float64
	AgentRoute           string
	PositionPollInterval time.Duration
}

// LoadConfig reads the environment. A .env file in the working directory is loaded
// first when present; variables already set in the environment win over it.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		HTTPPort:               getEnv("HTTP_PORT", "8082"),
		DBHost:                 getEnv("DB_HOST", "localhost"),
		DBPort:                 getEnv("DB_PORT", "5432"),
		DBUser:                 getEnv("DB_USER", "postgres"),
		DBPassword:             getEnv("DB_PASSWORD", ""),
		DBName:                 getEnv("DB_NAME", "orderflow"),
		DBSslMode:              getEnv("DB_SSLMODE", "disable"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		JWTSecret:              getEnv("JWT_SECRET", ""),
		KafkaHost:              getEnv("KAFKA_HOST", ""),
		KafkaOrderChangedTopic: getEnv("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
		ChangeFeed:             getEnv("CHANGE_FEED", ChangeFeedLocal),
		ExpirySchedule:         getEnv("EXPIRY_SCHEDULE", ""),
		APIURL:                 getEnv("API_URL", "http://localhost:8082"),
		AgentID:                getEnv("AGENT_ID", ""),
		AgentToken:             getEnv("AGENT_TOKEN", ""),
		AgentRoute:             getEnv("AGENT_ROUTE", ""),
	}

	var err error
	if cfg.OtpAttempts, err = getEnvInt("OTP_ATTEMPTS", 5); err != nil {
		return Config{}, err
	}
	if cfg.OtpWindow, err = getEnvDuration("OTP_WINDOW", 10*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.PositionPollInterval, err = getEnvDuration("POSITION_POLL_INTERVAL", 60*time.Second); err != nil {
		return Config{}, err
	}

	if cfg.AgentStartLat, err = getEnvFloat("AGENT_START_LAT", 55.7558); err != nil {
		return Config{}, err
	}
	if cfg.AgentStartLng, err = getEnvFloat("AGENT_START_LNG", 37.6173); err != nil {
		return Config{}, err
	}

	switch cfg.ChangeFeed {
	case ChangeFeedLocal, ChangeFeedPostgres:
	default:
		return Config{}, fmt.Errorf("CHANGE_FEED must be %q or %q, got %q", ChangeFeedLocal, ChangeFeedPostgres, cfg.ChangeFeed)
	}

	return cfg, nil
}

// ValidateServer checks what the API process cannot start without.
func (c Config) ValidateServer() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	if c.KafkaHost == "" {
		return errors.New("KAFKA_HOST is not set")
	}
	return nil
}

// ValidateAgent checks what the agent process cannot start without.
func (c Config) ValidateAgent() error {
	if c.AgentID == "" {
		return errors.New("AGENT_ID is not set")
	}
	if c.AgentToken == "" {
		return errors.New("AGENT_TOKEN is not set")
	}
	return nil
}

// DSN is the gorm connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// DatabaseURL is the URL form used by migrations and the change feed listener.
func (c Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSslMode}}.Encode(),
	}
	return u.String()
}

func getEnv(key, defaultVal string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
