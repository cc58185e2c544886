package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// envPrefix is prepended to every configuration key.
const envPrefix = "SPATIAL_ENGINE_"

// Config holds the application configuration.
type Config struct {
	Environment string
	Server      ServerConfig
	Scan        ScanConfig
	Engine      EngineConfig
	Monitoring  MonitoringConfig
}

// ServerConfig configures the gRPC transport.
type ServerConfig struct {
	Addr                    string
	RequestTimeout          time.Duration
	RateLimitPerMinute      int
	StreamBuffer            int
	GracefulShutdownTimeout time.Duration
}

// ScanConfig configures the LiDAR processor.
type ScanConfig struct {
	MaxRangeMeters      float64
	MinRangeMeters      float64
	RefreshRateHz       int
	MaxProcessingTimeMs int
	ConfidenceThreshold float64
	BatchSize           int
}

// EngineConfig configures the facade gates.
type EngineConfig struct {
	BatteryThresholdPercent int
	NodeCapacity            int
}

// MonitoringConfig configures the monitoring HTTP server.
type MonitoringConfig struct {
	MetricsEnabled bool
	MetricsPort    string
	DebugMode      bool
}

// Load reads the configuration from environment variables with the
// SPATIAL_ENGINE_ prefix and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "production"),
		Server: ServerConfig{
			Addr:                    getEnv("ADDR", "[::1]:50051"),
			RequestTimeout:          getDuration("REQUEST_TIMEOUT", 100*time.Millisecond),
			RateLimitPerMinute:      getInt("RATE_LIMIT_PER_MINUTE", 600),
			StreamBuffer:            getInt("STREAM_BUFFER", 32),
			GracefulShutdownTimeout: getDuration("GRACEFUL_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Scan: ScanConfig{
			MaxRangeMeters:      getFloat("MAX_SCAN_RANGE_METERS", 50.0),
			MinRangeMeters:      getFloat("MIN_SCAN_RANGE_METERS", 0.5),
			RefreshRateHz:       getInt("REFRESH_RATE_HZ", 30),
			MaxProcessingTimeMs: getInt("MAX_PROCESSING_TIME_MS", 100),
			ConfidenceThreshold: getFloat("CONFIDENCE_THRESHOLD", 0.85),
			BatchSize:           getInt("BATCH_SIZE", 1024),
		},
		Engine: EngineConfig{
			BatteryThresholdPercent: getInt("BATTERY_THRESHOLD_PERCENT", 15),
			NodeCapacity:            getInt("INDEX_NODE_CAPACITY", 16),
		},
		Monitoring: MonitoringConfig{
			MetricsEnabled: getBool("METRICS_ENABLED", true),
			MetricsPort:    getEnv("METRICS_PORT", "9090"),
			DebugMode:      getBool("DEBUG_MODE", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks every setting against its accepted range.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("%sADDR is required", envPrefix)
	}

	if c.Scan.MaxRangeMeters <= 0.5 || c.Scan.MaxRangeMeters > 50 {
		return fmt.Errorf("%sMAX_SCAN_RANGE_METERS must be in (0.5, 50], got %v", envPrefix, c.Scan.MaxRangeMeters)
	}

	if c.Scan.MinRangeMeters < 0.5 || c.Scan.MinRangeMeters >= c.Scan.MaxRangeMeters {
		return fmt.Errorf("%sMIN_SCAN_RANGE_METERS must be in [0.5, max), got %v", envPrefix, c.Scan.MinRangeMeters)
	}

	if c.Scan.RefreshRateHz < 30 {
		return fmt.Errorf("%sREFRESH_RATE_HZ must be at least 30, got %d", envPrefix, c.Scan.RefreshRateHz)
	}

	if c.Scan.MaxProcessingTimeMs <= 0 || c.Scan.MaxProcessingTimeMs > 100 {
		return fmt.Errorf("%sMAX_PROCESSING_TIME_MS must be in (0, 100], got %d", envPrefix, c.Scan.MaxProcessingTimeMs)
	}

	if c.Scan.ConfidenceThreshold < 0.85 || c.Scan.ConfidenceThreshold > 1 {
		return fmt.Errorf("%sCONFIDENCE_THRESHOLD must be in [0.85, 1], got %v", envPrefix, c.Scan.ConfidenceThreshold)
	}

	if c.Scan.BatchSize <= 0 {
		return fmt.Errorf("%sBATCH_SIZE must be positive, got %d", envPrefix, c.Scan.BatchSize)
	}

	if c.Engine.BatteryThresholdPercent < 5 || c.Engine.BatteryThresholdPercent > 20 {
		return fmt.Errorf("%sBATTERY_THRESHOLD_PERCENT must be in [5, 20], got %d", envPrefix, c.Engine.BatteryThresholdPercent)
	}

	if c.Engine.NodeCapacity < 2 {
		return fmt.Errorf("%sINDEX_NODE_CAPACITY must be at least 2, got %d", envPrefix, c.Engine.NodeCapacity)
	}

	if c.Server.RateLimitPerMinute <= 0 {
		return fmt.Errorf("%sRATE_LIMIT_PER_MINUTE must be positive, got %d", envPrefix, c.Server.RateLimitPerMinute)
	}

	if c.Server.StreamBuffer <= 0 {
		return fmt.Errorf("%sSTREAM_BUFFER must be positive, got %d", envPrefix, c.Server.StreamBuffer)
	}

	return nil
}

// Environment variable helpers

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(envPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(envPrefix + key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(envPrefix + key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if value := os.Getenv(envPrefix + key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(envPrefix + key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// LogLevel returns the logging level (unprefixed, shared with the runtime).
func LogLevel() string {
	if value := os.Getenv("LOG_LEVEL"); value != "" {
		return value
	}
	return "info"
}

// LogFormat returns the logging format.
func LogFormat() string {
	if value := os.Getenv("LOG_FORMAT"); value != "" {
		return value
	}
	return "json"
}
