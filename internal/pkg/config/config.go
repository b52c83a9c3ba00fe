package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, sink endpoint)
// - default: Values common across all environments (fee rates, timeouts)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	CORS   CORSConfig
	Log    LogConfig
	Sink   SinkConfig
	Fees   FeesConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Session-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Session-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// SinkConfig points at the external booking submission service.
type SinkConfig struct {
	BaseURL string        `envconfig:"SINK_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"SINK_TIMEOUT" default:"10s"`
}

// FeesConfig is the process-wide fee schedule, immutable after load.
type FeesConfig struct {
	ServiceFeeRate float64 `envconfig:"FEE_SERVICE_RATE" default:"0.10"`
	TaxRate        float64 `envconfig:"FEE_TAX_RATE" default:"0.05"`
	BookingFee     float64 `envconfig:"FEE_BOOKING_FLAT" default:"65"`
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
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Sink: SinkConfig{
			BaseURL: "http://localhost:18080",
			Timeout: 2 * time.Second,
		},
		Fees: FeesConfig{
			ServiceFeeRate: 0.10,
			TaxRate:        0.05,
			BookingFee:     65,
		},
	}
}
