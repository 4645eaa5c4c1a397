package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/match-forecast/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string

	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string

	FootballDataBaseURL             string
	FootballDataToken               string
	FootballDataTimeout             time.Duration
	FootballDataMaxRetries          int
	FootballDataCircuitEnabled      bool
	FootballDataCircuitFailureCount int
	FootballDataCircuitOpenTimeout  time.Duration
	FootballDataCircuitHalfOpenReq  int

	ForecastMaxFixtures int
	PrefetchLeagues     []string
	PrefetchWorkers     int

	PprofEnabled           bool
	PprofAddr              string
	UptraceEnabled         bool
	UptraceDSN             string
	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeAuthToken     string
	PyroscopeUploadRate    time.Duration

	LogLevel logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := getEnvAsDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := getEnvAsDuration("HTTP_WRITE_TIMEOUT", 20*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_WRITE_TIMEOUT: %w", err)
	}

	providerTimeout, err := getEnvAsDuration("FOOTBALLDATA_TIMEOUT", 15*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALLDATA_TIMEOUT: %w", err)
	}
	providerRetries, err := getEnvAsInt("FOOTBALLDATA_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALLDATA_MAX_RETRIES: %w", err)
	}
	circuitEnabled, err := getEnvAsBool("FOOTBALLDATA_CIRCUIT_ENABLED", true)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALLDATA_CIRCUIT_ENABLED: %w", err)
	}
	circuitFailures, err := getEnvAsInt("FOOTBALLDATA_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALLDATA_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	circuitOpenTimeout, err := getEnvAsDuration("FOOTBALLDATA_CIRCUIT_OPEN_TIMEOUT", 15*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALLDATA_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	circuitHalfOpenReq, err := getEnvAsInt("FOOTBALLDATA_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALLDATA_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}

	maxFixtures, err := getEnvAsInt("FORECAST_MAX_FIXTURES", 16)
	if err != nil {
		return Config{}, fmt.Errorf("parse FORECAST_MAX_FIXTURES: %w", err)
	}
	if maxFixtures < 1 {
		return Config{}, fmt.Errorf("FORECAST_MAX_FIXTURES must be >= 1")
	}
	prefetchWorkers, err := getEnvAsInt("FORECAST_PREFETCH_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse FORECAST_PREFETCH_WORKERS: %w", err)
	}
	if prefetchWorkers < 1 {
		prefetchWorkers = 1
	}

	pprofEnabled, err := getEnvAsBool("PPROF_ENABLED", false)
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	uptraceEnabled, err := getEnvAsBool("UPTRACE_ENABLED", false)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := getEnvAsBool("PYROSCOPE_ENABLED", false)
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServer := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServer == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", 15*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}

	logLevel, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}

	serviceName := getEnv("SERVICE_NAME", "match-forecast")

	return Config{
		AppEnv:         appEnv,
		ServiceName:    serviceName,
		ServiceVersion: getEnv("SERVICE_VERSION", "dev"),

		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		FootballDataBaseURL:             getEnv("FOOTBALLDATA_BASE_URL", ""),
		FootballDataToken:               getEnv("FOOTBALLDATA_TOKEN", ""),
		FootballDataTimeout:             providerTimeout,
		FootballDataMaxRetries:          providerRetries,
		FootballDataCircuitEnabled:      circuitEnabled,
		FootballDataCircuitFailureCount: circuitFailures,
		FootballDataCircuitOpenTimeout:  circuitOpenTimeout,
		FootballDataCircuitHalfOpenReq:  circuitHalfOpenReq,

		ForecastMaxFixtures: maxFixtures,
		PrefetchLeagues:     splitCSV(getEnv("FORECAST_PREFETCH_LEAGUES", "")),
		PrefetchWorkers:     prefetchWorkers,

		PprofEnabled: pprofEnabled,
		PprofAddr:    getEnv("PPROF_ADDR", ":6060"),

		UptraceEnabled: uptraceEnabled,
		UptraceDSN:     uptraceDSN,

		PyroscopeEnabled:       pyroscopeEnabled,
		PyroscopeServerAddress: pyroscopeServer,
		PyroscopeAppName:       getEnv("PYROSCOPE_APP_NAME", serviceName),
		PyroscopeAuthToken:     getEnv("PYROSCOPE_AUTH_TOKEN", ""),
		PyroscopeUploadRate:    pyroscopeUploadRate,

		LogLevel: logLevel,
	}, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseLogLevel(v string) (logging.Level, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug, nil
	case "", "info":
		return logging.LevelInfo, nil
	case "warn", "warning":
		return logging.LevelWarn, nil
	case "error":
		return logging.LevelError, nil
	default:
		return logging.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q", v)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.ParseBool(value)
	if err != nil {
		return false, err
	}

	return out, nil
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
