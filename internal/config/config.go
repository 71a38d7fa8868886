package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/terraincognita07/liftlog/internal/security"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultPort           = 3000
	DefaultCORSOrigins    = "*"
	DefaultRateLimitBurst = 20
	minSecretKeyLength    = 32
)

var DefaultDBPath = filepath.Join("data", "liftlog.db")

var (
	ErrInvalidPort          = errors.New("invalid PORT")
	ErrInvalidSecretKey     = errors.New("invalid SECRET_KEY")
	ErrInvalidAccessKeyHash = errors.New("invalid ACCESS_KEY_HASH")
	ErrAccessKeyMissing     = errors.New("REQUIRE_ACCESS needs ACCESS_KEY or ACCESS_KEY_HASH")
	ErrInvalidRateLimit     = errors.New("invalid RATE_LIMIT_RPS")
)

var insecureSecretPlaceholders = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

type Config struct {
	Port            int
	DBPath          string
	SecretKey       string
	SecretGenerated bool
	AccessKey       string
	AccessKeyHash   string
	RequireAccess   bool
	CORSOrigins     string
	RateLimitRPS    float64
	RateLimitBurst  int
	RoutinesFile    string
	StaticDir       string
	LogFormat       string
	LogLevel        string
}

// Load reads envFile into the process environment when it exists and then
// builds a Config from the environment. Variables already set win over the file.
func Load(envFile string) (Config, error) {
	if strings.TrimSpace(envFile) != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		DBPath:        getEnv("DB_PATH", DefaultDBPath),
		SecretKey:     strings.TrimSpace(os.Getenv("SECRET_KEY")),
		AccessKey:     strings.TrimSpace(os.Getenv("ACCESS_KEY")),
		AccessKeyHash: strings.TrimSpace(os.Getenv("ACCESS_KEY_HASH")),
		RequireAccess: parseBoolEnv("REQUIRE_ACCESS"),
		CORSOrigins:   getEnv("CORS_ORIGINS", DefaultCORSOrigins),
		RoutinesFile:  strings.TrimSpace(os.Getenv("ROUTINES_FILE")),
		StaticDir:     strings.TrimSpace(os.Getenv("STATIC_DIR")),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	port, err := resolvePort(os.Getenv("PORT"))
	if err != nil {
		return Config{}, err
	}
	cfg.Port = port

	rps, burst, err := resolveRateLimit(os.Getenv("RATE_LIMIT_RPS"), os.Getenv("RATE_LIMIT_BURST"))
	if err != nil {
		return Config{}, err
	}
	cfg.RateLimitRPS = rps
	cfg.RateLimitBurst = burst

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the access settings and fills in a generated secret when
// the gate is off and none was provided. Call it again after flag overrides.
func (cfg *Config) Validate() error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, cfg.Port)
	}
	if cfg.AccessKeyHash != "" {
		if _, err := bcrypt.Cost([]byte(cfg.AccessKeyHash)); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAccessKeyHash, err)
		}
	}
	if cfg.RequireAccess && cfg.AccessKeyHash == "" && cfg.AccessKey == "" {
		return ErrAccessKeyMissing
	}

	if cfg.SecretGenerated {
		if cfg.RequireAccess {
			return fmt.Errorf("%w: required when REQUIRE_ACCESS is on", ErrInvalidSecretKey)
		}
		return nil
	}
	secret, generated, err := resolveSecretKey(cfg.SecretKey, cfg.RequireAccess)
	if err != nil {
		return err
	}
	cfg.SecretKey = secret
	cfg.SecretGenerated = generated
	return nil
}

func (cfg Config) Addr() string {
	return ":" + strconv.Itoa(cfg.Port)
}

func resolvePort(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultPort, nil
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPort, raw)
	}
	return port, nil
}

func resolveRateLimit(rawRPS string, rawBurst string) (float64, int, error) {
	rps := 0.0
	if value := strings.TrimSpace(rawRPS); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil || parsed < 0 {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidRateLimit, rawRPS)
		}
		rps = parsed
	}

	burst := DefaultRateLimitBurst
	if value := strings.TrimSpace(rawBurst); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 1 {
			return 0, 0, fmt.Errorf("%w: burst %q", ErrInvalidRateLimit, rawBurst)
		}
		burst = parsed
	}
	return rps, burst, nil
}

// resolveSecretKey accepts a configured secret only when it is long enough and
// not a documented placeholder. Without one, the gated mode refuses to start
// and the open mode signs with a per-process random secret.
func resolveSecretKey(raw string, required bool) (string, bool, error) {
	secret := strings.TrimSpace(raw)
	if secret == "" {
		if required {
			return "", false, fmt.Errorf("%w: required when REQUIRE_ACCESS is on", ErrInvalidSecretKey)
		}
		generated, err := security.NewSecretKey()
		if err != nil {
			return "", false, fmt.Errorf("generate secret key: %w", err)
		}
		return generated, true, nil
	}
	if _, insecure := insecureSecretPlaceholders[strings.ToLower(secret)]; insecure {
		return "", false, fmt.Errorf("%w: placeholder value", ErrInvalidSecretKey)
	}
	if len(secret) < minSecretKeyLength {
		return "", false, fmt.Errorf("%w: must be at least %d characters", ErrInvalidSecretKey, minSecretKeyLength)
	}
	return secret, false, nil
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func parseBoolEnv(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
