package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix = "BREWSCOUT"
	// EnvFileVar names the variable holding the optional dotenv file path.
	EnvFileVar = envPrefix + "_ENV_FILE"
	// MaxResultsLimit is the size of a single provider result page.
	MaxResultsLimit = 20
)

// Config holds the configuration settings for the nearby search service.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port for the search API server.
// - HealthPort: The port for the monitoring server.
// - APIKey: The API key for the Google Places API.
// - ProviderTimeout: Timeout of a single outbound provider request.
// - ProviderBaseURL: Optional override of the provider base URL.
// - Keywords: Synonymous search terms sent with every query.
// - Language: Language tag for result names.
// - OpenNow: Restrict results to places that are currently open.
// - MaxResults: Maximum number of places returned per request.
// - RequestTimeout: Upper bound on handling a single inbound request.
type Config struct {
	Env             string        `mapstructure:"env"`
	Port            int           `mapstructure:"port"`
	HealthPort      int           `mapstructure:"health_port"`
	APIKey          string        `mapstructure:"provider_key"`
	ProviderTimeout time.Duration `mapstructure:"provider_timeout"`
	ProviderBaseURL string        `mapstructure:"provider_base_url"`
	Keywords        []string      `mapstructure:"keywords"`
	Language        string        `mapstructure:"language"`
	OpenNow         bool          `mapstructure:"open_now"`
	MaxResults      int           `mapstructure:"max_results"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
}

// MustLoad reads an optional dotenv file and BREWSCOUT_* environment variables
// and returns a Config. Variables already present in the environment take
// precedence over the dotenv file. It panics on malformed values.
func MustLoad() *Config {
	envFile := os.Getenv(EnvFileVar)
	if envFile == "" {
		envFile = ".env"
	}
	_ = godotenv.Load(envFile)

	v := newViper()

	return &Config{
		Env:             v.GetString("env"),
		Port:            mustInt(v, "port", "failed to parse port for search server from configuration"),
		HealthPort:      mustInt(v, "health_port", "failed to parse port for monitoring server from configuration"),
		APIKey:          v.GetString("provider_key"),
		ProviderTimeout: mustDuration(v, "provider_timeout", "failed to parse provider timeout from configuration"),
		ProviderBaseURL: v.GetString("provider_base_url"),
		Keywords:        mustKeywords(v),
		Language:        v.GetString("language"),
		OpenNow:         mustBool(v, "open_now", "failed to parse open_now from configuration, must be a boolean"),
		MaxResults:      mustMaxResults(v),
		RequestTimeout:  mustDuration(v, "request_timeout", "failed to parse request timeout from configuration"),
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("env", "production")
	v.SetDefault("port", "8000")
	v.SetDefault("health_port", "8080")
	v.SetDefault("provider_key", "")
	v.SetDefault("provider_timeout", "10s")
	v.SetDefault("provider_base_url", "")
	v.SetDefault("keywords", "caffe,cafe,coffee")
	v.SetDefault("language", "en")
	v.SetDefault("open_now", "true")
	v.SetDefault("max_results", "1")
	v.SetDefault("request_timeout", "15s")

	return v
}

func mustInt(v *viper.Viper, key, msg string) int {
	value, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		panic(msg)
	}

	return value
}

func mustBool(v *viper.Viper, key, msg string) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		panic(msg)
	}

	return value
}

func mustDuration(v *viper.Viper, key, msg string) time.Duration {
	value, err := time.ParseDuration(strings.TrimSpace(v.GetString(key)))
	if err != nil || value <= 0 {
		panic(msg)
	}

	return value
}

func mustKeywords(v *viper.Viper) []string {
	var keywords []string
	for _, k := range strings.Split(v.GetString("keywords"), ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	if len(keywords) == 0 {
		panic("keywords must contain at least one search term")
	}

	return keywords
}

func mustMaxResults(v *viper.Viper) int {
	value := mustInt(v, "max_results", "failed to parse max_results from configuration, must be an integer")
	if value < 1 || value > MaxResultsLimit {
		panic(fmt.Sprintf("max_results must be between 1 and %d", MaxResultsLimit))
	}

	return value
}
