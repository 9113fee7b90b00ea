package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds runtime configuration, read from configs/app.env or the
// environment.
type Config struct {
	DBSource           string        `mapstructure:"DB_SOURCE"`
	ServerAddress      string        `mapstructure:"SERVER_ADDRESS"`
	NominatimBaseURL   string        `mapstructure:"NOMINATIM_BASE_URL"`
	GeocodeUserAgent   string        `mapstructure:"GEOCODE_USER_AGENT"`
	GeocodeTimeout     time.Duration `mapstructure:"GEOCODE_TIMEOUT"`
	JWTSecret          string        `mapstructure:"JWT_SECRET"`
	TokenDuration      time.Duration `mapstructure:"TOKEN_DURATION"`
	GooglePlacesAPIKey string        `mapstructure:"GOOGLE_PLACES_API_KEY"`
	AdminUsername      string        `mapstructure:"ADMIN_USERNAME"`
	AdminPassword      string        `mapstructure:"ADMIN_PASSWORD"`
	AllowedOrigins     []string      `mapstructure:"ALLOWED_ORIGINS"`
}

// LoadConfig reads configuration from app.env in the given path. Environment
// variables override file values.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
