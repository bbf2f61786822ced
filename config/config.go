package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server  Server
	API     API
	Storage Storage
}

type Server struct {
	Port string
}

// API configures the remote LMS API client. Timeout bounds every request,
// including attempt submission; expiry falls back to local scoring.
type API struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type Storage struct {
	Path string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("API_BASE_URL", "http://localhost:8080/api/v1")
	viper.SetDefault("API_TIMEOUT_SECONDS", 10)
	viper.SetDefault("STORAGE_PATH", "lms_state.json")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.API.BaseURL = viper.GetString("API_BASE_URL")
	config.API.Token = viper.GetString("API_TOKEN")
	config.API.Timeout = time.Duration(viper.GetInt("API_TIMEOUT_SECONDS")) * time.Second
	config.Storage.Path = viper.GetString("STORAGE_PATH")

	log.Info().
		Str("server_port", config.Server.Port).
		Str("api_base_url", config.API.BaseURL).
		Dur("api_timeout", config.API.Timeout).
		Str("storage_path", config.Storage.Path).
		Msg("Config loaded")
	return &config, nil
}
