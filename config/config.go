package config

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Gemini   Gemini
	Grading  Grading
	Auth     Auth
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Gemini struct {
	ApiKey         string
	Model          string
	FallbackModel  string
	TimeoutSeconds int
}

type Grading struct {
	// FallbackOnError selects what happens when AI grading fails: substitute a
	// neutral default feedback record (true) or surface the failure to the
	// caller as a 500 (false).
	FallbackOnError bool
}

type Auth struct {
	JwtSecret string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-pro")
	viper.SetDefault("GEMINI_FALLBACK_MODEL", "gemini-1.5-flash")
	viper.SetDefault("GEMINI_TIMEOUT_SECONDS", 30)
	viper.SetDefault("GRADING_FALLBACK_ENABLED", false)
	viper.SetDefault("SERVER_PORT", "8080")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Gemini.ApiKey = viper.GetString("GEMINI_API_KEY")
	config.Gemini.Model = viper.GetString("GEMINI_MODEL")
	config.Gemini.FallbackModel = viper.GetString("GEMINI_FALLBACK_MODEL")
	config.Gemini.TimeoutSeconds = viper.GetInt("GEMINI_TIMEOUT_SECONDS")

	config.Grading.FallbackOnError = viper.GetBool("GRADING_FALLBACK_ENABLED")

	config.Auth.JwtSecret = viper.GetString("JWT_SECRET")

	if config.Gemini.ApiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if config.Auth.JwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	log.Info().
		Str("server_port", config.Server.Port).
		Str("gemini_model", config.Gemini.Model).
		Str("gemini_fallback_model", config.Gemini.FallbackModel).
		Bool("grading_fallback", config.Grading.FallbackOnError).
		Msg("Config loaded")
	return &config, nil
}
