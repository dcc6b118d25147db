// Package config loads configuration structs from environment variables
// using github.com/caarlos0/env field tags, with optional .env file support
// through github.com/joho/godotenv.
//
//	type AppConfig struct {
//	    SecretKeyBase string `env:"SECRET_KEY_BASE,required"`
//	    Session       session.Config
//	    Flash         flash.Config
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
package config
