// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Each component declares its own config struct with `env` tags and loads it
// independently, so configuration stays next to the code that consumes it:
//
//	type EmailConfig struct {
//		ServerToken string `env:"POSTMARK_SERVER_TOKEN"`
//		SenderEmail string `env:"SENDER_EMAIL,required"`
//	}
//
//	var cfg EmailConfig
//	config.MustLoad(&cfg)
package config
