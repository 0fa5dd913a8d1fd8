// Package config loads configuration structs from environment variables.
//
// It combines github.com/joho/godotenv, which reads .env files into the process
// environment, with github.com/caarlos0/env/v11, which maps variables onto struct
// fields through `env` and `envDefault` tags.
//
// # Usage
//
//	type Settings struct {
//	    Validation validation.Config
//	    Log        logger.Config
//	}
//
//	var s Settings
//	config.MustLoad(&s, config.WithEnvFiles(".env.local"))
//
// Keys can be namespaced with WithPrefix, and tests can bypass the process
// environment entirely with WithEnvironment.
//
// # Error Handling
//
// Parsing failures wrap ErrParsingConfig and unreadable env files wrap
// ErrLoadingEnvFile; both keep the underlying library error in the chain.
package config
