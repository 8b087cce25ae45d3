// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv, which reads an optional .env file once
// per process, and github.com/caarlos0/env/v11, which maps variables onto
// struct fields tagged with `env` and `envDefault`. Every package that needs
// configuration declares its own Config struct; callers load them with
// Load or MustLoad, and each type is parsed only once.
package config
