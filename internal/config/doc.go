// Package config defines the application configuration structure and
// loads it from config files and environment variables via viper, with
// struct-tag validation from go-playground/validator.
package config
