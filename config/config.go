// Package config reads runtime settings from the process environment,
// with an optional .env file for local development.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads a local .env file when one exists. A missing file is
// normal in deployed environments, where settings come from the real
// environment.
func LoadEnv() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using process environment")
	}
}

// GetEnv returns the named variable, or fallback when it is unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
