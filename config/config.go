package config

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv pulls .env into the environment before anything reads it. Missing
// file is fine in deployed environments.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}
