package main

import (
	"fmt"
	"os"
)

// Config holds all environment variables for the inventory service.
type Config struct {
	Port string // HTTP port (default: 8080)

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string // shared secret for validating identity-provider tokens

	S3Bucket   string
	S3Prefix   string // key prefix for uploaded images
	S3Region   string
	S3Endpoint string // optional, for S3-compatible stores
}

// LoadConfig loads environment variables into a Config struct, applies
// defaults, and validates the required fields.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:       os.Getenv("PORT"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		S3Bucket:   os.Getenv("AWS_S3_BUCKET"),
		S3Prefix:   os.Getenv("AWS_S3_PREFIX"),
		S3Region:   os.Getenv("AWS_REGION"),
		S3Endpoint: os.Getenv("AWS_S3_ENDPOINT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBHost == "" {
		cfg.DBHost = "localhost"
	}
	if cfg.DBPort == "" {
		cfg.DBPort = "5432"
	}
	if cfg.DBUser == "" {
		cfg.DBUser = "postgres"
	}
	if cfg.DBName == "" {
		cfg.DBName = "inventario"
	}
	if cfg.S3Bucket == "" {
		cfg.S3Bucket = "product-images"
	}
	if cfg.S3Prefix == "" {
		cfg.S3Prefix = "products/"
	}
	if cfg.S3Region == "" {
		cfg.S3Region = "us-east-1"
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}
