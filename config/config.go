package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	DB_URL      string
	CORS_ORIGIN string

	// Upload storage. STORAGE_BACKEND is "disk" or "s3".
	STORAGE_BACKEND string
	UPLOAD_DIR      string
	S3_BUCKET       string
	S3_REGION       string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")

	STORAGE_BACKEND = getEnv("STORAGE_BACKEND", "disk")
	UPLOAD_DIR = getEnv("UPLOAD_DIR", "public/uploads")
	S3_BUCKET = getEnv("S3_BUCKET", "")
	S3_REGION = getEnv("S3_REGION", "us-east-1")

	if STORAGE_BACKEND == "s3" && S3_BUCKET == "" {
		log.Fatal("S3_BUCKET must be set when STORAGE_BACKEND=s3")
	}
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
