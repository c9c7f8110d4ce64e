package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	DB_URL      string
	JWT_SECRET  string
	CORS_ORIGIN string

	// Email delivery API (Resend-compatible)
	RESEND_API_KEY    string
	RESEND_BASE_URL   string
	CONTACT_FROM      string
	CONTACT_RECIPIENT string

	// Image uploads
	UPLOAD_DIR      string
	PUBLIC_BASE_URL string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")

	RESEND_API_KEY = mustEnv("RESEND_API_KEY")
	RESEND_BASE_URL = getEnv("RESEND_BASE_URL", "https://api.resend.com")
	CONTACT_FROM = getEnv("CONTACT_FROM", "LDP Publisher <onboarding@resend.dev>")
	// The original site routed contact notifications to a personal inbox,
	// not the company address. The recipient stays explicit config so the
	// routing decision lives in deployment, not code.
	CONTACT_RECIPIENT = mustEnv("CONTACT_RECIPIENT")

	UPLOAD_DIR = getEnv("UPLOAD_DIR", "uploads")
	PUBLIC_BASE_URL = getEnv("PUBLIC_BASE_URL", "http://localhost:"+PORT)

	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")
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
