package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Model server (Ollama). BaseURL is also reconfigurable at runtime
	// through the API; it is never persisted beyond the session.
	OllamaURL   string
	OllamaModel string
	DemoMode    bool

	// Timeouts (seconds)
	ProbeTimeout    int
	GenerateTimeout int
	ExtractTimeout  int

	// Ingestion
	MaxPDFPages int

	// Rate limiting for generation endpoints
	GenerateRatePerMin int

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		Port:               getEnvOrDefault("PORT", "8080"),
		Env:                getEnvOrDefault("ENV", "development"),
		OllamaURL:          getEnvOrDefault("OLLAMA_URL", "http://localhost:11434"),
		OllamaModel:        getEnvOrDefault("OLLAMA_MODEL", "llama3.2"),
		DemoMode:           getEnvAsBoolOrDefault("DEMO_MODE", false),
		ProbeTimeout:       getEnvAsIntOrDefault("PROBE_TIMEOUT_SECONDS", 3),
		GenerateTimeout:    getEnvAsIntOrDefault("GENERATE_TIMEOUT_SECONDS", 120),
		ExtractTimeout:     getEnvAsIntOrDefault("EXTRACT_TIMEOUT_SECONDS", 30),
		MaxPDFPages:        getEnvAsIntOrDefault("MAX_PDF_PAGES", 100),
		GenerateRatePerMin: getEnvAsIntOrDefault("GENERATE_RATE_PER_MINUTE", 20),
		FrontendURL:        getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsBoolOrDefault(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}
