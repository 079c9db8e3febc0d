package config

import (
	"os"
)

// Backend names accepted in STORAGE_BACKEND. The backend is chosen once
// at startup and never switched at runtime.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendDatabase = "database"
	BackendMongo    = "mongo"
)

type Config struct {
	Port           string
	GinMode        string
	SessionSecret  string
	StorageBackend string
	FileStorePath  string
	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	MongoURI       string
	MongoDatabase  string
	RedisHost      string
	RedisPort      string
	OpenAIAPIKey   string
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		SessionSecret:  getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		StorageBackend: getEnv("STORAGE_BACKEND", BackendMemory),
		FileStorePath:  getEnv("FILE_STORE_PATH", "horizon_data.json"),
		DBDriver:       getEnv("DB_DRIVER", "mysql"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "3306"),
		DBUser:         getEnv("DB_USER", "horizon"),
		DBPassword:     getEnv("DB_PASSWORD", "horizon"),
		DBName:         getEnv("DB_NAME", "horizon"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getEnv("MONGO_DB", "horizon"),
		RedisHost:      getEnv("REDIS_HOST", ""),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
