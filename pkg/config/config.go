package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string
	StorageBackend  string
	StorageBucket   string
	FolderPath      string
	SessionTTL      int64
	QueueSize       int64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		StorageBackend:  getEnv("STORAGE_BACKEND", "local"),
		StorageBucket:   getEnv("STORAGE_BUCKET", ""),
		FolderPath:      getEnv("FOLDER_PATH", "/tmp/filedock"),
		SessionTTL:      getEnvAsInt64("SESSION_TTL", 24*60*60), // 24 hours
		QueueSize:       getEnvAsInt64("THUMBNAIL_QUEUE_SIZE", 64),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
