package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	Version         string
	FirebaseProject string

	StorageEndpoint     string
	StorageRegion       string
	StorageBucket       string
	StorageAccessKey    string
	StorageSecretKey    string
	StoragePublicDomain string

	AIKey        string
	AIResource   string
	AIDeployment string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		Version:         getEnv("APP_VERSION", "dev"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),

		StorageEndpoint:     getEnv("R2_ENDPOINT", ""),
		StorageRegion:       getEnv("R2_REGION", "auto"),
		StorageBucket:       getEnv("R2_BUCKET_NAME", ""),
		StorageAccessKey:    getEnv("R2_ACCESS_KEY_ID", ""),
		StorageSecretKey:    getEnv("R2_SECRET_ACCESS_KEY", ""),
		StoragePublicDomain: getEnv("R2_PUBLIC_DOMAIN", ""),

		AIKey:        getEnv("AZURE_OPENAI_KEY", ""),
		AIResource:   getEnv("AZURE_OPENAI_RESOURCE", ""),
		AIDeployment: getEnv("AZURE_OPENAI_DEPLOYMENT", "gpt-4o-mini"),
	}

	// Storage and Firebase credentials have no usable defaults; refuse to start
	// without them. The AI key is checked per-request so the rest of the app
	// keeps working when it is absent.
	var missing []string
	for _, required := range []struct {
		name  string
		value string
	}{
		{"FIREBASE_PROJECT_ID", config.FirebaseProject},
		{"R2_ENDPOINT", config.StorageEndpoint},
		{"R2_BUCKET_NAME", config.StorageBucket},
		{"R2_ACCESS_KEY_ID", config.StorageAccessKey},
		{"R2_SECRET_ACCESS_KEY", config.StorageSecretKey},
	} {
		if required.value == "" {
			missing = append(missing, required.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
