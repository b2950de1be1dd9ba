package config

import "os"

// Storage backends selectable through the STORAGE variable.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Port                    string
	Env                     string
	Storage                 string
	PostgresConnStr         string
	JWTSecret               string
	FirebaseCredentialsPath string
	AdminUsername           string
	AdminEmail              string
	AdminPassword           string
}

func Load() *Config {
	return &Config{
		Port:                    getEnv("PORT", "8080"),
		Env:                     getEnv("ENV", "development"),
		Storage:                 getEnv("STORAGE", StoragePostgres),
		PostgresConnStr:         getEnv("POSTGRES_CONN_STR", ""),
		JWTSecret:               getEnv("JWT_SECRET", ""),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
		AdminUsername:           getEnv("ADMIN_USERNAME", "admin"),
		AdminEmail:              getEnv("ADMIN_EMAIL", "admin@bloghive.local"),
		AdminPassword:           getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
