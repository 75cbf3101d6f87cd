package config

import "os"

type Config struct {
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	JWTSecret        string
	ServerPort       string
	OperatorEmail    string
	OperatorPassword string
	PlayerAPIKey     string
	RedisAddr        string
	AuthTimeout      string
	LogDev           bool
}

func Load() *Config {
	return &Config{
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", "postgres"),
		DBName:           getEnv("DB_NAME", "quizadmin"),
		JWTSecret:        getEnv("JWT_SECRET", "super-secret-key-change-me"),
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		OperatorEmail:    getEnv("OPERATOR_EMAIL", "admin@gmail.com"),
		OperatorPassword: getEnv("OPERATOR_PASSWORD", ""),
		PlayerAPIKey:     getEnv("PLAYER_API_KEY", "player-api-key-change-me"),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		AuthTimeout:      getEnv("AUTH_TIMEOUT_SECONDS", "5"),
		LogDev:           os.Getenv("LOG_DEV") == "1",
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
