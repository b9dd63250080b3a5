package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	JWTSecret       string
	JWTExpiration   int // minutes
	BotToken        string
	ServerPort      string
	AuthorizedUsers []int64
	AdminUsers      []int64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	return &Config{
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBName:          getEnv("DB_NAME", "daggybot"),
		JWTSecret:       getEnv("JWT_SECRET", "super-secret-key-change-me"),
		JWTExpiration:   getEnvInt("JWT_EXPIRATION", 15),
		BotToken:        loadBotToken(getEnv("BOT_TOKEN_PATH", "secrets/bot_token.txt")),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		AuthorizedUsers: getEnvIDs("AUTHORIZED_USERS"),
		AdminUsers:      getEnvIDs("ADMIN_USERS"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
		log.Printf("invalid %s=%q, using %d", key, val, fallback)
	}
	return fallback
}

// getEnvIDs parses a comma-separated list of Telegram user IDs.
func getEnvIDs(key string) []int64 {
	val := os.Getenv(key)
	if val == "" {
		return nil
	}

	var ids []int64
	for _, part := range strings.Split(val, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			log.Printf("invalid user id %q in %s, skipping", part, key)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// loadBotToken reads the bot token from a file so the secret stays out of
// the environment and process listings.
func loadBotToken(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("bot token not readable at %s: %v", path, err)
		return ""
	}
	return strings.TrimSpace(string(data))
}
