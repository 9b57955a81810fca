package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Store backends selectable with STORE_BACKEND.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreMongo  = "mongo"
	StoreFile   = "file"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP          string // Host IP for the server
	RESTPort        int    // Port for the REST API
	GinMode         string // Mode for the Gin framework (e.g., release, debug, test)
	StoreBackend    string // One of memory, redis, mongo, file
	RedisAddr       string // Address of the Redis server
	RedisPassword   string // Password for Redis
	RedisDB         int    // Redis database index
	StoreTTLSeconds int    // Expiration of stored mazes in Redis, 0 keeps them forever
	DBHost          string // Hostname or IP address for the database
	DBPort          int    // Port number for the database
	DBUser          string // Username for the database
	DBPassword      string // Password for the database
	DBName          string // Name of the database
	StoreDir        string // Directory of the file store
	Encoding        string // Snapshot encoding, json or yaml
	MaxMazeSide     int    // Largest accepted size of any maze axis
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	c := Config{
		HostIP:          getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:        getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:         getEnvWithDefault("GIN_MODE", "release"),
		StoreBackend:    getEnvWithDefault("STORE_BACKEND", StoreMemory),
		StoreTTLSeconds: getEnvAsIntWithDefault("STORE_TTL_SECONDS", 0),
		StoreDir:        getEnvWithDefault("STORE_DIR", "./data"),
		Encoding:        getEnvWithDefault("ENCODING", "json"),
		MaxMazeSide:     getEnvAsIntWithDefault("MAX_MAZE_SIDE", 64),
	}

	// Connection settings are only required by the backend that uses them.
	switch c.StoreBackend {
	case StoreRedis:
		c.RedisAddr = mustGetEnv("REDIS_ADDR")
		c.RedisPassword = getEnvWithDefault("REDIS_PASSWORD", "")
		c.RedisDB = getEnvAsIntWithDefault("REDIS_DB", 0)
	case StoreMongo:
		c.DBHost = mustGetEnv("DB_HOST")
		c.DBPort = mustGetEnvAsInt("DB_PORT")
		c.DBUser = mustGetEnv("DB_USER")
		c.DBPassword = mustGetEnv("DB_PASS")
		c.DBName = mustGetEnv("DB_NAME")
	}

	return c
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault is getEnvWithDefault for integers. Unparsable values are fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	if _, exists := os.LookupEnv(key); !exists {
		return defaultValue
	}
	return mustGetEnvAsInt(key)
}
