package config

import (
	"log"
	"os"
	"strconv"

	"github.com/beka-birhanu/vinom-level/level"
	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP   string // Host IP for the server
	RESTPort int    // Port for the REST API
	GinMode  string // Mode for the Gin framework (e.g., release, debug, test)

	DBHost     string // Hostname or IP address for the database
	DBPort     int    // Port number for the database
	DBUser     string // Username for the database
	DBPassword string // Password for the database
	DBName     string // Name of the database

	RedisAddr     string // host:port of the Redis server holding locks and leaderboards
	RedisPassword string

	JWTSecret string // Secret key for JWT signing
	JWTIssuer string // Issuer claim for JWTs

	LogFile       string // Rotated log file; empty logs to stdout only
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int

	MazeRows          int
	MazeColumns       int
	MazeCellSize      float64
	MazeWallHeight    float64
	MazeWallThickness float64
	LevelCoins        int
	LevelTreasures    int
	LevelPresetsFile  string // Optional YAML file of named level presets
}

// Load reads the configuration from the environment, loading a .env file first if present.
// Missing required keys are fatal.
func Load() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	defaults := level.DefaultConfig()
	return Config{
		HostIP:   mustGetEnv("HOST_IP"),
		RESTPort: mustGetEnvAsInt("REST_PORT"),
		GinMode:  getEnvWithDefault("GIN_MODE", "release"),

		DBHost:     mustGetEnv("DB_HOST"),
		DBPort:     mustGetEnvAsInt("DB_PORT"),
		DBUser:     mustGetEnv("DB_USER"),
		DBPassword: mustGetEnv("DB_PASS"),
		DBName:     mustGetEnv("DB_NAME"),

		RedisAddr:     getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnvWithDefault("REDIS_PASSWORD", ""),

		JWTSecret: mustGetEnv("JWT_SECRET"),
		JWTIssuer: mustGetEnv("JWT_ISSUER"),

		LogFile:       getEnvWithDefault("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvAsIntWithDefault("LOG_MAX_SIZE_MB", 100),
		LogMaxBackups: getEnvAsIntWithDefault("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getEnvAsIntWithDefault("LOG_MAX_AGE_DAYS", 28),

		MazeRows:          getEnvAsIntWithDefault("MAZE_ROWS", defaults.Rows),
		MazeColumns:       getEnvAsIntWithDefault("MAZE_COLUMNS", defaults.Cols),
		MazeCellSize:      getEnvAsFloatWithDefault("MAZE_CELL_SIZE", defaults.CellSize),
		MazeWallHeight:    getEnvAsFloatWithDefault("MAZE_WALL_HEIGHT", defaults.WallHeight),
		MazeWallThickness: getEnvAsFloatWithDefault("MAZE_WALL_THICKNESS", defaults.WallThickness),
		LevelCoins:        getEnvAsIntWithDefault("LEVEL_COINS", defaults.Coins.Count),
		LevelTreasures:    getEnvAsIntWithDefault("LEVEL_TREASURES", defaults.Treasures.Count),
		LevelPresetsFile:  getEnvWithDefault("LEVEL_PRESETS_FILE", ""),
	}
}

// LevelDefaults returns the level configuration used when a request names no preset.
func (c Config) LevelDefaults() level.Config {
	cfg := level.DefaultConfig()
	cfg.Rows = c.MazeRows
	cfg.Cols = c.MazeColumns
	cfg.CellSize = c.MazeCellSize
	cfg.WallHeight = c.MazeWallHeight
	cfg.WallThickness = c.MazeWallThickness
	cfg.Coins.Count = c.LevelCoins
	cfg.Treasures.Count = c.LevelTreasures
	return cfg
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

// getEnvAsIntWithDefault parses an integer variable, falling back to defaultValue when unset or malformed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[APP] [WARNING] Environment variable %s must be an integer, using %d: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}

// getEnvAsFloatWithDefault parses a float variable, falling back to defaultValue when unset or malformed.
func getEnvAsFloatWithDefault(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("[APP] [WARNING] Environment variable %s must be a number, using %g: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}
