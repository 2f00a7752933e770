package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-level/api"
	api_i "github.com/beka-birhanu/vinom-level/api/i"
	"github.com/beka-birhanu/vinom-level/api/identity"
	levelapi "github.com/beka-birhanu/vinom-level/api/level"
	"github.com/beka-birhanu/vinom-level/config"
	"github.com/beka-birhanu/vinom-level/infrastruture/leaderboard"
	"github.com/beka-birhanu/vinom-level/infrastruture/lock"
	logger "github.com/beka-birhanu/vinom-level/infrastruture/log"
	"github.com/beka-birhanu/vinom-level/infrastruture/repo"
	"github.com/beka-birhanu/vinom-level/infrastruture/token"
	general_i "github.com/beka-birhanu/vinom-level/interfaces/general"
	"github.com/beka-birhanu/vinom-level/level"
	"github.com/beka-birhanu/vinom-level/service"
	"github.com/beka-birhanu/vinom-level/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	lockExpiry     = 5 * time.Second
	leaderboardTTL = 0 // boards never expire
)

// Global variables for dependencies
var (
	envs            config.Config
	logOutput       io.Writer = os.Stdout
	mongoClient     *mongo.Client
	redisClient     *redis.Client
	playerRepo      *repo.PlayerRepo
	levelRepo       *repo.LevelRepo
	locker          i.Locker
	board           i.Leaderboard
	jwtTokenizer    i.Tokenizer
	authService     i.Authenticator
	levelService    i.LevelManager
	authController  api_i.Controller
	levelController api_i.Controller
	router          *api.Router
	appLogger       general_i.Logger
)

func newLogger(prefix, color string) general_i.Logger {
	l, err := logger.New(prefix, color, logOutput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating %s logger: %v\n", prefix, err)
		os.Exit(1)
	}
	return l
}

func initLogging() (closeLog func()) {
	if envs.LogFile == "" {
		appLogger = newLogger("APP", config.ColorGreen)
		return func() {}
	}

	rotating := logger.NewRotatingWriter(envs.LogFile, envs.LogMaxSizeMB, envs.LogMaxBackups, envs.LogMaxAgeDays)
	logOutput = io.MultiWriter(os.Stdout, rotating)
	gin.DefaultWriter = logOutput
	appLogger = newLogger("APP", config.ColorGreen)
	appLogger.Info(fmt.Sprintf("Logging to %s", envs.LogFile))
	return func() { _ = rotating.Close() }
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", envs.DBUser, envs.DBPassword, envs.DBHost, envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRepos(ctx context.Context) {
	playerRepo = repo.NewPlayerRepo(mongoClient, envs.DBName, "players")
	if err := playerRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Indexing players: %v", err))
		os.Exit(1)
	}

	levelRepo = repo.NewLevelRepo(mongoClient, envs.DBName, "levels")
	if err := levelRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Indexing levels: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Player and level repositories initialized")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     envs.RedisAddr,
		Password: envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}

	locker = lock.NewRedsyncLocker(redisClient, lockExpiry)
	board = leaderboard.NewRedisLeaderboard(redisClient, "", leaderboardTTL)
	appLogger.Info("Connected to Redis")
}

func initJWTTokenizer() {
	var err error
	jwtTokenizer, err = token.NewJwtService(envs.JWTSecret, envs.JWTIssuer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating JWT tokenizer: %v", err))
		os.Exit(1)
	}
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(playerRepo, jwtTokenizer, newLogger("AUTH", config.ColorBlue))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func loadPresets() map[string]level.Config {
	if envs.LevelPresetsFile == "" {
		return nil
	}
	f, err := os.Open(envs.LevelPresetsFile)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Opening level presets: %v", err))
		os.Exit(1)
	}
	defer f.Close()

	presets, err := level.LoadPresets(f)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Loading level presets: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Loaded %d level presets from %s", len(presets), envs.LevelPresetsFile))
	return presets
}

func initLevelService() {
	var err error
	levelService, err = service.NewLevelService(&service.LevelServiceConfig{
		Levels:      levelRepo,
		Players:     playerRepo,
		Locker:      locker,
		Leaderboard: board,
		Defaults:    envs.LevelDefaults(),
		Presets:     loadPresets(),
		Logger:      newLogger("LEVEL", config.ColorMagenta),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating level service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Level service initialized")
}

func initControllers() {
	var err error
	authController = identity.NewIdentityServer(authService)
	levelController, err = levelapi.NewLevelController(levelService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating level controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", envs.HostIP, envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, levelController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	envs = config.Load()
	closeLog := initLogging()
	defer closeLog()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	initRepos(ctx)

	initRedis(ctx)
	defer redisClient.Close()

	initJWTTokenizer()
	initAuthService()
	initLevelService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
