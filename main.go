package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/encoding"
	"github.com/beka-birhanu/vinom-maze/infrastruture/kvstore"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/infrastruture/repo"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	mazeStore      i.SaveStore
	mazeEncoder    i.Encoder
	registry       *prometheus.Registry
	mazeMetrics    *service.Metrics
	mazeService    i.MazeService
	mazeController api_i.Controller
	router         *api.Router
	appLogger      i.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

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

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
		DB:       config.Envs.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initStore(ctx context.Context) {
	switch config.Envs.StoreBackend {
	case config.StoreMemory:
		mazeStore = kvstore.NewMemory()
	case config.StoreRedis:
		initRedis(ctx)
		ttl := time.Duration(config.Envs.StoreTTLSeconds) * time.Second
		mazeStore = kvstore.NewRedis(redisClient, kvstore.WithTTL(ttl))
	case config.StoreMongo:
		initMongo(ctx)
		mazeStore = repo.NewMazeRepo(mongoClient, config.Envs.DBName, "mazes")
	case config.StoreFile:
		var err error
		mazeStore, err = kvstore.NewFile(config.Envs.StoreDir)
		if err != nil {
			appLogger.Error(fmt.Sprintf("Creating file store: %v", err))
			os.Exit(1)
		}
	default:
		appLogger.Error(fmt.Sprintf("Unknown store backend %q", config.Envs.StoreBackend))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Maze store initialized (%s)", config.Envs.StoreBackend))
}

func initEncoder() {
	var err error
	mazeEncoder, err = encoding.ByName(config.Envs.Encoding)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating encoder: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Encoder initialized (%s)", mazeEncoder.Name()))
}

func initMetrics() {
	registry = prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	var err error
	mazeMetrics, err = service.NewMetrics(registry)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Registering metrics: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Metrics initialized")
}

func initMazeService() {
	serviceLogger, err := logger.New("MAZE-SERVICE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service logger: %v", err))
		os.Exit(1)
	}

	mazeService, err = service.NewMazeService(&service.Config{
		Store:   mazeStore,
		Encoder: mazeEncoder,
		Logger:  serviceLogger,
		Metrics: mazeMetrics,
		MaxSide: config.Envs.MaxMazeSide,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewController(mazeService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:           fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:        "/api",
		Controllers:    []api_i.Controller{mazeController},
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	gin.SetMode(config.Envs.GinMode)

	initStore(ctx)
	defer func() {
		if mongoClient != nil {
			_ = mongoClient.Disconnect(context.Background())
		}
		if redisClient != nil {
			_ = redisClient.Close()
		}
	}()

	initEncoder()
	initMetrics()
	initMazeService()
	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
