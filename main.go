package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/folioforge/portfolio-backend/api"
	"github.com/folioforge/portfolio-backend/autosave"
	"github.com/folioforge/portfolio-backend/cache"
	"github.com/folioforge/portfolio-backend/config"
	"github.com/folioforge/portfolio-backend/database"
	"github.com/folioforge/portfolio-backend/models"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()

	connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		config.GetString(c, "DB_HOST", "localhost"),
		config.GetString(c, "DB_USER", "postgres"),
		config.GetString(c, "DB_PASSWORD", ""),
		config.GetString(c, "DB_NAME", "portfolio"),
		config.GetString(c, "DB_PORT", "5432"),
		config.GetString(c, "DB_SSLMODE", "disable"),
	)

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		fmt.Printf("Error enabling uuid-ossp extension: %v\n", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(&models.Portfolio{}); err != nil {
		fmt.Printf("Error running migrations: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.GetString(c, "REDIS_ADDR", "localhost:6379"),
		Password: config.GetString(c, "REDIS_PASSWORD", ""),
		DB:       config.GetInt(c, "REDIS_DB", 0),
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		fmt.Printf("Error connecting to redis: %v\n", err)
		os.Exit(1)
	}

	previewTTL := config.GetDuration(c, "PREVIEW_TTL", 10*time.Minute)
	store := cache.New(rdb, previewTTL)

	repo := currentDB.PortfolioRepo()
	scheduler := autosave.New(
		func(_ context.Context, userID uuid.UUID, rec *models.RawPortfolio) error {
			return repo.SaveRaw(userID, rec)
		},
		autosave.WithQuietPeriod(config.GetDuration(c, "AUTOSAVE_QUIET_PERIOD", 2*time.Second)),
	)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, store, scheduler)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	// in-flight quiet periods hold unsaved edits; drain them before exit
	flushCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := scheduler.FlushAll(flushCtx); err != nil {
		fmt.Printf("Error flushing pending saves: %v\n", err)
	}
	cancel()
	scheduler.Close()

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
