package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	api "fleetrental-backend/internal/api/http"
	"fleetrental-backend/internal/config"
	"fleetrental-backend/internal/jobs"
	"fleetrental-backend/internal/logger"
	"fleetrental-backend/internal/repository/postgres"
	"fleetrental-backend/internal/scheduler"
	"fleetrental-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting FleetRental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	if cfg.Database.Migrate {
		if err := postgres.RunMigrations(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	store := postgres.NewStore(db)

	contractSvc := service.NewContractService(
		store.ContractRepository,
		store.VehicleRepository,
		store.PaymentRepository,
		nil,
	)
	vehicleSvc := service.NewVehicleService(store.VehicleRepository, store.ContractRepository)
	scheduleSvc := service.NewScheduleService(store.ContractRepository, store.VehicleRepository, nil)
	paymentSvc := service.NewPaymentService(store.PaymentRepository, store.ContractRepository, nil)

	router := api.NewRouter(
		api.NewContractHandler(contractSvc),
		api.NewVehicleHandler(vehicleSvc),
		api.NewScheduleHandler(scheduleSvc),
		api.NewPaymentHandler(paymentSvc),
	)

	jobRunner := jobs.NewJobRunner(store, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}
