package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"lesku_backend/internals/configs"
	database "lesku_backend/internals/databases"
	paymentService "lesku_backend/internals/features/finance/payment/service"
	"lesku_backend/internals/features/finance/scheduler"
	middlewares "lesku_backend/internals/middlewares"
	routes "lesku_backend/internals/route"
	adminSeeds "lesku_backend/internals/seeds/admins"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool
	database.ConnectDB()
	database.TunePool()
	database.Migrate()

	// Admin di-seed dari ENV (tidak ada endpoint pembuatan admin)
	adminSeeds.SeedAdmins(database.DB)

	// ✅ MIDTRANS
	paymentService.InitMidtrans(configs.GetEnv("MIDTRANS_SERVER_KEY"))

	// ⏱ pipeline bulanan: snapshot → reset → notify
	feeCron := scheduler.StartFeeCycleScheduler(database.DB)

	// ✅ Routes
	routes.SetupRoutes(app, database.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown: stop cron, tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if feeCron != nil {
		<-feeCron.Stop().Done()
	}
	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
