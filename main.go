package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hrms_backend/internals/configs"
	database "hrms_backend/internals/databases"
	"hrms_backend/internals/middlewares/metrics"
	routes "hrms_backend/internals/route"
	"hrms_backend/internals/seeds"
)

func main() {
	cfg := configs.LoadEnv()
	configs.SetLogLevel(cfg.LogLevel)

	// 🔌 DB connect + pool + schema + warm-up
	if err := database.ConnectDB(cfg); err != nil {
		configs.Log.WithError(err).Fatal("database connection failed")
	}
	database.TunePool(cfg)

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Migrate(migrateCtx); err != nil {
		cancelMigrate()
		configs.Log.WithError(err).Fatal("schema migration failed")
	}
	if err := seeds.RunAllSeeds(migrateCtx, database.DB, cfg.SeedFile); err != nil {
		cancelMigrate()
		configs.Log.WithError(err).Fatal("seeding failed")
	}
	cancelMigrate()
	database.WarmUpQueries()

	deps, err := routes.NewDeps(database.DB)
	if err != nil {
		configs.Log.WithError(err).Fatal("wiring dependencies failed")
	}
	if sqlDB, err := database.DB.DB(); err == nil {
		if err := metrics.RegisterDBStats(sqlDB); err != nil {
			configs.Log.WithError(err).Warn("db stats collector not registered")
		}
	}

	app := routes.NewApp(cfg, deps)

	// Start server non-blocking
	go func() {
		configs.Log.Infof("✅ Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			configs.Log.WithError(err).Fatal("server error")
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		configs.Log.WithError(err).Warn("shutdown")
	}
	database.Close()
}
