package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hrms_backend/internals/configs"
	"hrms_backend/internals/databases/migrations"
)

var DB *gorm.DB

// BuildDSN prefers DATABASE_URL and otherwise assembles a postgres URL
// from the discrete DB_* settings.
func BuildDSN(cfg configs.AppConfig) string {
	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.DBUser, cfg.DBPassword),
		Host:   cfg.DBHost + ":" + cfg.DBPort,
		Path:   "/" + cfg.DBName,
	}
	q := url.Values{}
	q.Set("sslmode", cfg.DBSSLMode)
	q.Set("application_name", "hrms_backend")
	if cfg.DBStmtTimeoutMS > 0 {
		q.Set("options", fmt.Sprintf("-c statement_timeout=%d", cfg.DBStmtTimeoutMS))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func ConnectDB(cfg configs.AppConfig) error {
	configs.Log.Info("connecting to PostgreSQL...")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  BuildDSN(cfg),
		PreferSimpleProtocol: true, // PgBouncer transaction pooling friendly
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	DB = db
	configs.Log.Info("DB connected")
	return nil
}

func TunePool(cfg configs.AppConfig) {
	sqlDB, err := DB.DB()
	if err != nil {
		configs.Log.WithError(err).Warn("pool tune failed")
		return
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates the schema when it is missing.
func Migrate(ctx context.Context) error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return migrations.Apply(ctx, sqlDB)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			configs.Log.WithError(err).Warn("warm-up ping failed")
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

func Close() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
