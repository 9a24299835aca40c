// Package infra provides the infrastructure wiring: the database connection
// pool and the GORM-backed repository implementations underneath it.
package infra

import (
	"errors"
	"time"

	"github.com/finops/backoffice/infra/repository/bank"
	"github.com/finops/backoffice/infra/repository/card"
	"github.com/finops/backoffice/infra/repository/client"
	"github.com/finops/backoffice/infra/repository/profiler"
	"github.com/finops/backoffice/infra/repository/transaction"
	"github.com/finops/backoffice/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens the pooled Postgres connection. SQL logging follows
// the application environment.
func NewDBConnection(cnf config.DBConfig, appEnv string) (*gorm.DB, error) {
	databaseUrl := cnf.Url
	if databaseUrl == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	var logMode logger.LogLevel
	if appEnv == "development" {
		logMode = logger.Info
	} else {
		logMode = logger.Silent
	}

	connection, err := gorm.Open(postgres.Open(databaseUrl), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return connection, nil
}

// AutoMigrate creates or updates the schema for every persisted model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&client.Client{},
		&bank.Bank{},
		&card.Card{},
		&transaction.Transaction{},
		&profiler.Client{},
		&profiler.Bank{},
		&profiler.Profile{},
		&profiler.Transaction{},
	)
}
