// Package bootstrap brings the infrastructure up in order: logger first,
// then the database connection, then migrations.
package bootstrap

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/restovik/reservebot/internal/config"
	"github.com/restovik/reservebot/internal/database"
	"github.com/restovik/reservebot/internal/logger"
)

// Options control the bootstrap pipeline. The function fields exist so tests
// can substitute the infrastructure steps.
type Options struct {
	Config *config.Config

	LoggerInit func(*config.Config) error
	Connect    func(config.DatabaseConfig) (*sqlx.DB, error)
	Migrate    func(config.DatabaseConfig) error
}

// Result exposes infrastructure initialized by the bootstrap pipeline.
type Result struct {
	DB *sqlx.DB
}

// Run initializes the logger, connects to the database, and applies migrations.
func Run(opts Options) (*Result, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("bootstrap: nil config provided")
	}

	loggerInit := opts.LoggerInit
	if loggerInit == nil {
		loggerInit = logger.Init
	}
	if err := loggerInit(opts.Config); err != nil {
		return nil, fmt.Errorf("bootstrap: logger init failed: %w", err)
	}

	connect := opts.Connect
	if connect == nil {
		connect = database.Connect
	}
	db, err := connect(opts.Config.Database)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: database initialization failed: %w", err)
	}

	migrate := opts.Migrate
	if migrate == nil {
		migrate = database.RunMigrations
	}
	if err := migrate(opts.Config.Database); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap: migrations failed: %w", err)
	}

	return &Result{DB: db}, nil
}
