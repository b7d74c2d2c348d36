package main

import "github.com/dmitrymomot/clubledger/pkg/environment"

// Store drivers accepted in STORE_DRIVER.
const (
	driverMemory   = "memory"
	driverMongo    = "mongo"
	driverPostgres = "postgres"
)

// Config is the process configuration. Driver specific settings
// (MONGODB_*, PG_*) are parsed only for the selected driver.
type Config struct {
	Env      environment.Environment `env:"APP_ENV" envDefault:"development"`
	LogLevel string                  `env:"LOG_LEVEL"`

	StoreDriver  string `env:"STORE_DRIVER" envDefault:"memory"`
	StoreFixture string `env:"STORE_FIXTURE"`

	ManualLessonsIncrement int    `env:"MANUAL_LESSONS_INCREMENT" envDefault:"8"`
	PaysyncSchedule        string `env:"PAYSYNC_SCHEDULE"`
	ImportPhoneRegion      string `env:"IMPORT_PHONE_REGION" envDefault:"RU"`
}
