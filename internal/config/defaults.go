package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			ExpirationSeconds: 3600,
			BcryptCost:        bcrypt.DefaultCost,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		CORS: CORS{
			Origin: "http://localhost:5173",
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		RateLimit: RateLimit{
			LoginAttempts: 5,
			Window:        time.Minute,
		},
		App: App{
			Version: "dev",
		},
	}
}
