package db

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v4/pgxpool"
)

const DEFAULT_TEST_MIGRATIONS_PATH = "../../../migrations"

// SkipWithoutDatabase skips database backed tests unless TEST_POSTGRESQL_URL is set.
func SkipWithoutDatabase(t *testing.T) {
	t.Helper()
	if os.Getenv("TEST_POSTGRESQL_URL") == "" {
		t.Skip("TEST_POSTGRESQL_URL is not set.")
	}
}

func CreateTestPool() *pgxpool.Pool {
	connString := os.Getenv("TEST_POSTGRESQL_URL")
	if connString == "" {
		panic("TEST_POSTGRESQL_URL must be set.")
	}
	migrationsPath := os.Getenv("TEST_MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = DEFAULT_TEST_MIGRATIONS_PATH
	}
	if err := Migrate(connString, migrationsPath); err != nil {
		panic(fmt.Sprintf("Could not apply DB migrations %v.", err))
	}

	pool, err := pgxpool.Connect(context.Background(), connString)
	if err != nil {
		panic("Could not connect to the database.")
	}
	return pool
}

func TruncateTables(pool *pgxpool.Pool) {
	_, err := pool.Exec(
		context.Background(),
		`TRUNCATE dish_category, dish, category, restaurant, session, verification_code, "user" RESTART IDENTITY CASCADE`,
	)
	if err != nil {
		panic("Could not truncate DB tables.")
	}
}
