// Command setup creates the application database if it does not exist and
// applies all pending goose migrations. Run it once before first start:
//
//	go run ./cmd/setup
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
)

const migrationsDir = "migrations"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	ctx := context.Background()
	if err := ensureDatabase(ctx, host, port, user, password, dbname); err != nil {
		log.Fatalf("Database setup failed: %v", err)
	}

	if err := migrate(host, port, user, password, dbname); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	fmt.Println("Setup completed.")
}

// ensureDatabase connects to the maintenance database and creates the target
// database when it is missing.
func ensureDatabase(ctx context.Context, host, port, user, password, dbname string) error {
	adminConn := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", user, password, host, port)
	conn, err := pgx.Connect(ctx, adminConn)
	if err != nil {
		return fmt.Errorf("connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbname).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check database existence: %w", err)
	}

	if exists {
		fmt.Printf("Database %s already exists.\n", dbname)
		return nil
	}

	fmt.Printf("Creating database %s...\n", dbname)
	if _, err := conn.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", dbname)); err != nil {
		return fmt.Errorf("create database: %w", err)
	}
	return nil
}

// migrate applies all pending migrations via goose over the pgx stdlib driver.
func migrate(host, port, user, password, dbname string) error {
	connString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)
	db, err := goose.OpenDBWithDriver("pgx", connString)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	fmt.Println("Running migrations...")
	return goose.Up(db, migrationsDir)
}
