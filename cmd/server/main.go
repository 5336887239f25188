package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"inventory/internal/api"
	"inventory/internal/db"
)

func main() {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	dbPath := flag.String("db", envOr("INVENTORY_DB", "inventory.sqlite3"), "path to SQLite database file")
	addr := flag.String("addr", envOr("INVENTORY_ADDR", ":8080"), "listen address")
	flag.Parse()

	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	handler := api.LoggingMiddleware(api.NewRouter(database))

	log.Printf("Server listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// envOr returns the environment variable's value, or fallback if unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
