package main

import (
	"context"
	"log"
	"os"

	"github.com/dworin/KidBank/internal/ledgermigrations"
)

func main() {
	dsn := os.Getenv("DB_URL")

	if dsn == "" {
		log.Fatal("DB_URL is not set")
	}

	err := ledgermigrations.Up(context.Background(), 999, dsn)

	if err != nil {
		log.Fatal(err)
	}
}
