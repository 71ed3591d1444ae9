package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

var tables = []struct {
	name string
	sql  string
}{
	{
		name: "reference_laws",
		sql: `
CREATE TABLE IF NOT EXISTS reference_laws (
    id SERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    citation TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    relevance VARCHAR(10) NOT NULL DEFAULT 'medium' CHECK (relevance IN ('low', 'medium', 'high')),
    sort_order INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP DEFAULT NOW()
);`,
	},
	{
		name: "reference_lawyers",
		sql: `
CREATE TABLE IF NOT EXISTS reference_lawyers (
    id VARCHAR(100) PRIMARY KEY,
    name TEXT NOT NULL,
    specialization TEXT NOT NULL,
    location TEXT NOT NULL,
    contact TEXT NOT NULL,
    email TEXT,
    starting_price TEXT,
    distance TEXT,
    rating DOUBLE PRECISION,
    experience TEXT,
    bio TEXT,
    education TEXT[],
    bar_membership TEXT,
    practice_areas TEXT[],
    languages TEXT[],
    office_address TEXT,
    consultation_fee TEXT,
    availability TEXT,
    cases_handled INTEGER,
    success_rate TEXT,
    latitude DOUBLE PRECISION,
    longitude DOUBLE PRECISION,
    sort_order INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);`,
	},
	{
		name: "attachments",
		sql: `
CREATE TABLE IF NOT EXISTS attachments (
    id UUID PRIMARY KEY,
    filename TEXT NOT NULL,
    mime_type VARCHAR(255) NOT NULL,
    size BIGINT NOT NULL,
    storage_path TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);`,
	},
}

var indexes = []struct {
	name string
	sql  string
}{
	{
		name: "Law ordering",
		sql:  "CREATE INDEX IF NOT EXISTS idx_reference_laws_sort ON reference_laws(sort_order);",
	},
	{
		name: "Lawyer ordering",
		sql:  "CREATE INDEX IF NOT EXISTS idx_reference_lawyers_sort ON reference_lawyers(sort_order);",
	},
	{
		name: "Lawyer specialization filtering",
		sql:  "CREATE INDEX IF NOT EXISTS idx_reference_lawyers_specialization ON reference_lawyers(LOWER(specialization));",
	},
	{
		name: "Attachment age",
		sql:  "CREATE INDEX IF NOT EXISTS idx_attachments_created_at ON attachments(created_at);",
	},
}

func main() {
	reset := flag.Bool("reset", false, "drop existing tables before creating them")
	flag.Parse()

	_ = godotenv.Load()

	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if *reset {
		for i := len(tables) - 1; i >= 0; i-- {
			if _, err := pool.Exec(ctx, "DROP TABLE IF EXISTS "+tables[i].name+" CASCADE"); err != nil {
				log.Fatalf("Failed to drop %s: %v", tables[i].name, err)
			}
			log.Printf("✓ Dropped %s (if any)", tables[i].name)
		}
	}

	for _, t := range tables {
		if _, err := pool.Exec(ctx, t.sql); err != nil {
			log.Fatalf("Failed to create %s table: %v", t.name, err)
		}
		log.Printf("✓ Created %s table", t.name)
	}

	for _, idx := range indexes {
		if _, err := pool.Exec(ctx, idx.sql); err != nil {
			log.Printf("Warning: Failed to create index %s: %v", idx.name, err)
		} else {
			log.Printf("✓ Created index: %s", idx.name)
		}
	}

	fmt.Println("\n✅ Database schema created successfully!")
	fmt.Printf("   Tables: %d\n", len(tables))
	fmt.Println("   Next: go run ./cmd/seed-reference to load the reference catalog")
}
