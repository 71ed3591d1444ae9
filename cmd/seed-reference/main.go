package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"batas-backend/models"
	"batas-backend/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// catalog is the seed file layout; a missing section keeps the built-in list
type catalog struct {
	Laws    []models.RelevantLaw `json:"laws"`
	Lawyers []models.Lawyer      `json:"lawyers"`
}

func main() {
	file := flag.String("file", "", "JSON file with \"laws\" and \"lawyers\"; defaults to the built-in catalog")
	flag.Parse()

	_ = godotenv.Load()

	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		log.Fatal("DATABASE_URL is required")
	}

	cat, err := loadCatalog(*file)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Verify tables exist
	for _, table := range []string{"reference_laws", "reference_lawyers"} {
		var exists bool
		err := pool.QueryRow(ctx, "SELECT EXISTS (SELECT FROM information_schema.tables WHERE table_name = $1)", table).Scan(&exists)
		if err != nil {
			log.Fatalf("Failed to check table existence: %v", err)
		}
		if !exists {
			log.Fatalf("%s table does not exist. Please run: go run ./cmd/create-schema", table)
		}
	}

	store := repository.NewPostgresReferenceStore(pool)
	if err := store.ReplaceLaws(ctx, cat.Laws); err != nil {
		log.Fatalf("Failed to seed laws: %v", err)
	}
	log.Printf("✓ Seeded %d laws", len(cat.Laws))

	if err := store.UpsertLawyers(ctx, cat.Lawyers); err != nil {
		log.Fatalf("Failed to seed lawyers: %v", err)
	}
	log.Printf("✓ Seeded %d lawyers", len(cat.Lawyers))

	fmt.Println("\n✅ Reference catalog loaded")
}

// loadCatalog reads path, or returns the built-in catalog when path is empty
func loadCatalog(path string) (*catalog, error) {
	cat := &catalog{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, cat); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	if cat.Laws == nil {
		cat.Laws = repository.DefaultLaws()
	}
	if cat.Lawyers == nil {
		cat.Lawyers = repository.DefaultLawyers()
	}

	if err := validate(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func validate(cat *catalog) error {
	for i, law := range cat.Laws {
		if law.Title == "" || law.Law == "" {
			return fmt.Errorf("law %d: title and law are required", i)
		}
		if !law.Relevance.Valid() {
			return fmt.Errorf("law %d (%s): relevance must be low, medium or high", i, law.Law)
		}
	}

	seen := make(map[string]bool)
	for i, l := range cat.Lawyers {
		if l.ID == "" || l.Name == "" || l.Specialization == "" {
			return fmt.Errorf("lawyer %d: id, name and specialization are required", i)
		}
		if seen[l.ID] {
			return fmt.Errorf("lawyer %d: duplicate id %s", i, l.ID)
		}
		seen[l.ID] = true
	}
	return nil
}
