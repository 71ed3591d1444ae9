package repository

import (
	"context"
	"fmt"
	"time"

	"batas-backend/models"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReferenceStore supplies the read-only statute list and lawyer directory.
// Both lists are returned in the store's natural order.
type ReferenceStore interface {
	Laws(ctx context.Context) ([]models.RelevantLaw, error)
	Lawyers(ctx context.Context) ([]models.Lawyer, error)
}

// StaticReferenceStore serves a fixed in-memory catalog
type StaticReferenceStore struct {
	laws    []models.RelevantLaw
	lawyers []models.Lawyer
}

// NewStaticReferenceStore creates a store over the given lists.
// Nil lists fall back to the built-in catalog.
func NewStaticReferenceStore(laws []models.RelevantLaw, lawyers []models.Lawyer) *StaticReferenceStore {
	if laws == nil {
		laws = DefaultLaws()
	}
	if lawyers == nil {
		lawyers = DefaultLawyers()
	}
	return &StaticReferenceStore{laws: laws, lawyers: lawyers}
}

// Laws returns a copy of the statute list
func (s *StaticReferenceStore) Laws(ctx context.Context) ([]models.RelevantLaw, error) {
	return append([]models.RelevantLaw(nil), s.laws...), nil
}

// Lawyers returns a copy of the lawyer directory
func (s *StaticReferenceStore) Lawyers(ctx context.Context) ([]models.Lawyer, error) {
	return append([]models.Lawyer(nil), s.lawyers...), nil
}

// PostgresReferenceStore reads the catalog from the reference_laws and
// reference_lawyers tables
type PostgresReferenceStore struct {
	db *pgxpool.Pool
}

// NewPostgresReferenceStore creates a new Postgres-backed reference store
func NewPostgresReferenceStore(db *pgxpool.Pool) *PostgresReferenceStore {
	return &PostgresReferenceStore{db: db}
}

// Laws retrieves all statutes ordered by sort_order
func (r *PostgresReferenceStore) Laws(ctx context.Context) ([]models.RelevantLaw, error) {
	query := `
		SELECT title, citation, description, relevance
		FROM reference_laws
		ORDER BY sort_order, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query reference laws: %w", err)
	}
	defer rows.Close()

	laws := make([]models.RelevantLaw, 0)
	for rows.Next() {
		var law models.RelevantLaw
		var relevance string
		if err := rows.Scan(&law.Title, &law.Law, &law.Description, &relevance); err != nil {
			return nil, fmt.Errorf("failed to scan reference law: %w", err)
		}
		law.Relevance = models.Level(relevance)
		laws = append(laws, law)
	}

	return laws, rows.Err()
}

// Lawyers retrieves the lawyer directory ordered by sort_order
func (r *PostgresReferenceStore) Lawyers(ctx context.Context) ([]models.Lawyer, error) {
	query := `
		SELECT id, name, specialization, location, contact,
			COALESCE(email, ''), COALESCE(starting_price, ''), COALESCE(distance, ''),
			rating, COALESCE(experience, ''), COALESCE(bio, ''),
			COALESCE(education, '{}'), COALESCE(bar_membership, ''),
			COALESCE(practice_areas, '{}'), COALESCE(languages, '{}'),
			COALESCE(office_address, ''), COALESCE(consultation_fee, ''),
			COALESCE(availability, ''), cases_handled, COALESCE(success_rate, ''),
			latitude, longitude
		FROM reference_lawyers
		ORDER BY sort_order, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query reference lawyers: %w", err)
	}
	defer rows.Close()

	lawyers := make([]models.Lawyer, 0)
	for rows.Next() {
		var l models.Lawyer
		err := rows.Scan(
			&l.ID,
			&l.Name,
			&l.Specialization,
			&l.Location,
			&l.Contact,
			&l.Email,
			&l.StartingPrice,
			&l.Distance,
			&l.Rating,
			&l.Experience,
			&l.Bio,
			&l.Education,
			&l.BarMembership,
			&l.PracticeAreas,
			&l.Languages,
			&l.OfficeAddress,
			&l.ConsultationFee,
			&l.Availability,
			&l.CasesHandled,
			&l.SuccessRate,
			&l.Latitude,
			&l.Longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reference lawyer: %w", err)
		}
		lawyers = append(lawyers, l)
	}

	return lawyers, rows.Err()
}

// ReplaceLaws swaps the whole statute list in one transaction.
// List order becomes sort_order.
func (r *PostgresReferenceStore) ReplaceLaws(ctx context.Context, laws []models.RelevantLaw) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM reference_laws`); err != nil {
		return fmt.Errorf("failed to clear reference laws: %w", err)
	}

	query := `
		INSERT INTO reference_laws (title, citation, description, relevance, sort_order)
		VALUES ($1, $2, $3, $4, $5)`
	for i, law := range laws {
		if _, err := tx.Exec(ctx, query, law.Title, law.Law, law.Description, string(law.Relevance), i); err != nil {
			return fmt.Errorf("failed to insert law %q: %w", law.Law, err)
		}
	}

	return tx.Commit(ctx)
}

// UpsertLawyers inserts or updates lawyers by id.
// List order becomes sort_order.
func (r *PostgresReferenceStore) UpsertLawyers(ctx context.Context, lawyers []models.Lawyer) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO reference_lawyers (
			id, name, specialization, location, contact, email, starting_price,
			distance, rating, experience, bio, education, bar_membership,
			practice_areas, languages, office_address, consultation_fee,
			availability, cases_handled, success_rate, latitude, longitude, sort_order
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			specialization = EXCLUDED.specialization,
			location = EXCLUDED.location,
			contact = EXCLUDED.contact,
			email = EXCLUDED.email,
			starting_price = EXCLUDED.starting_price,
			distance = EXCLUDED.distance,
			rating = EXCLUDED.rating,
			experience = EXCLUDED.experience,
			bio = EXCLUDED.bio,
			education = EXCLUDED.education,
			bar_membership = EXCLUDED.bar_membership,
			practice_areas = EXCLUDED.practice_areas,
			languages = EXCLUDED.languages,
			office_address = EXCLUDED.office_address,
			consultation_fee = EXCLUDED.consultation_fee,
			availability = EXCLUDED.availability,
			cases_handled = EXCLUDED.cases_handled,
			success_rate = EXCLUDED.success_rate,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			sort_order = EXCLUDED.sort_order,
			updated_at = NOW()`

	for i, l := range lawyers {
		_, err := tx.Exec(ctx, query,
			l.ID, l.Name, l.Specialization, l.Location, l.Contact, l.Email, l.StartingPrice,
			l.Distance, l.Rating, l.Experience, l.Bio, l.Education, l.BarMembership,
			l.PracticeAreas, l.Languages, l.OfficeAddress, l.ConsultationFee,
			l.Availability, l.CasesHandled, l.SuccessRate, l.Latitude, l.Longitude, i,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert lawyer %s: %w", l.ID, err)
		}
	}

	return tx.Commit(ctx)
}

const (
	lawsCacheKey    = "laws"
	lawyersCacheKey = "lawyers"
)

// CachedReferenceStore keeps the last reference reads in an expiring LRU so a
// database-backed catalog is not re-read on every request. Each list is
// cached under a single key.
type CachedReferenceStore struct {
	next    ReferenceStore
	laws    *expirable.LRU[string, []models.RelevantLaw]
	lawyers *expirable.LRU[string, []models.Lawyer]
}

// NewCachedReferenceStore wraps next with a cache whose entries live for ttl
func NewCachedReferenceStore(next ReferenceStore, ttl time.Duration) *CachedReferenceStore {
	return &CachedReferenceStore{
		next:    next,
		laws:    expirable.NewLRU[string, []models.RelevantLaw](1, nil, ttl),
		lawyers: expirable.NewLRU[string, []models.Lawyer](1, nil, ttl),
	}
}

// Laws returns cached statutes or loads them from the wrapped store
func (c *CachedReferenceStore) Laws(ctx context.Context) ([]models.RelevantLaw, error) {
	if laws, ok := c.laws.Get(lawsCacheKey); ok {
		return append([]models.RelevantLaw(nil), laws...), nil
	}
	laws, err := c.next.Laws(ctx)
	if err != nil {
		return nil, err
	}
	c.laws.Add(lawsCacheKey, laws)
	return append([]models.RelevantLaw(nil), laws...), nil
}

// Lawyers returns the cached directory or loads it from the wrapped store
func (c *CachedReferenceStore) Lawyers(ctx context.Context) ([]models.Lawyer, error) {
	if lawyers, ok := c.lawyers.Get(lawyersCacheKey); ok {
		return append([]models.Lawyer(nil), lawyers...), nil
	}
	lawyers, err := c.next.Lawyers(ctx)
	if err != nil {
		return nil, err
	}
	c.lawyers.Add(lawyersCacheKey, lawyers)
	return append([]models.Lawyer(nil), lawyers...), nil
}
