package storage

import (
	"context"
	"database/sql"
	"fmt"

	"platefeed/internal/domain"
	"platefeed/internal/geo"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// interactionHistoryLimit bounds how much swipe history feeds one profile.
const interactionHistoryLimit = 200

// VenuesNear returns venues within radiusKM of the origin, annotated with
// exact haversine distance. The SQL side only prefilters with a bounding
// box; corner hits outside the circle are dropped here.
func (r *PostgresRepository) VenuesNear(ctx context.Context, lat, lng, radiusKM float64) ([]domain.VenueWithDistance, error) {
	minLat, maxLat, minLng, maxLng := geo.BoundingBox(lat, lng, radiusKM)

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, COALESCE(cuisines, '{}'), COALESCE(rating, 0), lat, lng, COALESCE(image_url, ''), created_at
		FROM venues
		WHERE lat BETWEEN $1 AND $2 AND lng BETWEEN $3 AND $4
	`, minLat, maxLat, minLng, maxLng)
	if err != nil {
		return nil, fmt.Errorf("query venues: %w", err)
	}
	defer rows.Close()

	venues := []domain.VenueWithDistance{}
	for rows.Next() {
		var v domain.VenueWithDistance
		if err := rows.Scan(&v.ID, &v.Name, pq.Array(&v.Cuisines), &v.Rating, &v.Lat, &v.Lng, &v.ImageURL, &v.CreatedAt); err != nil {
			continue
		}
		v.DistanceKM = geo.Haversine(lat, lng, v.Lat, v.Lng)
		if v.DistanceKM <= radiusKM {
			venues = append(venues, v)
		}
	}
	return venues, rows.Err()
}

// AvailableItemsByVenues returns the available menu items of the given
// venues. Unavailable items never enter the candidate set.
func (r *PostgresRepository) AvailableItemsByVenues(ctx context.Context, venueIDs []int) ([]domain.MenuItem, error) {
	if len(venueIDs) == 0 {
		return []domain.MenuItem{}, nil
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, venue_id, name, COALESCE(description, ''), price, calories,
		       COALESCE(dietary_tags, '{}'), COALESCE(allergen_tags, '{}'),
		       available, COALESCE(image_url, ''),
		       COALESCE(view_count, 0), COALESCE(like_count, 0), popularity, created_at
		FROM menu_items
		WHERE venue_id = ANY($1) AND available = TRUE
	`, pq.Array(venueIDs))
	if err != nil {
		return nil, fmt.Errorf("query menu items: %w", err)
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		var calories sql.NullInt64
		var popularity sql.NullFloat64

		err := rows.Scan(&item.ID, &item.VenueID, &item.Name, &item.Description, &item.Price, &calories,
			pq.Array(&item.DietaryTags), pq.Array(&item.AllergenTags),
			&item.Available, &item.ImageURL,
			&item.ViewCount, &item.LikeCount, &popularity, &item.CreatedAt)
		if err != nil {
			continue
		}

		if calories.Valid {
			c := int(calories.Int64)
			item.Calories = &c
		}
		if popularity.Valid {
			p := popularity.Float64
			item.Popularity = &p
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UserInteractions returns recent swipe history joined with each item's
// venue cuisines. Newest first, bounded by interactionHistoryLimit.
func (r *PostgresRepository) UserInteractions(ctx context.Context, userID string) ([]domain.Interaction, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT ui.menu_item_id, ui.liked, COALESCE(v.cuisines, '{}')
		FROM user_interactions ui
		JOIN menu_items mi ON ui.menu_item_id = mi.id
		JOIN venues v ON mi.venue_id = v.id
		WHERE ui.user_id = $1
		ORDER BY ui.created_at DESC
		LIMIT $2
	`, userID, interactionHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("query interactions: %w", err)
	}
	defer rows.Close()

	interactions := []domain.Interaction{}
	for rows.Next() {
		var in domain.Interaction
		if err := rows.Scan(&in.MenuItemID, &in.Liked, pq.Array(&in.Cuisines)); err != nil {
			continue
		}
		interactions = append(interactions, in)
	}
	return interactions, rows.Err()
}

// EnsureSchema creates the read-path tables when they do not exist yet.
// The catalog and interaction-tracking services own the write path.
func EnsureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS venues (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			cuisines TEXT[] NOT NULL DEFAULT '{}',
			rating DOUBLE PRECISION NOT NULL DEFAULT 0,
			lat DOUBLE PRECISION NOT NULL,
			lng DOUBLE PRECISION NOT NULL,
			image_url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			venue_id INT NOT NULL REFERENCES venues(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			description TEXT,
			price DOUBLE PRECISION NOT NULL,
			calories INT,
			dietary_tags TEXT[] NOT NULL DEFAULT '{}',
			allergen_tags TEXT[] NOT NULL DEFAULT '{}',
			available BOOLEAN NOT NULL DEFAULT TRUE,
			image_url TEXT,
			view_count INT NOT NULL DEFAULT 0,
			like_count INT NOT NULL DEFAULT 0,
			popularity DOUBLE PRECISION,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS user_interactions (
			id SERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			menu_item_id INT NOT NULL REFERENCES menu_items(id) ON DELETE CASCADE,
			liked BOOLEAN NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_venues_lat_lng ON venues(lat, lng)`,
		`CREATE INDEX IF NOT EXISTS idx_menu_items_venue ON menu_items(venue_id)`,
		`CREATE INDEX IF NOT EXISTS idx_user_interactions_user ON user_interactions(user_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
