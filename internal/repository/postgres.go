package repository

import (
	"context"
	"errors"
	"fmt"

	"coffee-filter-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements persistence for coffee shops and users on PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const schema = `
	CREATE TABLE IF NOT EXISTS coffee_shops (
		id SERIAL PRIMARY KEY,
		name VARCHAR NOT NULL,
		address VARCHAR NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		image VARCHAR,
		photo_reference VARCHAR,
		accessibility BOOLEAN DEFAULT FALSE,
		has_wifi BOOLEAN DEFAULT FALSE,
		description VARCHAR,
		machine VARCHAR,
		weekly_hours JSONB,
		pour_over BOOLEAN DEFAULT FALSE,
		website VARCHAR,
		instagram VARCHAR,
		starred BOOLEAN DEFAULT FALSE
	);
	CREATE INDEX IF NOT EXISTS coffee_shops_name_idx ON coffee_shops (name);

	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR NOT NULL UNIQUE,
		hashed_password VARCHAR NOT NULL,
		is_admin BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`

// Migrate creates the tables if they do not exist yet.
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

const shopColumns = `
			id,
			name,
			address,
			latitude,
			longitude,
			COALESCE(image, ''),
			photo_reference,
			accessibility,
			has_wifi,
			COALESCE(description, ''),
			COALESCE(machine, ''),
			COALESCE(weekly_hours, '{}'::jsonb),
			pour_over,
			website,
			instagram,
			starred`

func scanShop(row pgx.Row) (*models.CoffeeShop, error) {
	var shop models.CoffeeShop
	err := row.Scan(
		&shop.ID,
		&shop.Name,
		&shop.Address,
		&shop.Latitude,
		&shop.Longitude,
		&shop.Image,
		&shop.PhotoReference,
		&shop.Accessibility,
		&shop.HasWifi,
		&shop.Description,
		&shop.Machine,
		&shop.WeeklyHours,
		&shop.PourOver,
		&shop.Website,
		&shop.Instagram,
		&shop.Starred,
	)
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

// CreateShop inserts a new shop and returns the stored record with its
// assigned id.
func (r *Repository) CreateShop(ctx context.Context, shop models.CoffeeShop) (*models.CoffeeShop, error) {
	sql := `
		INSERT INTO coffee_shops (
			name, address, latitude, longitude, image, photo_reference,
			accessibility, has_wifi, description, machine, weekly_hours,
			pour_over, website, instagram, starred
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + shopColumns

	created, err := scanShop(r.db.QueryRow(ctx, sql,
		shop.Name,
		shop.Address,
		shop.Latitude,
		shop.Longitude,
		shop.Image,
		shop.PhotoReference,
		shop.Accessibility,
		shop.HasWifi,
		shop.Description,
		shop.Machine,
		shop.WeeklyHours,
		shop.PourOver,
		shop.Website,
		shop.Instagram,
		shop.Starred,
	))
	if err != nil {
		return nil, fmt.Errorf("repository: failed to insert shop: %w", err)
	}
	return created, nil
}

// GetShop fetches a shop by id. A missing id yields (nil, nil).
func (r *Repository) GetShop(ctx context.Context, id int) (*models.CoffeeShop, error) {
	sql := `SELECT ` + shopColumns + ` FROM coffee_shops WHERE id = $1`

	shop, err := scanShop(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to fetch shop: %w", err)
	}
	return shop, nil
}

// ListShops returns shops in id order with the given offset and limit.
func (r *Repository) ListShops(ctx context.Context, skip, limit int) ([]models.CoffeeShop, error) {
	sql := `SELECT ` + shopColumns + ` FROM coffee_shops ORDER BY id OFFSET $1 LIMIT $2`

	rows, err := r.db.Query(ctx, sql, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute list query: %w", err)
	}
	defer rows.Close()

	shops := []models.CoffeeShop{}
	for rows.Next() {
		shop, err := scanShop(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan shop: %w", err)
		}
		shops = append(shops, *shop)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return shops, nil
}

// UpdateShop writes the full record for shop.ID in a single statement and
// reports whether the row existed.
func (r *Repository) UpdateShop(ctx context.Context, shop models.CoffeeShop) (bool, error) {
	sql := `
		UPDATE coffee_shops SET
			name = $2,
			address = $3,
			latitude = $4,
			longitude = $5,
			image = $6,
			photo_reference = $7,
			accessibility = $8,
			has_wifi = $9,
			description = $10,
			machine = $11,
			weekly_hours = $12,
			pour_over = $13,
			website = $14,
			instagram = $15,
			starred = $16
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, sql,
		shop.ID,
		shop.Name,
		shop.Address,
		shop.Latitude,
		shop.Longitude,
		shop.Image,
		shop.PhotoReference,
		shop.Accessibility,
		shop.HasWifi,
		shop.Description,
		shop.Machine,
		shop.WeeklyHours,
		shop.PourOver,
		shop.Website,
		shop.Instagram,
		shop.Starred,
	)
	if err != nil {
		return false, fmt.Errorf("repository: failed to update shop: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteShop removes a shop by id and reports whether a row was deleted.
func (r *Repository) DeleteShop(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM coffee_shops WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("repository: failed to delete shop: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CreateUser inserts a new user account.
func (r *Repository) CreateUser(ctx context.Context, username, hashedPassword string, isAdmin bool) (*models.User, error) {
	sql := `
		INSERT INTO users (username, hashed_password, is_admin)
		VALUES ($1, $2, $3)
		RETURNING id, username, hashed_password, is_admin, created_at`

	var user models.User
	err := r.db.QueryRow(ctx, sql, username, hashedPassword, isAdmin).Scan(
		&user.ID,
		&user.Username,
		&user.HashedPassword,
		&user.IsAdmin,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to insert user: %w", err)
	}
	return &user, nil
}

// GetUserByUsername fetches a user by username. A missing user yields (nil, nil).
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	sql := `SELECT id, username, hashed_password, is_admin, created_at FROM users WHERE username = $1`

	var user models.User
	err := r.db.QueryRow(ctx, sql, username).Scan(
		&user.ID,
		&user.Username,
		&user.HashedPassword,
		&user.IsAdmin,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to fetch user: %w", err)
	}
	return &user, nil
}

// HasAdmin reports whether at least one admin user exists.
func (r *Repository) HasAdmin(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE is_admin)`).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("repository: failed to check for admin: %w", err)
	}
	return exists, nil
}

// PromoteToAdmin flips the admin flag on an existing user.
func (r *Repository) PromoteToAdmin(ctx context.Context, username string) error {
	if _, err := r.db.Exec(ctx, `UPDATE users SET is_admin = TRUE WHERE username = $1`, username); err != nil {
		return fmt.Errorf("repository: failed to promote user: %w", err)
	}
	return nil
}
