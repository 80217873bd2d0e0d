package postgres

import (
	"context"
	"database/sql"
	"strings"

	"faunagram/internal/domain/sightings"
)

type SightingsRepo struct {
	db *sql.DB
}

func NewSightingsRepo(db *sql.DB) *SightingsRepo {
	return &SightingsRepo{db: db}
}

func (r *SightingsRepo) Create(ctx context.Context, s sightings.Sighting) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sightings (
			id, title, body, user_id, animal_id, likes, image_path, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		s.ID,
		s.Title,
		s.Body,
		s.UserID,
		s.AnimalID,
		s.Likes,
		toNullString(s.ImagePath),
		s.CreatedAt,
	)
	return err
}

func (r *SightingsRepo) GetByID(ctx context.Context, id string) (sightings.Sighting, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return sightings.Sighting{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, body, user_id, animal_id, likes, image_path, created_at
		FROM sightings
		WHERE id = $1
	`, id)

	return scanSighting(row)
}

func (r *SightingsRepo) List(ctx context.Context) ([]sightings.Sighting, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, body, user_id, animal_id, likes, image_path, created_at
		FROM sightings
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]sightings.Sighting, 0)
	for rows.Next() {
		s, err := scanSighting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

// Update nunca toca user_id ni animal_id: son inmutables.
func (r *SightingsRepo) Update(ctx context.Context, s sightings.Sighting) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE sightings
		SET
			title = $2,
			body = $3,
			likes = $4,
			image_path = $5
		WHERE id = $1
	`,
		s.ID,
		s.Title,
		s.Body,
		s.Likes,
		toNullString(s.ImagePath),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SightingsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sightings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanSighting(row rowScanner) (sightings.Sighting, error) {
	var s sightings.Sighting
	var image sql.NullString
	if err := row.Scan(
		&s.ID,
		&s.Title,
		&s.Body,
		&s.UserID,
		&s.AnimalID,
		&s.Likes,
		&image,
		&s.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return sightings.Sighting{}, ErrNotFound
		}
		return sightings.Sighting{}, err
	}

	if image.Valid {
		s.ImagePath = image.String
	}

	return s, nil
}
