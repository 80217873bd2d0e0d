package postgres

import (
	"context"
	"database/sql"
	"strings"

	"faunagram/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

// "order" es palabra reservada en SQL, va siempre entre comillas.

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (
			id, name, genus, species, g_name, image,
			kingdom, phylum, "order", family, cls
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		a.ID,
		a.Name,
		a.Genus,
		a.Species,
		a.GName,
		toNullString(a.Image),
		a.Kingdom,
		a.Phylum,
		a.Order,
		a.Family,
		a.Cls,
	)
	return err
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, name, genus, species, g_name, image,
			kingdom, phylum, "order", family, cls
		FROM animals
		WHERE id = $1
	`, id)

	return scanAnimal(row)
}

func (r *AnimalsRepo) List(ctx context.Context) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, genus, species, g_name, image,
			kingdom, phylum, "order", family, cls
		FROM animals
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animals
		SET
			name = $2,
			genus = $3,
			species = $4,
			g_name = $5,
			image = $6,
			kingdom = $7,
			phylum = $8,
			"order" = $9,
			family = $10,
			cls = $11
		WHERE id = $1
	`,
		a.ID,
		a.Name,
		a.Genus,
		a.Species,
		a.GName,
		toNullString(a.Image),
		a.Kingdom,
		a.Phylum,
		a.Order,
		a.Family,
		a.Cls,
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

func scanAnimal(row rowScanner) (animals.Animal, error) {
	var a animals.Animal
	var image sql.NullString
	if err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Genus,
		&a.Species,
		&a.GName,
		&image,
		&a.Kingdom,
		&a.Phylum,
		&a.Order,
		&a.Family,
		&a.Cls,
	); err != nil {
		if err == sql.ErrNoRows {
			return animals.Animal{}, ErrNotFound
		}
		return animals.Animal{}, err
	}

	if image.Valid {
		a.Image = image.String
	}

	return a, nil
}
